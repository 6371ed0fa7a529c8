// Package config loads efskip settings.
//
// # Precedence
//
// Values are resolved in this order, highest priority first:
//
//  1. CLI flags (--format, --theme, --log-level), applied by the command
//  2. Environment variables (EFSKIP_FORMAT, EFSKIP_THEME, EFSKIP_LOG_LEVEL,
//     EFSKIP_RESOURCES_DIR, KAKAROT_VERSION, NO_COLOR)
//  3. YAML config file (.efskip.yaml in the working directory, or
//     ~/.config/efskip/.efskip.yaml)
//  4. Hardcoded defaults
//
// # Environment Variables
//
//   - NO_COLOR: any non-empty value selects the mono theme
//   - KAKAROT_VERSION: comma separated list of versions for
//     "efskip resources" batch mode; only v0 and v1 are kept
package config
