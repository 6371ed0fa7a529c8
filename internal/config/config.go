package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/efskip/pkg/render"
)

// FileName is the config file looked up in the working directory and in
// the user config dir.
const FileName = ".efskip.yaml"

// Defaults.
const (
	DefaultFormat       = "auto"
	DefaultTheme        = "default"
	DefaultLogLevel     = "warn"
	DefaultResourcesDir = "./resources"
	DefaultInputPattern = "./test_%s.out"
)

// Formats accepted by --format.
var Formats = []string{"auto", "terminal", "llm", "json"}

// Versions accepted in KAKAROT_VERSION.
var Versions = []string{"v0", "v1"}

// Config is the resolved configuration.
type Config struct {
	Format       string `yaml:"format"`
	Theme        string `yaml:"theme"`
	LogLevel     string `yaml:"log_level"`
	NoColor      bool   `yaml:"no_color"`
	ResourcesDir string `yaml:"resources_dir"`
	// InputPattern is the batch mode log path, with %s replaced by the version.
	InputPattern string `yaml:"input_pattern"`
	// KakarotVersions lists the versions processed by batch mode.
	KakarotVersions []string `yaml:"kakarot_versions"`

	// Source is the config file that was read, empty when none was found.
	Source string `yaml:"-"`
}

// envOverlay holds the environment variables. Empty values leave the
// lower-priority setting alone.
type envOverlay struct {
	Format       string   `env:"EFSKIP_FORMAT"`
	Theme        string   `env:"EFSKIP_THEME"`
	LogLevel     string   `env:"EFSKIP_LOG_LEVEL"`
	ResourcesDir string   `env:"EFSKIP_RESOURCES_DIR"`
	Versions     []string `env:"KAKAROT_VERSION" envSeparator:","`
	NoColor      string   `env:"NO_COLOR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:       DefaultFormat,
		Theme:        DefaultTheme,
		LogLevel:     DefaultLogLevel,
		ResourcesDir: DefaultResourcesDir,
		InputPattern: DefaultInputPattern,
	}
}

// Load resolves defaults, the config file and the environment, then
// validates the result.
func Load(fs afero.Fs) (*Config, error) {
	cfg := Default()

	if path := configPath(fs); path != "" {
		if err := cfg.mergeFile(fs, path); err != nil {
			return nil, err
		}
		cfg.Source = path
	}

	var ov envOverlay
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	cfg.mergeEnv(ov)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath finds the config file: local directory first, then the user
// config dir. Returns "" when neither exists.
func configPath(fs afero.Fs) string {
	if _, err := fs.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "efskip", FileName)
	if _, err := fs.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

func (c *Config) mergeFile(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}

	if fromFile.Format != "" {
		c.Format = fromFile.Format
	}
	if fromFile.Theme != "" {
		c.Theme = fromFile.Theme
	}
	if fromFile.LogLevel != "" {
		c.LogLevel = fromFile.LogLevel
	}
	if fromFile.ResourcesDir != "" {
		c.ResourcesDir = fromFile.ResourcesDir
	}
	if fromFile.InputPattern != "" {
		c.InputPattern = fromFile.InputPattern
	}
	if fromFile.KakarotVersions != nil {
		c.KakarotVersions = normalizeVersions(fromFile.KakarotVersions)
	}
	c.NoColor = c.NoColor || fromFile.NoColor
	return nil
}

func (c *Config) mergeEnv(ov envOverlay) {
	if ov.Format != "" {
		c.Format = ov.Format
	}
	if ov.Theme != "" {
		c.Theme = ov.Theme
	}
	if ov.LogLevel != "" {
		c.LogLevel = ov.LogLevel
	}
	if ov.ResourcesDir != "" {
		c.ResourcesDir = ov.ResourcesDir
	}
	if ov.Versions != nil {
		c.KakarotVersions = normalizeVersions(ov.Versions)
	}
	if ov.NoColor != "" {
		c.NoColor = true
	}
}

// normalizeVersions lower-cases the list and drops anything that is not a
// known version, keeping order.
func normalizeVersions(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.ToLower(strings.TrimSpace(v))
		if slices.Contains(Versions, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Validate reports settings with values outside their allowed set.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("invalid format %q (must be one of: %s)", c.Format, strings.Join(Formats, ", ")))
	}
	if !slices.Contains(render.ThemeNames, c.Theme) {
		errs = append(errs, fmt.Errorf("invalid theme %q (must be one of: %s)", c.Theme, strings.Join(render.ThemeNames, ", ")))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log_level %q (must be: debug, info, warn, error)", c.LogLevel))
	}
	if c.ResourcesDir == "" {
		errs = append(errs, errors.New("resources_dir cannot be empty"))
	}
	if strings.Count(c.InputPattern, "%s") != 1 {
		errs = append(errs, fmt.Errorf("input_pattern %q must contain exactly one %%s", c.InputPattern))
	}
	return errors.Join(errs...)
}

// InputPath returns the batch mode log path for version.
func (c *Config) InputPath(version string) string {
	return fmt.Sprintf(c.InputPattern, version)
}

// OutputPath returns the batch mode CSV path for version.
func (c *Config) OutputPath(version string) string {
	return filepath.Join(c.ResourcesDir, "resources_"+version+".csv")
}
