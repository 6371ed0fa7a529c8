package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/efskip/internal/artifact"
	"github.com/dkoosis/efskip/internal/logging"
	"github.com/dkoosis/efskip/pkg/eflog"
	"github.com/dkoosis/efskip/pkg/mapper"
	"github.com/dkoosis/efskip/pkg/pattern"
	"github.com/dkoosis/efskip/pkg/resources"
)

func (a *app) resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources [input_file output_file]",
		Short: "Write per-test resource usage as CSV",
		Long: `Collects the ResourcesMapping reported for every passing test and writes it
as CSV, one row per test and one column per resource.

With no arguments, runs once per version listed in KAKAROT_VERSION (v0, v1),
reading ./test_<version>.out and writing <resources_dir>/resources_<version>.csv.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return usage("expected 0 or 2 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				p, err := a.writeResources(args[0], args[1])
				if err != nil {
					return err
				}
				a.emit(p)
				return nil
			}
			return a.runResourcesBatch(cmd.Context())
		},
	}
}

func (a *app) runResourcesBatch(ctx context.Context) error {
	if err := a.fs.MkdirAll(a.cfg.ResourcesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", a.cfg.ResourcesDir, err)
	}
	if len(a.cfg.KakarotVersions) == 0 {
		logging.Warn("no versions selected, set KAKAROT_VERSION to v0 and/or v1")
		return nil
	}

	var all []pattern.Pattern
	for _, v := range a.cfg.KakarotVersions {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := a.writeResources(a.cfg.InputPath(v), a.cfg.OutputPath(v))
		if err != nil {
			return fmt.Errorf("version %s: %w", v, err)
		}
		all = append(all, p...)
	}
	a.emit(all)
	return nil
}

func (a *app) writeResources(input, output string) ([]pattern.Pattern, error) {
	text, err := artifact.ReadLog(a.fs, input)
	if err != nil {
		return nil, err
	}
	usages, err := eflog.ParseResources(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", input, err)
	}

	var buf bytes.Buffer
	if err := resources.WriteCSV(&buf, usages); err != nil {
		return nil, err
	}
	if err := artifact.WriteFile(a.fs, output, buf.Bytes()); err != nil {
		return nil, err
	}
	logging.Info("wrote resources", "path", output, "tests", len(usages))

	return mapper.FromResources(usages, output), nil
}
