package main

import (
	"context"
	"fmt"

	"github.com/dkoosis/efskip/internal/artifact"
	"github.com/dkoosis/efskip/internal/logging"
	"github.com/dkoosis/efskip/pkg/eflog"
	"github.com/dkoosis/efskip/pkg/mapper"
	"github.com/dkoosis/efskip/pkg/skipfile"
)

// runSkip is the core pipeline: read the log, analyze it, build the skip
// document, check it parses, write it. Any failure leaves output untouched.
func (a *app) runSkip(ctx context.Context, input, output string) error {
	text, err := artifact.ReadLog(a.fs, input)
	if err != nil {
		return err
	}
	logging.Debug("read log", "path", input, "bytes", len(text))

	an, err := eflog.Analyze(text)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", input, err)
	}
	logging.Debug("analyzed log",
		"result", an.Summary.Result,
		"passed", an.Summary.Passed,
		"failed", an.Summary.Failed,
		"categories", an.Categories(),
		"exhausted", an.ExhaustedFailures(),
	)

	doc := skipfile.Build(an)
	data := doc.Bytes()
	if err := skipfile.Validate(data); err != nil {
		return fmt.Errorf("generated skip file is invalid: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := artifact.WriteFile(a.fs, output, data); err != nil {
		return err
	}
	logging.Info("wrote skip file", "path", output, "tests", doc.Len())

	a.emit(mapper.FromSkip(an, doc, output))
	return nil
}
