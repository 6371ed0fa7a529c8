package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dkoosis/efskip/pkg/mapper"
	"github.com/dkoosis/efskip/pkg/skipfile"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <skip_file>",
		Short: "Validate a skip file and summarize its contents",
		Long: `Parses an existing skip file and reports its categories and entry counts.
Only the top-level "testname" key and the category lists are checked; test
names are not looked up anywhere.`,
		Args: exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			data, err := afero.ReadFile(a.fs, path)
			if err != nil {
				return fmt.Errorf("reading skip file %s: %w", path, err)
			}
			doc, err := skipfile.Parse(data)
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			a.emit(mapper.FromCheck(doc, path))
			return nil
		},
	}
}
