package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/efskip/internal/version"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(a.stdout, version.String())
			return nil
		},
	}
}
