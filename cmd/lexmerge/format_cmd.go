package main

import (
	"fmt"

	"github.com/c360studio/lexmerge/tree"
	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Re-indent a TEI file in place",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.Targets.Dictionary
			}
			doc, err := tree.Load(a.fs, file)
			if err != nil {
				return withCode(exitLoad, err)
			}
			doc.SetIndent(a.cfg.Targets.Indent)
			if err := doc.Save(); err != nil {
				return withCode(exitWrite, err)
			}
			fmt.Fprintf(a.out, "formatted %s\n", file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TEI file (default from config targets.dictionary)")
	return cmd
}

// noArgs rejects positional arguments with a usage exit code.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return withCode(exitUsage, fmt.Errorf("%s takes no arguments, got %q", cmd.CommandPath(), args))
	}
	return nil
}
