package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath  string
		logLevel    string
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Merge dump vocabularies into TEI dictionary and thesaurus files",
		Long: `lexmerge copies translations, relations and date ranges from a
database dump into TEI documents. Relations are checked against the dump
and completed with their inverses before they are written. The validate
command checks that every dated thesaurus category covers its descendants.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(configPath, logLevel, metricsFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cmd.Name() != "version" {
				a.finish(cmd.Name())
			}
		},
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write run metrics to this textfile")

	cmd.AddCommand(newFormatCmd(a))
	for _, spec := range mergeCommands {
		cmd.AddCommand(newMergeCmd(a, spec))
	}
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newLemmaCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
