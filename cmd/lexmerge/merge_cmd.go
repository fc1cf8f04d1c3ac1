package main

import (
	"fmt"

	"github.com/c360studio/lexmerge/config"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
	"github.com/c360studio/lexmerge/workflow"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type mergeCommand struct {
	job    string
	short  string
	vocab  func(*config.Config) string
	target func(*config.Config) string
}

var mergeCommands = []mergeCommand{
	{
		job:    workflow.JobTranslations,
		short:  "Add lemma translations to dictionary entries",
		vocab:  func(c *config.Config) string { return c.Dump.Lemmata },
		target: func(c *config.Config) string { return c.Targets.Dictionary },
	},
	{
		job:    workflow.JobRelations,
		short:  "Add verified and mirrored lemma relations to dictionary entries",
		vocab:  func(c *config.Config) string { return c.Dump.Lemmata },
		target: func(c *config.Config) string { return c.Targets.Dictionary },
	},
	{
		job:    workflow.JobDates,
		short:  "Add thesaurus date ranges to categories",
		vocab:  func(c *config.Config) string { return c.Dump.Thesaurus },
		target: func(c *config.Config) string { return c.Targets.Thesaurus },
	},
}

func newMergeCmd(a *app, mc mergeCommand) *cobra.Command {
	var archive, file string

	cmd := &cobra.Command{
		Use:   mc.job,
		Short: mc.short,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if archive == "" {
				archive = a.cfg.Dump.Archive
			}
			if file == "" {
				file = mc.target(a.cfg)
			}
			job, err := workflow.Lookup(mc.job, archive, file)
			if err != nil {
				return withCode(exitUsage, err)
			}
			job.Source.Vocab = mc.vocab(a.cfg)

			result, err := workflow.NewRunner(a.fs, a.logger, a.metrics).Run(cmd.Context(), job)
			if err != nil {
				return err
			}

			if job.Property == lexicon.PropertyRelations {
				fmt.Fprintf(a.out, "dropped %d dangling relations, mirrored %d, skipped %d self references.\n",
					result.Repair.Dropped, result.Repair.Mirrored, result.Repair.SelfLoops)
			}
			summary := color.New(color.FgGreen)
			if result.Merge.Elements == 0 {
				summary = color.New(color.FgYellow)
			}
			summary.Fprintln(a.out, result.Merge.Summary())
			return nil
		},
	}

	cmd.Flags().StringVarP(&archive, "input", "i", "", "Dump archive (default from config dump.archive)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Target TEI file (default from config targets)")
	return cmd
}
