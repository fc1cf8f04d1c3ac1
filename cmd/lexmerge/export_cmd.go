package main

import (
	"fmt"
	"io"

	"github.com/c360studio/lexmerge/export"
	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/source/bts"
	"github.com/c360studio/lexmerge/workflow"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		archive string
		format  string
		profile string
		vocab   string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the repaired registry of a vocabulary as RDF",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if archive == "" {
				archive = a.cfg.Dump.Archive
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return withCode(exitUsage, err)
			}
			p, err := export.ParseProfile(profile)
			if err != nil {
				return withCode(exitUsage, err)
			}
			job, err := a.exportJob(vocab, archive)
			if err != nil {
				return withCode(exitUsage, err)
			}

			reg, _, err := workflow.NewRunner(a.fs, a.logger, a.metrics).Registry(cmd.Context(), job)
			if err != nil {
				return err
			}

			var w io.Writer = a.out
			if output != "" {
				out, err := a.fs.Create(output)
				if err != nil {
					return withCode(exitWrite, fmt.Errorf("create %s: %w", output, err))
				}
				defer out.Close()
				w = out
			}
			if err := export.Write(w, f, export.Triples(reg, p)); err != nil {
				return withCode(exitWrite, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&archive, "input", "i", "", "Dump archive (default from config dump.archive)")
	cmd.Flags().StringVarP(&format, "type", "t", string(export.FormatTurtle), "Output format: turtle, ntriples or jsonld")
	cmd.Flags().StringVar(&profile, "profile", string(export.ProfileMinimal), "Export profile: minimal or typed")
	cmd.Flags().StringVar(&vocab, "vocab", "lemmata", "Vocabulary to export: lemmata or thesaurus")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// exportJob builds the extraction and repair for an export of vocab. The
// target is left empty since exports never touch a document.
func (a *app) exportJob(vocab, archive string) (workflow.Job, error) {
	switch vocab {
	case "lemmata":
		return workflow.Job{
			Name:       "export-lemmata",
			Source:     workflow.Source{Archive: archive, Vocab: a.cfg.Dump.Lemmata},
			Extractors: []registry.Extractor[bts.Record]{bts.Translations, bts.Relations},
			Steps:      []string{workflow.StepVerify, workflow.StepMirror},
		}, nil
	case "thesaurus":
		return workflow.Job{
			Name:       "export-thesaurus",
			Source:     workflow.Source{Archive: archive, Vocab: a.cfg.Dump.Thesaurus},
			Extractors: []registry.Extractor[bts.Record]{bts.Translations, bts.Relations, bts.ThesaurusDates},
			Steps:      []string{workflow.StepVerify, workflow.StepMirror, workflow.StepFillDates},
		}, nil
	}
	return workflow.Job{}, fmt.Errorf("unknown vocabulary %q (lemmata, thesaurus)", vocab)
}
