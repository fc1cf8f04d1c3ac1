package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/c360studio/lexmerge/tree"
	"github.com/c360studio/lexmerge/validate"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errFindings = errors.New("validation findings")

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check TEI documents for consistency",
	}
	cmd.AddCommand(newValidateDatesCmd(a))
	return cmd
}

func newValidateDatesCmd(a *app) *cobra.Command {
	var (
		file   string
		format string
		mode   string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Report thesaurus categories whose date range misses a descendant",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.Targets.Thesaurus
			}
			if format == "" {
				format = a.cfg.Validation.Format
			}
			if mode == "" {
				mode = a.cfg.Validation.Mode
			}
			f, err := validate.ParseFormat(format)
			if err != nil {
				return withCode(exitUsage, err)
			}
			m, err := validate.ParseMode(mode)
			if err != nil {
				return withCode(exitUsage, err)
			}
			v := validate.New(m)

			if !watch {
				return a.validateDates(v, file, f)
			}
			run := func() error {
				err := a.validateDates(v, file, f)
				if err != nil && !errors.Is(err, errFindings) {
					a.logger.Error("Validation failed", slog.String("file", file), slog.String("error", err.Error()))
				}
				return nil
			}
			_ = run()
			return watchFile(cmd.Context(), file, a.logger, run)
		},
	}

	cmd.Flags().StringVarP(&file, "input", "i", "", "Thesaurus TEI file (default from config targets.thesaurus)")
	cmd.Flags().StringVarP(&format, "type", "t", "", "Report format: csv, json or txt")
	cmd.Flags().StringVar(&mode, "mode", "", "Range rule: include-own or children-only")
	cmd.Flags().BoolVar(&watch, "watch", false, "Validate again whenever the file changes")
	return cmd
}

func (a *app) validateDates(v *validate.Validator, file string, format validate.Format) error {
	doc, err := tree.Load(a.fs, file)
	if err != nil {
		return withCode(exitLoad, err)
	}

	report := v.Validate(doc, file)
	a.metrics.Validated(report)
	if err := validate.Write(a.out, format, report.Rows); err != nil {
		return withCode(exitWrite, fmt.Errorf("write report: %w", err))
	}

	a.logger.Info("Validated dates",
		slog.String("run_id", report.RunID),
		slog.String("file", file),
		slog.Int("checked", report.Checked),
		slog.Int("invalid", report.Invalid),
		slog.Int("errors", report.Errors))

	if report.Invalid == 0 && report.Errors == 0 {
		color.New(color.FgGreen).Fprintf(a.errOut, "%d categories checked, all valid.\n", report.Checked)
		return nil
	}
	color.New(color.FgRed, color.Bold).Fprintf(a.errOut, "%d categories checked, %d invalid, %d unreadable.\n",
		report.Checked, report.Invalid, report.Errors)
	return withCode(exitFindings, fmt.Errorf("%w: %d of %d categories in %s", errFindings,
		report.Invalid+report.Errors, report.Checked, file))
}
