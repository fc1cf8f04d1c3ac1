package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/lexmerge/source/aed"
	"github.com/c360studio/lexmerge/storage"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func newLemmaCmd(a *app) *cobra.Command {
	var (
		archive string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "lemma [id]",
		Short: "Show a published lemma page, or list the lemmata of a site snapshot",
		Args: func(cmd *cobra.Command, args []string) error {
			if archive == "" && len(args) != 1 {
				return withCode(exitUsage, errors.New("lemma needs an id or --archive"))
			}
			if archive != "" && len(args) != 0 {
				return withCode(exitUsage, errors.New("lemma takes either an id or --archive"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if archive != "" {
				return a.listLemmata(archive, limit)
			}

			fetcher := aed.NewFetcher(aed.FetcherConfig{
				BaseURL:   a.cfg.AED.BaseURL,
				Timeout:   a.cfg.AED.Timeout,
				UserAgent: a.cfg.AED.UserAgent,
			})
			lemma, err := fetcher.Fetch(cmd.Context(), args[0])
			if err != nil {
				return withCode(exitLoad, err)
			}
			text, err := aed.NewRenderer().Render(lemma)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, text)
			return nil
		},
	}

	cmd.Flags().StringVar(&archive, "archive", "", "Site snapshot ZIP to list lemmata from")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "List at most this many lemmata (0 for all)")
	return cmd
}

func (a *app) listLemmata(path string, limit int) error {
	archive, err := storage.OpenArchive(a.fs, path)
	if err != nil {
		return withCode(exitLoad, err)
	}
	defer archive.Close()

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("ID", "MEANING", "OCCURRENCES")
	for lemma, err := range aed.Lemmata(archive, limit) {
		if err != nil {
			return withCode(exitLoad, err)
		}
		table.AddRow(lemma.ID, lemma.Meaning(), strings.Join(lemma.Occurrences(), ", "))
	}
	fmt.Fprintln(a.out, table)
	return nil
}
