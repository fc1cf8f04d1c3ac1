package validate

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/c360studio/lexmerge/tree"
	"github.com/google/uuid"
	"github.com/gosuri/uitable"
)

// Format is a report output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatText Format = "txt"
)

// ErrUnknownFormat is returned for report formats other than csv, json and txt.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Report summarizes a validation run.
type Report struct {
	RunID   string `json:"run_id"`
	File    string `json:"file"`
	Checked int    `json:"checked"`
	Invalid int    `json:"invalid"`
	Errors  int    `json:"errors"`
	Rows    []Row  `json:"-"`
}

// Validate evaluates every dated category of doc.
func (v *Validator) Validate(doc tree.Document, file string) Report {
	report := Report{RunID: uuid.NewString(), File: file}
	for range Dated(doc) {
		report.Checked++
	}
	report.Rows = slices.Collect(v.FindInvalid(doc))
	for _, row := range report.Rows {
		if row.Err != nil {
			report.Errors++
		} else {
			report.Invalid++
		}
	}
	return report
}

var header = []string{"id", "name", "start", "end", "descendants_start", "descendants_end", "error"}

// Write renders rows in format.
func Write(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatText:
		return writeText(w, rows)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.fields()); err != nil {
			return fmt.Errorf("write csv row %s: %w", row.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (r Row) fields() []string {
	if r.Err != nil {
		return []string{r.ID, r.Label, "", "", "", "", r.Err.Error()}
	}
	return []string{
		r.ID,
		r.Label,
		strconv.Itoa(r.Own.Start),
		strconv.Itoa(r.Own.End),
		strconv.Itoa(r.Descendants.Start),
		strconv.Itoa(r.Descendants.End),
		"",
	}
}

type jsonRow struct {
	Row
	Error string `json:"error,omitempty"`
}

func writeJSON(w io.Writer, rows []Row) error {
	out := make([]jsonRow, len(rows))
	for i, row := range rows {
		out[i] = jsonRow{Row: row}
		if row.Err != nil {
			out[i].Error = row.Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func writeText(w io.Writer, rows []Row) error {
	table := uitable.New()
	table.MaxColWidth = 48
	table.Wrap = true
	table.AddRow("ID", "NAME", "START", "END", "DESC START", "DESC END")
	for _, row := range rows {
		if row.Err != nil {
			table.AddRow(row.ID, row.Label, "error: "+row.Err.Error(), "", "", "")
			continue
		}
		table.AddRow(row.ID, row.Label, row.Own.Start, row.Own.End, row.Descendants.Start, row.Descendants.End)
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
