package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Report is the outcome of a command, rendered by a Writer.
type Report struct {
	Command string   `json:"command"`
	Source  string   `json:"source"`            // word list the command ran on
	Query   string   `json:"query,omitempty"`   // word, prefix or suffix given by the user
	Found   *bool    `json:"found,omitempty"`   // only set by check
	Words   []string `json:"words,omitempty"`   // matching words, or file names
	Count   int      `json:"count"`             // number of words
	Message string   `json:"message,omitempty"` // outcome of commands changing the session
}

type Writer interface {
	Write(out io.Writer, report *Report) error
}

// NewWriter returns the Writer for format: text, json or csv.
func NewWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{Indent: "  "}, nil
	case "csv":
		return CsvWriter{Separator: ','}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextWriter renders reports for humans, one word per line.
type TextWriter struct{}

func (w TextWriter) Write(out io.Writer, report *Report) error {
	if report.Message != "" {
		if _, err := fmt.Fprintln(out, report.Message); err != nil {
			return err
		}
	}

	if report.Found != nil {
		verdict := "is not"
		if *report.Found {
			verdict = "is"
		}
		_, err := fmt.Fprintf(out, "'%s' %s in %s\n", report.Query, verdict, report.Source)
		return err
	}

	if report.Words == nil && report.Message != "" {
		return nil
	}
	for _, word := range report.Words {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "total: %d (%s)\n", report.Count, report.Source)
	return err
}

// JsonWriter renders a report as one JSON object.
type JsonWriter struct {
	Indent string
}

func (w JsonWriter) Write(out io.Writer, report *Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", w.Indent)
	return encoder.Encode(report)
}

// CsvWriter renders a report as a CSV table with a header row.
type CsvWriter struct {
	Separator rune
}

func (w CsvWriter) Write(out io.Writer, report *Report) error {
	writer := csv.NewWriter(out)
	if w.Separator != 0 {
		writer.Comma = w.Separator
	}

	var records [][]string
	switch {
	case report.Found != nil:
		records = [][]string{
			{"word", "found"},
			{report.Query, strconv.FormatBool(*report.Found)},
		}
	case report.Words == nil && report.Message != "":
		records = [][]string{{"message"}, {report.Message}}
	default:
		records = append(records, []string{"word"})
		for _, word := range report.Words {
			records = append(records, []string{word})
		}
	}

	// WriteAll flushes
	return writer.WriteAll(records)
}
