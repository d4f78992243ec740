package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"bookrec/internal/book"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("output format must be table, json or yaml, got %q", format)
}

// writeStructured encodes v as JSON or YAML. It reports false for the table
// format so callers can render their own table.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case outputJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return true, enc.Encode(v)
	}
	return false, nil
}

func writeBooks(w io.Writer, format string, books []book.Book) error {
	if done, err := writeStructured(w, format, books); done || err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ISBN\tTITLE\tAUTHOR\tGENRE\tPAGES\tRATING")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			b.ISBN, b.Title, b.Author, b.Genre, b.PageCount,
			strconv.FormatFloat(b.AverageRating, 'f', 1, 64))
	}
	return tw.Flush()
}
