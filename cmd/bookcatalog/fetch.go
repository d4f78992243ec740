package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bookrec/internal/catalog"
	"bookrec/internal/ingest"
	"bookrec/internal/platform/openlibrary"
)

func newFetchCmd(a *app) *cobra.Command {
	var (
		subjects   []string
		perSubject int
		batchSize  int
		out        string
		baseURL    string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Build a dataset file from Open Library subjects",
		Long: `fetch searches Open Library for each subject, keeps the books that pass
catalog validation and writes them to a dataset file the file source can load.

A subject is "name=GENRE", or just a genre name when the Open Library subject
has the same name.`,
		Example: `  bookcatalog fetch --subject fantasy --subject "science_fiction=SCIENCE_FICTION" --out data/books.json
  bookcatalog fetch --subject romance --per-subject 5 --out books.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(subjects) == 0 {
				return errors.New("at least one --subject is required")
			}
			parsed := make([]ingest.Subject, 0, len(subjects))
			for _, s := range subjects {
				subj, err := ingest.ParseSubject(s)
				if err != nil {
					return err
				}
				parsed = append(parsed, subj)
			}

			client := openlibrary.NewClient(a.cfg.OpenLibraryUserAgent, a.cfg.OpenLibraryRPS, a.cfg.OpenLibraryMaxRetries)
			if baseURL != "" {
				client = client.WithBaseURL(baseURL)
			}
			svc := ingest.NewService(client, ingest.Config{
				Subjects:   parsed,
				PerSubject: perSubject,
				BatchSize:  batchSize,
			}, a.logger)

			books, run, err := svc.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := catalog.WriteDataset(out, books); err != nil {
				return err
			}
			a.logger.Info("dataset written", "path", out, "books", len(books))

			w := cmd.OutOrStdout()
			if done, err := writeStructured(w, a.output, run); done || err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "wrote %d books to %s (fetched %d, rejected %d)\n",
				len(books), out, run.BooksFetched, run.BooksRejected)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&subjects, "subject", nil, `subject to fetch, "name=GENRE" or a genre name (repeatable)`)
	cmd.Flags().IntVar(&perSubject, "per-subject", 10, "books to keep per subject")
	cmd.Flags().IntVar(&batchSize, "batch-size", 20, "ISBNs per details request")
	cmd.Flags().StringVar(&out, "out", "books.json", "dataset file to write (.json, .yaml)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Open Library base URL")
	_ = cmd.Flags().MarkHidden("base-url")
	return cmd
}
