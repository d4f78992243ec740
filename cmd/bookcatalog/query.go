package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookrec/internal/book"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every book in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.openCatalog(cmd.Context())
			return writeBooks(cmd.OutOrStdout(), a.output, c.FindAll())
		},
	}
}

func newISBNCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "isbn <isbn>",
		Short: "Look up a book by exact ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.openCatalog(cmd.Context())
			b, ok := c.FindByISBN(args[0])
			if !ok {
				return fmt.Errorf("no book with ISBN %q", args[0])
			}
			return writeBooks(cmd.OutOrStdout(), a.output, []book.Book{b})
		},
	}
}

func newTitleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "title <text>...",
		Short: "Find books whose title contains the text, ignoring case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.openCatalog(cmd.Context())
			return writeBooks(cmd.OutOrStdout(), a.output, c.FindByTitle(strings.Join(args, " ")))
		},
	}
}

func newAuthorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "author <text>...",
		Short: "Find books whose author contains the text, ignoring case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.openCatalog(cmd.Context())
			return writeBooks(cmd.OutOrStdout(), a.output, c.FindByAuthor(strings.Join(args, " ")))
		},
	}
}

func newGenreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genre <genre>",
		Short: "List the books of one genre",
		Example: `  bookcatalog genre science_fiction
  bookcatalog genre "non fiction"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genre, err := book.ParseGenre(args[0])
			if err != nil {
				return err
			}
			c := a.openCatalog(cmd.Context())
			return writeBooks(cmd.OutOrStdout(), a.output, c.FindByGenre(genre))
		},
	}
}

type genreCount struct {
	Genre book.Genre `json:"genre" yaml:"genre"`
	Books int        `json:"books" yaml:"books"`
}

func newGenresCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "Show how many catalog books each genre holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.openCatalog(cmd.Context())

			counts := make([]genreCount, 0, len(book.Genres()))
			for _, g := range book.Genres() {
				counts = append(counts, genreCount{Genre: g, Books: len(c.FindByGenre(g))})
			}

			w := cmd.OutOrStdout()
			if done, err := writeStructured(w, a.output, counts); done || err != nil {
				return err
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GENRE\tBOOKS")
			for _, gc := range counts {
				fmt.Fprintf(tw, "%s\t%d\n", gc.Genre, gc.Books)
			}
			return tw.Flush()
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Describe how the catalog was loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.openCatalog(cmd.Context())
			report := c.Report()

			w := cmd.OutOrStdout()
			if done, err := writeStructured(w, a.output, report); done || err != nil {
				return err
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Load ID:\t%s\n", report.ID)
			fmt.Fprintf(tw, "Source:\t%s\n", report.Source)
			fmt.Fprintf(tw, "Records read:\t%d\n", report.Read)
			fmt.Fprintf(tw, "Books loaded:\t%d\n", report.Loaded)
			fmt.Fprintf(tw, "Overwritten:\t%d\n", report.Overwritten)
			fmt.Fprintf(tw, "Skipped:\t%d\n", len(report.Skipped))
			fmt.Fprintf(tw, "Fallback:\t%t\n", report.Fallback)
			if report.Error != "" {
				fmt.Fprintf(tw, "Error:\t%s\n", report.Error)
			}
			fmt.Fprintf(tw, "Catalog size:\t%d\n", c.Len())
			if err := tw.Flush(); err != nil {
				return err
			}

			for _, s := range report.Skipped {
				fmt.Fprintf(w, "  record %d (isbn %q): %s\n", s.Index, s.ISBN, s.Reason)
			}
			return nil
		},
	}
}
