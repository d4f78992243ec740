package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"bookrec/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	var topGenres, perList int

	cmd := &cobra.Command{
		Use:   "history [file]",
		Short: "Summarise a reading history and list unread catalog books that fit it",
		Long: `history reads a reading history file (.yaml, .yml or .json), ranks the
reader's genres, shows recent books, the average rating and the completion
rate, then lists catalog books not yet read in the top genres and by the
favourite authors.

Without a file a built-in sample history is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := history.SampleHistory(time.Now())
			if len(args) == 1 {
				var err error
				if h, err = history.Load(args[0]); err != nil {
					return err
				}
			}

			s := history.Summarize(h, a.openCatalog(cmd.Context()), topGenres, perList)

			w := cmd.OutOrStdout()
			if done, err := writeStructured(w, a.output, s); done || err != nil {
				return err
			}
			return writeSummary(w, s)
		},
	}

	cmd.Flags().IntVar(&topGenres, "top-genres", 3, "genres to list unread books for")
	cmd.Flags().IntVar(&perList, "per-list", 5, "unread books per genre or author (0 for all)")
	return cmd
}

func writeSummary(w io.Writer, s history.Summary) error {
	fmt.Fprintln(w, "Reading History Analysis:")
	fmt.Fprintf(w, "User ID: %s\n", s.UserID)
	fmt.Fprintf(w, "Total Books Read: %d\n", s.BooksRead)
	fmt.Fprintf(w, "Average Reading Speed: %.1f pages/hour\n", s.AverageReadingSpeed)
	fmt.Fprintf(w, "Average Books Per Month: %d\n", s.AverageBooksPerMonth)
	fmt.Fprintf(w, "Last Updated: %s\n\n", s.LastUpdated)

	fmt.Fprintln(w, "Genre Preferences (ranked by frequency):")
	for _, gc := range s.GenrePreferences {
		fmt.Fprintf(w, "- %s: %d books\n", gc.Genre, gc.Books)
	}

	fmt.Fprintln(w, "\nFavorite Authors:")
	for _, author := range s.FavoriteAuthors {
		fmt.Fprintf(w, "- %s\n", author)
	}

	fmt.Fprintf(w, "\nRecent Books (last %d):\n", len(s.RecentBooks))
	for _, rb := range s.RecentBooks {
		fmt.Fprintf(w, "- %s by %s (%.1f/5.0)\n", rb.Title, rb.Author, rb.UserRating)
	}

	fmt.Fprintln(w, "\nReading Patterns:")
	fmt.Fprintf(w, "- Average Rating Given: %.1f/5.0\n", s.AverageRating)
	fmt.Fprintf(w, "- Completion Rate: %.1f%%\n", s.CompletionRate)

	for _, gb := range s.UnreadByGenre {
		fmt.Fprintf(w, "\nUnread %s:\n", gb.Genre)
		for _, b := range gb.Books {
			fmt.Fprintf(w, "- %s by %s (%s)\n", b.Title, b.Author, b.ISBN)
		}
	}
	for _, ab := range s.UnreadByAuthor {
		fmt.Fprintf(w, "\nUnread by %s:\n", ab.Author)
		for _, b := range ab.Books {
			fmt.Fprintf(w, "- %s (%s)\n", b.Title, b.ISBN)
		}
	}
	return nil
}
