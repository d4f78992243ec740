package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"bookrec/internal/catalog"
)

var catalogColumns = []string{"title", "author", "genre", "isbn", "page_count", "description", "average_rating"}

type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type seeder struct {
	db     db
	logger *slog.Logger
}

// Seed copies every valid record into catalog_books, in order. Invalid
// records are logged and left out. With truncate the table is emptied in the
// same transaction, so a failed copy leaves the previous rows in place.
func (s *seeder) Seed(ctx context.Context, records []catalog.Record, truncate bool) (int64, error) {
	rows := make([][]any, 0, len(records))
	for i, r := range records {
		b, err := catalog.ParseRecord(r)
		if err != nil {
			s.logger.Warn("skipping record", "index", i, "isbn", catalog.RecordISBN(r), "error", err)
			continue
		}
		rows = append(rows, []any{b.Title, b.Author, string(b.Genre), b.ISBN, b.PageCount, b.Description, b.AverageRating})
	}

	var n int64
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if truncate {
			if _, err := tx.Exec(ctx, "TRUNCATE catalog_books RESTART IDENTITY"); err != nil {
				return fmt.Errorf("truncate catalog_books: %w", err)
			}
		}

		var err error
		n, err = tx.CopyFrom(ctx, pgx.Identifier{"catalog_books"}, catalogColumns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("copy into catalog_books: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("catalog books seeded", "inserted", n, "skipped", len(records)-len(rows))
	return n, nil
}
