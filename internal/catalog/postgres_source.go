package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of *pgxpool.Pool the Postgres source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads book records from the catalog_books table, in insertion
// order so later rows win on duplicate ISBNs.
type PostgresSource struct {
	db Querier
}

func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Name() string {
	return "postgres:catalog_books"
}

const catalogBooksSQL = `
	SELECT title, author, genre, isbn,
		page_count AS "pageCount",
		description,
		average_rating AS "averageRating"
	FROM catalog_books
	ORDER BY id ASC`

func (s *PostgresSource) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.Query(ctx, catalogBooksSQL)
	if err != nil {
		return nil, fmt.Errorf("query catalog_books: %w", err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("scan catalog_books: %w", err)
	}

	records := make([]Record, len(maps))
	for i, m := range maps {
		records[i] = Record(m)
	}
	return records, nil
}
