package catalog

import (
	"context"

	"bookrec/internal/book"
)

// Repository is the lookup contract consumed by the recommendation layer.
type Repository interface {
	FindByISBN(isbn string) (book.Book, bool)
	FindByTitle(title string) []book.Book
	FindByAuthor(author string) []book.Book
	FindByGenre(genre book.Genre) []book.Book
	FindAll() []book.Book
	Save(b *book.Book) (book.Book, error)
}

// Record is one raw entry read from a Source, keyed by field name.
type Record map[string]any

// Source supplies raw book records for the initial catalog load.
//
//go:generate mockgen -destination=mock_source_test.go -package=catalog bookrec/internal/catalog Source
type Source interface {
	// Name identifies the source in logs and load reports.
	Name() string
	// Records reads the whole dataset. An error means the container itself
	// could not be read; per-record problems are left to the loader.
	Records(ctx context.Context) ([]Record, error)
}

var _ Repository = (*Catalog)(nil)
