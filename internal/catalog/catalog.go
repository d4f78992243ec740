package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"bookrec/internal/book"
)

// ErrInvalidArgument is returned by Save when no book is given.
var ErrInvalidArgument = errors.New("invalid argument")

// Catalog is an in-memory set of books keyed by ISBN.
type Catalog struct {
	mu     sync.RWMutex
	books  map[string]book.Book
	report LoadReport
}

// New builds a catalog from src. Loading never fails: an unreadable source
// is replaced by the fallback books and the condition is logged.
func New(ctx context.Context, src Source, logger *slog.Logger) *Catalog {
	books, report := Load(ctx, src, logger)
	c := NewFromBooks(books)
	c.report = report
	c.report.Overwritten = len(books) - len(c.books)
	return c
}

// NewFromBooks indexes books in order. A later book replaces an earlier one
// with the same ISBN.
func NewFromBooks(books []book.Book) *Catalog {
	c := &Catalog{books: make(map[string]book.Book, len(books))}
	for _, b := range books {
		c.books[b.ISBN] = b
	}
	return c
}

func (c *Catalog) FindByISBN(isbn string) (book.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.books[isbn]
	return b, ok
}

// FindByTitle returns books whose title contains title, ignoring case.
// Blank input matches nothing.
func (c *Catalog) FindByTitle(title string) []book.Book {
	if strings.TrimSpace(title) == "" {
		return []book.Book{}
	}
	needle := strings.ToLower(title)
	return c.filter(func(b book.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	})
}

// FindByAuthor returns books whose author contains author, ignoring case.
// Blank input matches nothing.
func (c *Catalog) FindByAuthor(author string) []book.Book {
	if strings.TrimSpace(author) == "" {
		return []book.Book{}
	}
	needle := strings.ToLower(author)
	return c.filter(func(b book.Book) bool {
		return strings.Contains(strings.ToLower(b.Author), needle)
	})
}

func (c *Catalog) FindByGenre(genre book.Genre) []book.Book {
	if genre == "" {
		return []book.Book{}
	}
	return c.filter(func(b book.Book) bool {
		return b.Genre == genre
	})
}

// FindAll returns a snapshot of every indexed book.
func (c *Catalog) FindAll() []book.Book {
	return c.filter(func(book.Book) bool { return true })
}

// Save inserts b or replaces the book stored under the same ISBN. A book
// that fails validation is rejected with a *book.ValidationError.
func (c *Catalog) Save(b *book.Book) (book.Book, error) {
	if b == nil {
		return book.Book{}, fmt.Errorf("%w: book cannot be nil", ErrInvalidArgument)
	}
	if err := b.Validate(); err != nil {
		return book.Book{}, err
	}

	stored := *b
	c.mu.Lock()
	c.books[stored.ISBN] = stored
	c.mu.Unlock()
	return stored, nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// Report describes how the catalog was initialized.
func (c *Catalog) Report() LoadReport {
	r := c.report
	r.Skipped = slices.Clone(c.report.Skipped)
	return r
}

func (c *Catalog) filter(match func(book.Book) bool) []book.Book {
	c.mu.RLock()
	out := make([]book.Book, 0)
	for _, b := range c.books {
		if match(b) {
			out = append(out, b)
		}
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b book.Book) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ISBN, b.ISBN))
	})
	return out
}
