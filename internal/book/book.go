package book

import (
	"errors"
	"strings"
)

// ErrInvalidBook is returned when a book violates one of its invariants.
var ErrInvalidBook = errors.New("invalid book")

// Book represents a book known to the catalog. It is a plain value: copies
// handed out by the catalog never alias catalog storage.
type Book struct {
	Title         string  `json:"title" yaml:"title" validate:"notblank"`
	Author        string  `json:"author" yaml:"author" validate:"notblank"`
	Genre         Genre   `json:"genre" yaml:"genre" validate:"required,genre"`
	ISBN          string  `json:"isbn" yaml:"isbn" validate:"notblank"`
	PageCount     int     `json:"pageCount" yaml:"pageCount" validate:"gt=0"`
	Description   string  `json:"description" yaml:"description"`
	AverageRating float64 `json:"averageRating" yaml:"averageRating"`
}

// New validates b and returns it unchanged.
func New(b Book) (Book, error) {
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	return b, nil
}

// NewWithDefaults creates a book from the required fields only, with a page
// count of 100, no description and no rating.
func NewWithDefaults(title, author string, genre Genre, isbn string) (Book, error) {
	return New(Book{
		Title:     title,
		Author:    author,
		Genre:     genre,
		ISBN:      isbn,
		PageCount: 100,
	})
}

// FieldError describes a single failed invariant.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every invariant a book violates.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return ErrInvalidBook.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidBook
}
