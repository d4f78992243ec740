package catalog

import (
	"errors"
	"fmt"
	"math"

	"bookrec/internal/book"
)

// ErrRecordSkipped marks a record the loader dropped.
var ErrRecordSkipped = errors.New("record skipped")

// Record field names.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldGenre         = "genre"
	FieldISBN          = "isbn"
	FieldPageCount     = "pageCount"
	FieldDescription   = "description"
	FieldAverageRating = "averageRating"
)

// ParseRecord converts a raw record into a validated Book.
func ParseRecord(r Record) (book.Book, error) {
	if r == nil {
		return book.Book{}, fmt.Errorf("%w: record is not an object", ErrRecordSkipped)
	}

	var (
		b   book.Book
		err error
	)
	if b.Title, err = requiredString(r, FieldTitle); err != nil {
		return book.Book{}, err
	}
	if b.Author, err = requiredString(r, FieldAuthor); err != nil {
		return book.Book{}, err
	}
	if b.ISBN, err = requiredString(r, FieldISBN); err != nil {
		return book.Book{}, err
	}

	tag, err := requiredString(r, FieldGenre)
	if err != nil {
		return book.Book{}, err
	}
	if b.Genre, err = book.LookupGenre(tag); err != nil {
		return book.Book{}, fmt.Errorf("%w: %w", ErrRecordSkipped, err)
	}

	if b.PageCount, err = requiredInt(r, FieldPageCount); err != nil {
		return book.Book{}, err
	}
	if b.Description, err = optionalString(r, FieldDescription); err != nil {
		return book.Book{}, err
	}
	if b.AverageRating, err = optionalFloat(r, FieldAverageRating); err != nil {
		return book.Book{}, err
	}

	if b, err = book.New(b); err != nil {
		return book.Book{}, fmt.Errorf("%w: %w", ErrRecordSkipped, err)
	}
	return b, nil
}

// RecordISBN returns the record's isbn when it is a string, for diagnostics.
func RecordISBN(r Record) string {
	s, _ := r[FieldISBN].(string)
	return s
}

func requiredString(r Record, key string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing %s", ErrRecordSkipped, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s has type %T, want string", ErrRecordSkipped, key, v)
	}
	return s, nil
}

func optionalString(r Record, key string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s has type %T, want string", ErrRecordSkipped, key, v)
	}
	return s, nil
}

func requiredInt(r Record, key string) (int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing %s", ErrRecordSkipped, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			break
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			break
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: %s has value %v (%T), want integer", ErrRecordSkipped, key, v, v)
}

func optionalFloat(r Record, key string) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: %s has type %T, want number", ErrRecordSkipped, key, v)
}
