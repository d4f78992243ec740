package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookrec/internal/book"
)

// Subject maps an Open Library subject onto the catalog genre its books get.
type Subject struct {
	Name  string
	Genre book.Genre
}

// ParseSubject parses "name=GENRE". Without "=GENRE" the subject name itself
// must be a genre tag, e.g. "fantasy".
func ParseSubject(s string) (Subject, error) {
	name, tag, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return Subject{}, fmt.Errorf("subject %q has no name", s)
	}
	if !found {
		tag = name
	}

	genre, err := book.ParseGenre(tag)
	if err != nil {
		return Subject{}, fmt.Errorf("subject %q: %w", s, err)
	}
	return Subject{Name: name, Genre: genre}, nil
}

func (s Subject) String() string {
	return s.Name + "=" + string(s.Genre)
}

// Run summarises one dataset fetch.
type Run struct {
	ID            uuid.UUID `json:"id" yaml:"id"`
	StartedAt     time.Time `json:"startedAt" yaml:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt" yaml:"finishedAt"`
	Subjects      string    `json:"subjects" yaml:"subjects"`
	BooksFetched  int       `json:"booksFetched" yaml:"booksFetched"`
	BooksAccepted int       `json:"booksAccepted" yaml:"booksAccepted"`
	BooksRejected int       `json:"booksRejected" yaml:"booksRejected"`
	Error         string    `json:"error,omitempty" yaml:"error,omitempty"`
}
