package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookrec/internal/book"
	"bookrec/internal/platform/openlibrary"
)

type Config struct {
	Subjects   []Subject
	PerSubject int
	BatchSize  int
}

type OpenLibraryClient interface {
	SearchBooks(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
	GetBooksByISBN(ctx context.Context, isbns []string) (map[string]openlibrary.BookDetails, error)
}

// Service builds a catalog dataset from Open Library subjects.
type Service struct {
	olClient OpenLibraryClient
	cfg      Config
	logger   *slog.Logger
}

func NewService(olClient OpenLibraryClient, cfg Config, logger *slog.Logger) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.PerSubject <= 0 {
		cfg.PerSubject = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{olClient: olClient, cfg: cfg, logger: logger}
}

// Run fetches up to PerSubject valid books for every subject. Books failing
// the catalog invariants are logged and left out. A search failure aborts the
// run; a failed detail batch is logged and skipped.
func (s *Service) Run(ctx context.Context) (books []book.Book, run Run, err error) {
	names := make([]string, len(s.cfg.Subjects))
	for i, subj := range s.cfg.Subjects {
		names[i] = subj.String()
	}
	run = Run{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Subjects:  strings.Join(names, ","),
	}
	logger := s.logger.With("run_id", run.ID.String())

	defer func() {
		run.FinishedAt = time.Now()
		if err != nil {
			run.Error = err.Error()
			logger.Error("ingest run failed", "error", err)
			return
		}
		logger.Info("ingest run completed",
			"fetched", run.BooksFetched,
			"accepted", run.BooksAccepted,
			"rejected", run.BooksRejected,
		)
	}()

	processed := make(map[string]bool)
	for _, subj := range s.cfg.Subjects {
		accepted, err := s.ingestSubject(ctx, logger, subj, processed, &run)
		if err != nil {
			return books, run, err
		}
		books = append(books, accepted...)
	}
	return books, run, nil
}

func (s *Service) ingestSubject(ctx context.Context, logger *slog.Logger, subj Subject, processed map[string]bool, run *Run) ([]book.Book, error) {
	searchRes, err := s.olClient.SearchBooks(ctx, subj.Name, s.cfg.PerSubject*2)
	if err != nil {
		return nil, fmt.Errorf("search failed for %s: %w", subj.Name, err)
	}

	var (
		accepted []book.Book
		pending  []string
		authors  = make(map[string]string)
	)
	for _, doc := range searchRes.Docs {
		isbn := preferredISBN(doc.ISBN)
		if isbn == "" || processed[isbn] {
			continue
		}
		processed[isbn] = true
		pending = append(pending, isbn)
		if len(doc.AuthorNames) > 0 {
			authors[isbn] = doc.AuthorNames[0]
		}
	}

	for start := 0; start < len(pending) && len(accepted) < s.cfg.PerSubject; start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(pending))
		batch := pending[start:end]

		details, err := s.olClient.GetBooksByISBN(ctx, batch)
		if err != nil {
			logger.Warn("failed to hydrate batch", "subject", subj.Name, "size", len(batch), "error", err)
			continue
		}
		run.BooksFetched += len(details)

		for _, isbn := range batch {
			d, ok := details["ISBN:"+isbn]
			if !ok {
				continue
			}
			b, err := toBook(isbn, subj.Genre, d, authors[isbn])
			if err != nil {
				run.BooksRejected++
				logger.Debug("rejecting book", "isbn", isbn, "error", err)
				continue
			}
			accepted = append(accepted, b)
			run.BooksAccepted++
			if len(accepted) >= s.cfg.PerSubject {
				break
			}
		}
	}
	return accepted, nil
}

func toBook(isbn string, genre book.Genre, d openlibrary.BookDetails, searchAuthor string) (book.Book, error) {
	author := searchAuthor
	if len(d.Authors) > 0 && d.Authors[0].Name != "" {
		author = d.Authors[0].Name
	}

	description := d.Notes
	if description == "" && len(d.Excerpts) > 0 {
		description = d.Excerpts[0].Text
	}

	return book.New(book.Book{
		Title:       d.Title,
		Author:      author,
		Genre:       genre,
		ISBN:        isbn,
		PageCount:   d.NumberOfPages,
		Description: description,
	})
}

// preferredISBN picks the first 13 digit ISBN, or the first one given.
func preferredISBN(isbns []string) string {
	if len(isbns) == 0 {
		return ""
	}
	for _, i := range isbns {
		if len(i) == 13 {
			return i
		}
	}
	return isbns[0]
}
