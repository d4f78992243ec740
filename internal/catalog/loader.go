package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bookrec/internal/book"
)

// ErrLoadFailed means the source produced no usable books.
var ErrLoadFailed = errors.New("catalog load failed")

// LoadReport summarizes one catalog load.
type LoadReport struct {
	ID          uuid.UUID       `json:"id" yaml:"id"`
	Source      string          `json:"source" yaml:"source"`
	Read        int             `json:"read" yaml:"read"`
	Loaded      int             `json:"loaded" yaml:"loaded"`
	Overwritten int             `json:"overwritten" yaml:"overwritten"`
	Skipped     []SkippedRecord `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Fallback    bool            `json:"fallback" yaml:"fallback"`
	Error       string          `json:"error,omitempty" yaml:"error,omitempty"`
	StartedAt   time.Time       `json:"startedAt" yaml:"startedAt"`
	FinishedAt  time.Time       `json:"finishedAt" yaml:"finishedAt"`
}

// SkippedRecord identifies a record dropped during a load.
type SkippedRecord struct {
	Index  int    `json:"index" yaml:"index"`
	ISBN   string `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Reason string `json:"reason" yaml:"reason"`
}

// Load reads src and parses every record, skipping the ones that fail. When
// src cannot be read, or yields no valid book, the fallback books are
// returned instead. Books are returned in source order.
func Load(ctx context.Context, src Source, logger *slog.Logger) ([]book.Book, LoadReport) {
	if logger == nil {
		logger = slog.Default()
	}

	report := LoadReport{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
	if src != nil {
		report.Source = src.Name()
	}
	logger = logger.With("load_id", report.ID.String(), "source", report.Source)
	logger.Info("loading books")

	books, err := loadFrom(ctx, src, &report, logger)
	if err != nil {
		logger.Error("book load failed, using fallback books", "error", err)
		books = FallbackBooks()
		report.Fallback = true
		report.Error = err.Error()
	}

	report.Loaded = len(books)
	report.FinishedAt = time.Now()
	logger.Info("books loaded",
		"loaded", report.Loaded,
		"skipped", len(report.Skipped),
		"fallback", report.Fallback,
		"duration_ms", report.FinishedAt.Sub(report.StartedAt).Milliseconds(),
	)
	return books, report
}

func loadFrom(ctx context.Context, src Source, report *LoadReport, logger *slog.Logger) ([]book.Book, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrLoadFailed)
	}

	records, err := src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	report.Read = len(records)

	books := make([]book.Book, 0, len(records))
	for i, r := range records {
		b, err := ParseRecord(r)
		if err != nil {
			skipped := SkippedRecord{Index: i, ISBN: RecordISBN(r), Reason: err.Error()}
			report.Skipped = append(report.Skipped, skipped)
			logger.Warn("skipping book record", "index", i, "isbn", skipped.ISBN, "error", err)
			continue
		}
		books = append(books, b)
	}

	if len(books) == 0 {
		return nil, fmt.Errorf("%w: %d records read, none valid", ErrLoadFailed, len(records))
	}
	return books, nil
}
