package testutil

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"bookrec/internal/book"
)

// TestBook is a valid book for tests.
var TestBook = book.Book{
	Title:         "Klara and the Sun",
	Author:        "Kazuo Ishiguro",
	Genre:         book.ScienceFiction,
	ISBN:          "9780571364879",
	PageCount:     303,
	Description:   "An Artificial Friend watches customers come and go.",
	AverageRating: 4.7,
}

// SampleBooks returns five valid books spanning distinct genres.
func SampleBooks() []book.Book {
	return []book.Book{
		TestBook,
		{
			Title:         "The Lincoln Highway",
			Author:        "Amor Towles",
			Genre:         book.Fiction,
			ISBN:          "9780735222359",
			PageCount:     576,
			Description:   "Emmett Watson is driven home to Nebraska by the warden of a juvenile work farm.",
			AverageRating: 4.5,
		},
		{
			Title:         "The Code Breaker",
			Author:        "Walter Isaacson",
			Genre:         book.Biography,
			ISBN:          "9781982115852",
			PageCount:     560,
			Description:   "Jennifer Doudna and the race to edit the human genome.",
			AverageRating: 4.6,
		},
		{
			Title:         "The Martian",
			Author:        "Andy Weir",
			Genre:         book.ScienceFiction,
			ISBN:          "9780553418026",
			PageCount:     384,
			Description:   "An astronaut becomes stranded on Mars.",
			AverageRating: 4.8,
		},
		{
			Title:         "Consciousness Explained",
			Author:        "Daniel C. Dennett",
			Genre:         book.Philosophy,
			ISBN:          "9780316180665",
			PageCount:     528,
			AverageRating: 4.3,
		},
	}
}

// BookRecord converts b into the raw field bag a dataset file would hold.
func BookRecord(b book.Book) map[string]any {
	return map[string]any{
		"title":         b.Title,
		"author":        b.Author,
		"genre":         string(b.Genre),
		"isbn":          b.ISBN,
		"pageCount":     b.PageCount,
		"description":   b.Description,
		"averageRating": b.AverageRating,
	}
}

// WriteDataset encodes items as a JSON array into dir/name and returns the path.
func WriteDataset(t testing.TB, dir, name string, items []any) string {
	t.Helper()
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(items, "", "  ")
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	return WriteFile(t, dir, name, data)
}

// WriteFile writes raw bytes into dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}
