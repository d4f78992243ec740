package history

import (
	"cmp"
	"slices"

	"bookrec/internal/book"
)

const recentLimit = 5

// Catalog is the part of the book catalog a summary looks books up in.
type Catalog interface {
	FindByGenre(genre book.Genre) []book.Book
	FindByAuthor(author string) []book.Book
}

type GenreCount struct {
	Genre book.Genre `json:"genre" yaml:"genre"`
	Books int        `json:"books" yaml:"books"`
}

type GenreBooks struct {
	Genre book.Genre  `json:"genre" yaml:"genre"`
	Books []book.Book `json:"books" yaml:"books"`
}

type AuthorBooks struct {
	Author string      `json:"author" yaml:"author"`
	Books  []book.Book `json:"books" yaml:"books"`
}

// Summary condenses a reading history into the figures used to pick what to
// read next, plus catalog books the reader has not read yet.
type Summary struct {
	UserID               string       `json:"userId" yaml:"userId"`
	BooksRead            int          `json:"booksRead" yaml:"booksRead"`
	AverageReadingSpeed  float64      `json:"averageReadingSpeed" yaml:"averageReadingSpeed"`
	AverageBooksPerMonth int          `json:"averageBooksPerMonth" yaml:"averageBooksPerMonth"`
	LastUpdated          string       `json:"lastUpdated" yaml:"lastUpdated"`
	GenrePreferences     []GenreCount `json:"genrePreferences" yaml:"genrePreferences"`
	FavoriteAuthors      []string     `json:"favoriteAuthors" yaml:"favoriteAuthors"`
	RecentBooks          []ReadBook   `json:"recentBooks" yaml:"recentBooks"`
	AverageRating        float64      `json:"averageRating" yaml:"averageRating"`
	CompletionRate       float64      `json:"completionRate" yaml:"completionRate"`

	UnreadByGenre  []GenreBooks  `json:"unreadByGenre" yaml:"unreadByGenre"`
	UnreadByAuthor []AuthorBooks `json:"unreadByAuthor" yaml:"unreadByAuthor"`
}

// Summarize builds the summary of h. Genre preferences are ranked by count,
// ties broken by genre tag; recent books are the latest five by date read.
// With a non-nil catalog, unread books are listed for the topGenres highest
// ranked genres and for every favourite author, at most perList each.
func Summarize(h ReadingHistory, c Catalog, topGenres, perList int) Summary {
	s := Summary{
		UserID:               h.UserID,
		BooksRead:            len(h.BooksRead),
		AverageReadingSpeed:  h.AverageReadingSpeed,
		AverageBooksPerMonth: h.AverageBooksPerMonth,
		LastUpdated:          h.LastUpdated,
		GenrePreferences:     rankGenres(h.GenrePreferences),
		FavoriteAuthors:      slices.Clone(h.FavoriteAuthors),
		RecentBooks:          recentBooks(h.BooksRead, recentLimit),
		AverageRating:        averageRating(h.RatingHistory),
		CompletionRate:       completionRate(h.BooksRead),
		UnreadByGenre:        []GenreBooks{},
		UnreadByAuthor:       []AuthorBooks{},
	}
	if c == nil {
		return s
	}

	read := make(map[string]bool, len(h.BooksRead))
	for _, rb := range h.BooksRead {
		if rb.ISBN != "" {
			read[rb.ISBN] = true
		}
	}
	unread := func(books []book.Book) []book.Book {
		out := make([]book.Book, 0, max(perList, 0))
		for _, b := range books {
			if read[b.ISBN] {
				continue
			}
			if perList > 0 && len(out) == perList {
				break
			}
			out = append(out, b)
		}
		return out
	}

	for i, gc := range s.GenrePreferences {
		if i == topGenres {
			break
		}
		s.UnreadByGenre = append(s.UnreadByGenre, GenreBooks{Genre: gc.Genre, Books: unread(c.FindByGenre(gc.Genre))})
	}
	for _, author := range s.FavoriteAuthors {
		s.UnreadByAuthor = append(s.UnreadByAuthor, AuthorBooks{Author: author, Books: unread(c.FindByAuthor(author))})
	}
	return s
}

func rankGenres(prefs map[book.Genre]int) []GenreCount {
	out := make([]GenreCount, 0, len(prefs))
	for g, n := range prefs {
		out = append(out, GenreCount{Genre: g, Books: n})
	}
	slices.SortFunc(out, func(a, b GenreCount) int {
		return cmp.Or(cmp.Compare(b.Books, a.Books), cmp.Compare(a.Genre, b.Genre))
	})
	return out
}

// recentBooks relies on DateLayout sorting lexically in date order.
func recentBooks(books []ReadBook, limit int) []ReadBook {
	out := slices.Clone(books)
	slices.SortStableFunc(out, func(a, b ReadBook) int {
		return cmp.Compare(b.DateRead, a.DateRead)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []ReadBook{}
	}
	return out
}

func averageRating(ratings map[string]float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}

// completionRate is a percentage.
func completionRate(books []ReadBook) float64 {
	if len(books) == 0 {
		return 0
	}
	completed := 0
	for _, b := range books {
		if b.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(books)) * 100
}
