package book

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGenre is returned for tags outside the closed set.
var ErrUnknownGenre = errors.New("unknown genre")

// Genre is a closed enumeration of book categories. The zero value means the
// genre is absent.
type Genre string

const (
	Fiction           Genre = "FICTION"
	NonFiction        Genre = "NON_FICTION"
	Mystery           Genre = "MYSTERY"
	Thriller          Genre = "THRILLER"
	Romance           Genre = "ROMANCE"
	ScienceFiction    Genre = "SCIENCE_FICTION"
	Fantasy           Genre = "FANTASY"
	Biography         Genre = "BIOGRAPHY"
	History           Genre = "HISTORY"
	SelfHelp          Genre = "SELF_HELP"
	Business          Genre = "BUSINESS"
	Health            Genre = "HEALTH"
	Travel            Genre = "TRAVEL"
	Cooking           Genre = "COOKING"
	Art               Genre = "ART"
	Poetry            Genre = "POETRY"
	Drama             Genre = "DRAMA"
	Children          Genre = "CHILDREN"
	YoungAdult        Genre = "YOUNG_ADULT"
	HistoricalFiction Genre = "HISTORICAL_FICTION"
	Philosophy        Genre = "PHILOSOPHY"
)

var allGenres = []Genre{
	Fiction, NonFiction, Mystery, Thriller, Romance, ScienceFiction,
	Fantasy, Biography, History, SelfHelp, Business, Health,
	Travel, Cooking, Art, Poetry, Drama, Children, YoungAdult, HistoricalFiction, Philosophy,
}

var genreSet = func() map[Genre]struct{} {
	m := make(map[Genre]struct{}, len(allGenres))
	for _, g := range allGenres {
		m[g] = struct{}{}
	}
	return m
}()

// Genres returns every genre in declaration order.
func Genres() []Genre {
	out := make([]Genre, len(allGenres))
	copy(out, allGenres)
	return out
}

// ParseGenre maps a tag such as "science fiction" or "Science-Fiction" onto
// its Genre.
func ParseGenre(s string) (Genre, error) {
	tag := strings.ToUpper(strings.TrimSpace(s))
	tag = strings.NewReplacer("-", "_", " ", "_").Replace(tag)
	g := Genre(tag)
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGenre, s)
	}
	return g, nil
}

// LookupGenre returns the Genre whose tag is exactly s, as stored in dataset
// records. Use ParseGenre for typed user input.
func LookupGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGenre, s)
	}
	return g, nil
}

// Valid reports whether g is a member of the closed set.
func (g Genre) Valid() bool {
	_, ok := genreSet[g]
	return ok
}

func (g Genre) String() string {
	return string(g)
}
