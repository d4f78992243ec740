package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenres(t *testing.T) {
	genres := Genres()

	assert.Len(t, genres, 21)
	assert.Equal(t, Fiction, genres[0])
	assert.Equal(t, Philosophy, genres[len(genres)-1])

	genres[0] = "MUTATED"
	assert.Equal(t, Fiction, Genres()[0])
}

func TestParseGenre(t *testing.T) {
	tests := []struct {
		in   string
		want Genre
	}{
		{"FICTION", Fiction},
		{"fiction", Fiction},
		{"  Science Fiction ", ScienceFiction},
		{"self-help", SelfHelp},
		{"HISTORICAL_FICTION", HistoricalFiction},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGenre(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGenre_Unknown(t *testing.T) {
	for _, in := range []string{"", "   ", "SPACE_OPERA", "fict"} {
		_, err := ParseGenre(in)
		assert.ErrorIs(t, err, ErrUnknownGenre, "input %q", in)
	}
}

func TestLookupGenre(t *testing.T) {
	got, err := LookupGenre("SCIENCE_FICTION")
	require.NoError(t, err)
	assert.Equal(t, ScienceFiction, got)

	for _, in := range []string{"science_fiction", "Science Fiction", "SCIENCE-FICTION", " FICTION", ""} {
		_, err := LookupGenre(in)
		assert.ErrorIs(t, err, ErrUnknownGenre, "input %q", in)
	}
}

func TestGenre_Valid(t *testing.T) {
	assert.True(t, Biography.Valid())
	assert.False(t, Genre("").Valid())
	assert.False(t, Genre("fiction").Valid())
}
