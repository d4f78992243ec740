package catalog

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrec/internal/book"
	"bookrec/internal/testutil"
)

var discard = slog.New(slog.DiscardHandler)

func sampleCatalog() *Catalog {
	return NewFromBooks(append(testutil.SampleBooks(), FallbackBooks()...))
}

func TestCatalog_FindByISBN(t *testing.T) {
	c := sampleCatalog()

	t.Run("found", func(t *testing.T) {
		got, ok := c.FindByISBN("9780553418026")
		require.True(t, ok)
		assert.Equal(t, "The Martian", got.Title)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := c.FindByISBN("0000000000000")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := c.FindByISBN("")
		assert.False(t, ok)
	})
}

func TestCatalog_FindByTitle(t *testing.T) {
	c := sampleCatalog()

	t.Run("case insensitive substring", func(t *testing.T) {
		got := c.FindByTitle("MIDNIGHT")
		require.Len(t, got, 1)
		assert.Equal(t, "The Midnight Library", got[0].Title)
	})

	t.Run("multiple matches sorted by title", func(t *testing.T) {
		got := c.FindByTitle("the ")
		titles := make([]string, len(got))
		for i, b := range got {
			titles[i] = b.Title
		}
		assert.Equal(t, []string{
			"Klara and the Sun",
			"The Code Breaker",
			"The Lincoln Highway",
			"The Martian",
			"The Midnight Library",
			"The Seven Husbands of Evelyn Hugo",
		}, titles)
	})

	t.Run("blank input", func(t *testing.T) {
		assert.Empty(t, c.FindByTitle(""))
		assert.Empty(t, c.FindByTitle("   "))
		assert.NotNil(t, c.FindByTitle(""))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.FindByTitle("zzz"))
	})
}

func TestCatalog_FindByAuthor(t *testing.T) {
	c := sampleCatalog()

	got := c.FindByAuthor("weir")
	require.Len(t, got, 2)
	assert.Equal(t, "Project Hail Mary", got[0].Title)
	assert.Equal(t, "The Martian", got[1].Title)

	assert.Empty(t, c.FindByAuthor(""))
	assert.Empty(t, c.FindByAuthor("\t"))
}

func TestCatalog_FindByGenre(t *testing.T) {
	c := sampleCatalog()

	got := c.FindByGenre(book.ScienceFiction)
	assert.Len(t, got, 3)
	for _, b := range got {
		assert.Equal(t, book.ScienceFiction, b.Genre)
	}

	assert.Empty(t, c.FindByGenre(book.Cooking))
	assert.Empty(t, c.FindByGenre(""))
}

func TestCatalog_FindAll_ReturnsSnapshot(t *testing.T) {
	c := sampleCatalog()

	all := c.FindAll()
	require.Len(t, all, 9)

	all[0].Title = "mutated"
	for _, b := range c.FindAll() {
		assert.NotEqual(t, "mutated", b.Title)
	}
}

func TestCatalog_Save(t *testing.T) {
	t.Run("nil book", func(t *testing.T) {
		c := sampleCatalog()

		_, err := c.Save(nil)

		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 9, c.Len())
	})

	t.Run("invalid book", func(t *testing.T) {
		c := sampleCatalog()

		_, err := c.Save(&book.Book{Title: "x"})

		assert.ErrorIs(t, err, book.ErrInvalidBook)
		var verr *book.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 9, c.Len())
		_, ok := c.FindByISBN("")
		assert.False(t, ok)
	})

	t.Run("insert", func(t *testing.T) {
		c := sampleCatalog()
		b, err := book.NewWithDefaults("Seveneves", "Neal Stephenson", book.ScienceFiction, "9780062190376")
		require.NoError(t, err)

		stored, err := c.Save(&b)

		require.NoError(t, err)
		assert.Equal(t, b, stored)
		assert.Len(t, c.FindAll(), 10)
	})

	t.Run("overwrite existing isbn", func(t *testing.T) {
		c := sampleCatalog()
		replacement := testutil.TestBook
		replacement.Title = "Klara and the Sun (Anniversary Edition)"

		_, err := c.Save(&replacement)
		require.NoError(t, err)

		got, ok := c.FindByISBN(testutil.TestBook.ISBN)
		require.True(t, ok)
		assert.Equal(t, replacement.Title, got.Title)
		assert.Len(t, c.FindAll(), 9)
	})

	t.Run("caller keeps no handle", func(t *testing.T) {
		c := sampleCatalog()
		b := testutil.TestBook

		_, err := c.Save(&b)
		require.NoError(t, err)
		b.Title = "changed after save"

		got, _ := c.FindByISBN(b.ISBN)
		assert.Equal(t, testutil.TestBook.Title, got.Title)
	})
}

func TestNew_LastWriteWinsOnDuplicateISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := testutil.BookRecord(testutil.TestBook)
	second := testutil.BookRecord(testutil.TestBook)
	second["title"] = "Klara and the Sun, Second Printing"

	src := NewMockSource(ctrl)
	src.EXPECT().Name().Return("mock").AnyTimes()
	src.EXPECT().Records(gomock.Any()).Return([]Record{first, second}, nil)

	c := New(context.Background(), src, discard)

	got, ok := c.FindByISBN(testutil.TestBook.ISBN)
	require.True(t, ok)
	assert.Equal(t, "Klara and the Sun, Second Printing", got.Title)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Report().Overwritten)
}

func TestNew_FallbackWhenSourceFails(t *testing.T) {
	c := New(context.Background(), NewFileSource("/does/not/exist.json"), discard)

	assert.ElementsMatch(t, FallbackBooks(), c.FindAll())
	assert.True(t, c.Report().Fallback)
	assert.NotEmpty(t, c.Report().Error)
}

func TestNew_NilSource(t *testing.T) {
	c := New(context.Background(), nil, nil)

	assert.Equal(t, len(FallbackBooks()), c.Len())
	assert.True(t, c.Report().Fallback)
}

func TestCatalog_ConcurrentSaveAndRead(t *testing.T) {
	c := sampleCatalog()
	books := testutil.SampleBooks()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			b := books[i%len(books)]
			_, _ = c.Save(&b)
		}(i)
		go func() {
			defer wg.Done()
			_ = c.FindAll()
			_ = c.FindByTitle("the")
		}()
	}
	wg.Wait()

	assert.Equal(t, 9, c.Len())
}
