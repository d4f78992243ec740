package main

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrec/internal/catalog"
	"bookrec/internal/testutil"
)

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

// fakeTx records the statements run inside one transaction. Methods the
// seeder does not use fall through to the nil embedded Tx.
type fakeTx struct {
	pgx.Tx

	execs      []string
	table      pgx.Identifier
	columns    []string
	rows       [][]any
	copyErr    error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.NewCommandTag("TRUNCATE TABLE"), nil
}

func (f *fakeTx) CopyFrom(_ context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	if f.copyErr != nil {
		return 0, f.copyErr
	}
	f.table, f.columns = table, columns
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		f.rows = append(f.rows, values)
	}
	return int64(len(f.rows)), src.Err()
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

func newTestSeeder(tx *fakeTx) *seeder {
	return &seeder{db: &fakeDB{tx: tx}, logger: slog.New(slog.DiscardHandler)}
}

func TestSeed_CopiesValidRecordsInOrder(t *testing.T) {
	books := testutil.SampleBooks()
	bad := testutil.BookRecord(books[1])
	bad["pageCount"] = 0

	records := []catalog.Record{
		testutil.BookRecord(books[0]),
		bad,
		testutil.BookRecord(books[2]),
	}
	tx := &fakeTx{}

	n, err := newTestSeeder(tx).Seed(context.Background(), records, false)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Empty(t, tx.execs)
	assert.Equal(t, pgx.Identifier{"catalog_books"}, tx.table)
	assert.Equal(t, catalogColumns, tx.columns)
	require.Len(t, tx.rows, 2)
	assert.Equal(t, books[0].ISBN, tx.rows[0][3])
	assert.Equal(t, string(books[2].Genre), tx.rows[1][2])
	assert.True(t, tx.committed)
}

func TestSeed_Truncate(t *testing.T) {
	t.Run("commits truncate and copy together", func(t *testing.T) {
		tx := &fakeTx{}

		_, err := newTestSeeder(tx).Seed(context.Background(), nil, true)

		require.NoError(t, err)
		assert.Equal(t, []string{"TRUNCATE catalog_books RESTART IDENTITY"}, tx.execs)
		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
	})

	t.Run("failed copy rolls back the truncate", func(t *testing.T) {
		tx := &fakeTx{copyErr: errors.New("connection reset")}
		records := []catalog.Record{testutil.BookRecord(testutil.TestBook)}

		_, err := newTestSeeder(tx).Seed(context.Background(), records, true)

		assert.ErrorContains(t, err, "connection reset")
		assert.Equal(t, []string{"TRUNCATE catalog_books RESTART IDENTITY"}, tx.execs)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
	})
}

func TestSeed_BeginError(t *testing.T) {
	s := &seeder{db: &fakeDB{beginErr: errors.New("pool closed")}, logger: slog.New(slog.DiscardHandler)}

	_, err := s.Seed(context.Background(), nil, true)

	assert.ErrorContains(t, err, "pool closed")
}
