package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server, retries int) *Client {
	return NewClient("bookrec-test", 1000, retries).
		WithBaseURL(srv.URL).
		WithBackoff(time.Millisecond)
}

func TestClient_SearchBooks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "subject:science fiction", r.URL.Query().Get("q"))
		assert.Equal(t, "bookrec-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"numFound":1,"docs":[{"key":"/works/OL1W","title":"The Martian","author_name":["Andy Weir"],"isbn":["0553418025","9780553418026"]}]}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv, 0).SearchBooks(context.Background(), "science fiction", 5)

	require.NoError(t, err)
	require.Len(t, res.Docs, 1)
	assert.Equal(t, "The Martian", res.Docs[0].Title)
	assert.Equal(t, []string{"Andy Weir"}, res.Docs[0].AuthorNames)
}

func TestClient_GetBooksByISBN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ISBN:9780553418026", r.URL.Query().Get("bibkeys"))
		_, _ = w.Write([]byte(`{"ISBN:9780553418026":{"title":"The Martian","authors":[{"name":"Andy Weir"}],"number_of_pages":384}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv, 0).GetBooksByISBN(context.Background(), []string{"9780553418026"})

	require.NoError(t, err)
	assert.Equal(t, 384, res["ISBN:9780553418026"].NumberOfPages)

	empty, err := newTestClient(srv, 0).GetBooksByISBN(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, empty)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"numFound":0,"docs":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 3).SearchBooks(context.Background(), "fiction", 1)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 2).SearchBooks(context.Background(), "fiction", 1)

	assert.ErrorContains(t, err, "after 2 retries")
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 3).SearchBooks(context.Background(), "fiction", 1)

	assert.ErrorContains(t, err, "404")
	assert.Equal(t, int32(1), calls.Load())
}
