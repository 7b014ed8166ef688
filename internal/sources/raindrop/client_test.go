package raindrop

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/garden/internal/logger"
)

func items(from, n int) []Raindrop {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]Raindrop, n)
	for i := range out {
		id := from + i
		out[i] = Raindrop{
			ID:      int64(id),
			Title:   "bookmark " + strconv.Itoa(id),
			Created: base.Add(time.Duration(id) * time.Hour).Format(time.RFC3339),
		}
	}
	return out
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(ClientOptions{BaseURL: srv.URL + "/", Token: "secret", Timeout: 2 * time.Second}, logger.NewNop())
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestFetchPageRejectsNegativeIndex(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })

	resp, err := c.FetchPage(context.Background(), 0, -1)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidPageIndex)
	assert.Zero(t, calls.Load())
}

func TestFetchPageRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/raindrops/42", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("perpage"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		writeJSON(t, w, RaindropsResponse{Items: items(0, 2), Count: 2})
	})

	resp, err := c.FetchPage(context.Background(), 42, 3)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Count)
}

func TestFetchPageFailures(t *testing.T) {
	cases := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) }},
		{"body", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("{not json")) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := newTestClient(t, tc.h).FetchPage(context.Background(), 0, 0)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrFetch)
		})
	}
}

func TestFetchAllPagesUntilCount(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Query().Get("page") {
		case "0":
			writeJSON(t, w, RaindropsResponse{Items: items(0, 50), Count: 70})
		case "1":
			writeJSON(t, w, RaindropsResponse{Items: items(50, 20), Count: 70})
		default:
			t.Errorf("unexpected page %s", r.URL.Query().Get("page"))
		}
	})

	all, err := c.FetchAll(context.Background(), AllCollections)
	require.NoError(t, err)
	assert.Len(t, all, 70)
	assert.EqualValues(t, 2, calls.Load())

	// Newest first.
	assert.EqualValues(t, 69, all[0].ID)
	assert.EqualValues(t, 0, all[69].ID)
}

func TestFetchAllKeepsItemsOnFailure(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("page") == "0" {
			writeJSON(t, w, RaindropsResponse{Items: items(0, 50), Count: 120})
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	all, err := c.FetchAll(context.Background(), AllCollections)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Len(t, all, 50)
	assert.EqualValues(t, 2, calls.Load())
}

func TestFetchAllStopsOnEmptyPage(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("page") == "0" {
			writeJSON(t, w, RaindropsResponse{Items: items(0, 10), Count: 500})
			return
		}
		writeJSON(t, w, RaindropsResponse{Items: []Raindrop{}, Count: 500})
	})

	all, err := c.FetchAll(context.Background(), AllCollections)
	require.NoError(t, err)
	assert.Len(t, all, 10)
	assert.EqualValues(t, 2, calls.Load())
}

func TestFetchRootCollections(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		writeJSON(t, w, CollectionsResponse{Result: true, Items: []Collection{{ID: 1, Title: "ansango.books"}}})
	})

	resp, err := c.FetchRootCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "ansango.books", resp.Items[0].Title)
}

func TestFetchHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, CollectionsResponse{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchRootCollections(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
	assert.True(t, errors.Is(err, context.Canceled))
}
