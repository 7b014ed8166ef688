package lastfm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/garden/internal/logger"
)

const recentBody = `{"recenttracks":{"track":[
  {"name":"Now","url":"https://last.fm/now","artist":{"#text":"A"},"album":{"#text":"X"},
   "image":[{"#text":"s.png","size":"small"},{"#text":"xl.png","size":"extralarge"}],
   "@attr":{"nowplaying":"true"}},
  {"name":"Past","url":"https://last.fm/past","artist":{"#text":"B"},"album":{"#text":""},
   "image":[{"#text":"","size":"small"}],
   "date":{"uts":"1704067200","#text":"01 Jan 2024, 00:00"}}
]}}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(ClientOptions{BaseURL: srv.URL + "/2.0/", APIKey: "key", Timeout: 2 * time.Second}, logger.NewNop())
}

func TestRecentTracksRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/2.0/", r.URL.Path)
		assert.Equal(t, "user.getrecenttracks", q.Get("method"))
		assert.Equal(t, "ansango", q.Get("user"))
		assert.Equal(t, "key", q.Get("api_key"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "11", q.Get("limit"))
		assert.False(t, q.Has("period"))
		_, _ = w.Write([]byte(recentBody))
	})

	tracks, err := c.RecentTracks(context.Background(), "ansango", 11)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.True(t, tracks[0].IsNowPlaying())
	assert.False(t, tracks[1].IsNowPlaying())
	assert.Equal(t, "1704067200", tracks[1].Date.UTS)
}

func TestTopChartsRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("method") {
		case "user.gettopartists":
			assert.Equal(t, Period7Day, q.Get("period"))
			_, _ = w.Write([]byte(`{"topartists":{"artist":[{"name":"A","playcount":"42","url":"u","@attr":{"rank":"1"}}]}}`))
		case "user.gettopalbums":
			assert.Equal(t, Period1Month, q.Get("period"))
			// A single album comes back as an object.
			_, _ = w.Write([]byte(`{"topalbums":{"album":{"name":"X","playcount":"7","url":"u","artist":{"name":"A"},"@attr":{"rank":"1"}}}}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	artists, err := c.TopArtists(context.Background(), "ansango", Period7Day, 10)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "42", artists[0].PlayCount)

	albums, err := c.TopAlbums(context.Background(), "ansango", Period1Month, 12)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "A", albums[0].Artist.Name)
}

func TestCallFailures(t *testing.T) {
	cases := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"api error with 200", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":10,"message":"Invalid API key"}`))
		}},
		{"status", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) }},
		{"body", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"recenttracks":`)) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tracks, err := newTestClient(t, tc.h).RecentTracks(context.Background(), "ansango", 1)
			assert.Nil(t, tracks)
			assert.ErrorIs(t, err, ErrFetch)
		})
	}
}

func TestMapTracks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(recentBody)) })
	raw, err := c.RecentTracks(context.Background(), "ansango", 2)
	require.NoError(t, err)

	tracks := MapTracks(raw)
	require.Len(t, tracks, 2)

	assert.True(t, tracks[0].NowPlaying)
	assert.Nil(t, tracks[0].PlayedAt)
	assert.Equal(t, "xl.png", tracks[0].Image)
	assert.Equal(t, "X", tracks[0].Album)

	require.NotNil(t, tracks[1].PlayedAt)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *tracks[1].PlayedAt)
	assert.Empty(t, tracks[1].Image)
	assert.Equal(t, "B", tracks[1].Artist)
}

func TestMapChartsParsesNumbers(t *testing.T) {
	artists := MapArtists([]TopArtist{{Name: "A", PlayCount: "120", Attr: Rank{Rank: "2"}}, {Name: "B", PlayCount: "n/a"}})
	assert.Equal(t, 120, artists[0].PlayCount)
	assert.Equal(t, 2, artists[0].Rank)
	assert.Zero(t, artists[1].PlayCount)

	albums := MapAlbums([]TopAlbum{{Name: "X", PlayCount: "9", Artist: AlbumArtist{Name: "A"}, Image: list[Image]{{Text: "m.png", Size: "medium"}, {Text: "l.png", Size: "large"}}}})
	assert.Equal(t, "A", albums[0].Artist)
	assert.Equal(t, "l.png", albums[0].Image)
	assert.Equal(t, 9, albums[0].PlayCount)
}
