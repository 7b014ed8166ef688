package lastfm

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/garden/internal/cache"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/logger"
)

type fakeFetcher struct {
	tracks     []RecentTrack
	artistsErr error
	calls      atomic.Int32
}

func (f *fakeFetcher) RecentTracks(ctx context.Context, user string, limit int) ([]RecentTrack, error) {
	f.calls.Add(1)
	if limit < len(f.tracks) {
		return f.tracks[:limit], nil
	}
	return f.tracks, nil
}

func (f *fakeFetcher) TopArtists(ctx context.Context, user, period string, limit int) ([]TopArtist, error) {
	f.calls.Add(1)
	if f.artistsErr != nil {
		return nil, f.artistsErr
	}
	return []TopArtist{{Name: "A", PlayCount: "5", Attr: Rank{Rank: "1"}}}, nil
}

func (f *fakeFetcher) TopAlbums(ctx context.Context, user, period string, limit int) ([]TopAlbum, error) {
	f.calls.Add(1)
	return []TopAlbum{{Name: "X", PlayCount: "3", Attr: Rank{Rank: "1"}}}, nil
}

func recent(n int, nowPlaying bool) []RecentTrack {
	var out []RecentTrack
	if nowPlaying {
		out = append(out, RecentTrack{Name: "playing", Attr: &TrackAttr{NowPlaying: "true"}})
	}
	for i := 0; i < n; i++ {
		out = append(out, RecentTrack{Name: fmt.Sprintf("t%d", i), Date: &TrackDate{UTS: fmt.Sprint(1700000000 - i*60)}})
	}
	return out
}

func newTestService(f Fetcher) *Service {
	return NewService(f, "ansango", cache.NewSlot[*domain.Music](), logger.NewNop())
}

func TestDataDropsNowPlayingAndTruncates(t *testing.T) {
	f := &fakeFetcher{tracks: recent(10, true)}
	music, err := newTestService(f).Data(context.Background())
	require.NoError(t, err)

	require.Len(t, music.Tracks, 10)
	for _, tr := range music.Tracks {
		assert.False(t, tr.NowPlaying)
		assert.NotNil(t, tr.PlayedAt)
	}
	assert.Equal(t, "t0", music.Tracks[0].Name)
	assert.Len(t, music.Artists, 1)
	assert.Len(t, music.Albums, 1)
}

func TestDataKeepsAtMostTenTracks(t *testing.T) {
	f := &fakeFetcher{tracks: recent(11, false)}
	music, err := newTestService(f).Data(context.Background())
	require.NoError(t, err)
	assert.Len(t, music.Tracks, 10)
	assert.Equal(t, "t9", music.Tracks[9].Name)
}

func TestDataIsCached(t *testing.T) {
	f := &fakeFetcher{tracks: recent(3, false)}
	s := newTestService(f)

	first, err := s.Data(context.Background())
	require.NoError(t, err)
	second, err := s.Data(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 3, f.calls.Load())
}

func TestDataFailsAsAWhole(t *testing.T) {
	f := &fakeFetcher{tracks: recent(3, false), artistsErr: ErrFetch}
	s := newTestService(f)

	music, err := s.Data(context.Background())
	assert.Nil(t, music)
	assert.ErrorIs(t, err, ErrFetch)
	assert.False(t, s.Loaded())

	// The next call retries.
	f.artistsErr = nil
	music, err = s.Data(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, music)
	assert.True(t, s.Loaded())
}

func TestCurrentTrack(t *testing.T) {
	f := &fakeFetcher{tracks: recent(3, true)}
	s := newTestService(f)

	track, ok, err := s.CurrentTrack(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "playing", track.Name)
	assert.True(t, track.NowPlaying)

	// Not cached.
	_, _, err = s.CurrentTrack(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.calls.Load())
	assert.False(t, s.Loaded())
}

func TestCurrentTrackWithoutScrobbles(t *testing.T) {
	_, ok, err := newTestService(&fakeFetcher{}).CurrentTrack(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrentTrackError(t *testing.T) {
	boom := errors.New("boom")
	_, ok, err := newTestService(failingRecent{boom}).CurrentTrack(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

type failingRecent struct{ err error }

func (f failingRecent) RecentTracks(context.Context, string, int) ([]RecentTrack, error) {
	return nil, f.err
}

func (f failingRecent) TopArtists(context.Context, string, string, int) ([]TopArtist, error) {
	return nil, f.err
}

func (f failingRecent) TopAlbums(context.Context, string, string, int) ([]TopAlbum, error) {
	return nil, f.err
}
