package lastfm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/garden/internal/cache"
	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/logger"
)

const (
	recentLimit  = 11
	recentKeep   = 10
	artistsLimit = 10
	albumsLimit  = 12
)

// Fetcher is the part of Client the service depends on.
type Fetcher interface {
	RecentTracks(ctx context.Context, user string, limit int) ([]RecentTrack, error)
	TopArtists(ctx context.Context, user, period string, limit int) ([]TopArtist, error)
	TopAlbums(ctx context.Context, user, period string, limit int) ([]TopAlbum, error)
}

type Service struct {
	fetcher Fetcher
	user    string
	slot    *cache.Slot[*domain.Music]
	logger  logger.Logger
}

// NewService wires the music service for user. A nil slot gets a fresh one.
func NewService(f Fetcher, user string, slot *cache.Slot[*domain.Music], log logger.Logger) *Service {
	if slot == nil {
		slot = cache.NewSlot[*domain.Music]()
	}
	return &Service{
		fetcher: f,
		user:    user,
		slot:    slot,
		logger:  log.Named("lastfm").With(logger.String("user", user)),
	}
}

// Data returns the recent tracks, the weekly top artists and the monthly
// top albums. The three calls run concurrently; if any fails the whole
// snapshot fails and nothing is cached.
func (s *Service) Data(ctx context.Context) (*domain.Music, error) {
	return s.slot.Get(ctx, s.fetch)
}

func (s *Service) fetch(ctx context.Context) (*domain.Music, error) {
	var (
		tracks  []RecentTrack
		artists []TopArtist
		albums  []TopAlbum
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tracks, err = s.fetcher.RecentTracks(gctx, s.user, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		artists, err = s.fetcher.TopArtists(gctx, s.user, Period7Day, artistsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		albums, err = s.fetcher.TopAlbums(gctx, s.user, Period1Month, albumsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to fetch music data", logger.Error(err))
		return nil, fmt.Errorf("failed to fetch music data: %w", err)
	}

	played := make([]RecentTrack, 0, len(tracks))
	for _, t := range tracks {
		if !t.IsNowPlaying() {
			played = append(played, t)
		}
	}
	if len(played) > recentKeep {
		played = played[:recentKeep]
	}

	music := &domain.Music{
		Tracks:  MapTracks(played),
		Artists: MapArtists(artists),
		Albums:  MapAlbums(albums),
	}
	s.logger.Info("music loaded",
		logger.Int("tracks", len(music.Tracks)),
		logger.Int("artists", len(music.Artists)),
		logger.Int("albums", len(music.Albums)),
	)
	return music, nil
}

// CurrentTrack returns the latest track, playing or not. It always hits the
// API. ok is false when the user has no scrobbles.
func (s *Service) CurrentTrack(ctx context.Context) (track domain.Track, ok bool, err error) {
	raw, err := s.fetcher.RecentTracks(ctx, s.user, 1)
	if err != nil {
		return domain.Track{}, false, fmt.Errorf("failed to fetch current track: %w", err)
	}
	if len(raw) == 0 {
		return domain.Track{}, false, nil
	}
	return MapTracks(raw[:1])[0], true, nil
}

// Loaded reports whether the snapshot has been fetched.
func (s *Service) Loaded() bool {
	return s.slot.Loaded()
}
