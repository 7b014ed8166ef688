package lastfm

import (
	"strconv"
	"time"

	"github.com/MrSnakeDoc/garden/internal/domain"
)

// imageSizes lists image sizes from the most to the least preferred.
var imageSizes = []string{"mega", "extralarge", "large", "medium", "small"}

func MapTracks(raw []RecentTrack) []domain.Track {
	out := make([]domain.Track, 0, len(raw))
	for _, t := range raw {
		track := domain.Track{
			Name:       t.Name,
			Artist:     t.Artist.Text,
			Album:      t.Album.Text,
			URL:        t.URL,
			Image:      bestImage(t.Image),
			NowPlaying: t.IsNowPlaying(),
		}
		if t.Date != nil {
			if uts, err := strconv.ParseInt(t.Date.UTS, 10, 64); err == nil {
				playedAt := time.Unix(uts, 0).UTC()
				track.PlayedAt = &playedAt
			}
		}
		out = append(out, track)
	}
	return out
}

func MapArtists(raw []TopArtist) []domain.Artist {
	out := make([]domain.Artist, 0, len(raw))
	for _, a := range raw {
		out = append(out, domain.Artist{
			Name:      a.Name,
			URL:       a.URL,
			Image:     bestImage(a.Image),
			PlayCount: atoi(a.PlayCount),
			Rank:      atoi(a.Attr.Rank),
		})
	}
	return out
}

func MapAlbums(raw []TopAlbum) []domain.Album {
	out := make([]domain.Album, 0, len(raw))
	for _, a := range raw {
		out = append(out, domain.Album{
			Name:      a.Name,
			Artist:    a.Artist.Name,
			URL:       a.URL,
			Image:     bestImage(a.Image),
			PlayCount: atoi(a.PlayCount),
			Rank:      atoi(a.Attr.Rank),
		})
	}
	return out
}

func bestImage(images []Image) string {
	for _, size := range imageSizes {
		for _, img := range images {
			if img.Size == size && img.Text != "" {
				return img.Text
			}
		}
	}
	for i := len(images) - 1; i >= 0; i-- {
		if images[i].Text != "" {
			return images[i].Text
		}
	}
	return ""
}

// atoi parses the numeric strings of the API, 0 when malformed.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
