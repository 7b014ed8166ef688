package lastfm

import (
	"bytes"
	"encoding/json"
)

// list decodes either a JSON array or a single object. The API collapses
// one-element arrays into the bare element.
type list[T any] []T

func (l *list[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var one T
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*l = list[T]{one}
		return nil
	}

	var many []T
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

type Text struct {
	Text string `json:"#text"`
}

type Image struct {
	Text string `json:"#text"`
	Size string `json:"size"`
}

type Rank struct {
	Rank string `json:"rank"`
}

// ─────────────────────────────
// user.getrecenttracks
// ─────────────────────────────

type RecentTrack struct {
	Name   string      `json:"name"`
	URL    string      `json:"url"`
	Artist Text        `json:"artist"`
	Album  Text        `json:"album"`
	Image  list[Image] `json:"image"`
	Date   *TrackDate  `json:"date,omitempty"`
	Attr   *TrackAttr  `json:"@attr,omitempty"`
}

type TrackDate struct {
	UTS  string `json:"uts"`
	Text string `json:"#text"`
}

type TrackAttr struct {
	NowPlaying string `json:"nowplaying"`
}

// IsNowPlaying reports whether the track is the one currently playing.
func (t RecentTrack) IsNowPlaying() bool {
	return t.Attr != nil && t.Attr.NowPlaying == "true"
}

type RecentTracksResponse struct {
	RecentTracks struct {
		Track list[RecentTrack] `json:"track"`
	} `json:"recenttracks"`
}

// ─────────────────────────────
// user.gettopartists
// ─────────────────────────────

type TopArtist struct {
	Name      string      `json:"name"`
	PlayCount string      `json:"playcount"`
	URL       string      `json:"url"`
	Image     list[Image] `json:"image"`
	Attr      Rank        `json:"@attr"`
}

type TopArtistsResponse struct {
	TopArtists struct {
		Artist list[TopArtist] `json:"artist"`
	} `json:"topartists"`
}

// ─────────────────────────────
// user.gettopalbums
// ─────────────────────────────

type TopAlbum struct {
	Name      string      `json:"name"`
	PlayCount string      `json:"playcount"`
	URL       string      `json:"url"`
	Artist    AlbumArtist `json:"artist"`
	Image     list[Image] `json:"image"`
	Attr      Rank        `json:"@attr"`
}

type AlbumArtist struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TopAlbumsResponse struct {
	TopAlbums struct {
		Album list[TopAlbum] `json:"album"`
	} `json:"topalbums"`
}

// apiError is the body sent, often with a 200 status, when a call fails.
type apiError struct {
	Code    int    `json:"error"`
	Message string `json:"message"`
}
