package domain

import "time"

// Track is a scrobbled track.
type Track struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Album  string `json:"album,omitempty"`
	URL    string `json:"url"`
	Image  string `json:"image,omitempty"`

	// PlayedAt is nil for the track currently playing.
	PlayedAt   *time.Time `json:"playedAt,omitempty"`
	NowPlaying bool       `json:"nowPlaying"`
}

// Artist is an entry of a top artists chart.
type Artist struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Image     string `json:"image,omitempty"`
	PlayCount int    `json:"playcount"`
	Rank      int    `json:"rank"`
}

// Album is an entry of a top albums chart.
type Album struct {
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	URL       string `json:"url"`
	Image     string `json:"image,omitempty"`
	PlayCount int    `json:"playcount"`
	Rank      int    `json:"rank"`
}

// Music is the combined listening snapshot shown on the music page.
type Music struct {
	Tracks  []Track  `json:"tracks"`
	Artists []Artist `json:"artists"`
	Albums  []Album  `json:"albums"`
}
