package routes

import (
	"regexp"
	"strings"
)

type ChangeFreq string

const (
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

// Priority is the sitemap hint of a route.
type Priority struct {
	Priority   float64    `json:"priority"`
	ChangeFreq ChangeFreq `json:"changefreq"`
}

var paginated = regexp.MustCompile(`/\d+/$`)

// SitemapPriority ranks a site path for the sitemap. Rules are checked in
// order and the first match wins, so "/blog/" itself ranks as a blog post.
func SitemapPriority(path string) Priority {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	isPage := paginated.MatchString(path)

	switch {
	case path == "/":
		return Priority{1.0, Daily}
	case strings.Contains(path, "/blog/") && !isPage:
		return Priority{0.9, Monthly}
	case (strings.Contains(path, "/wiki/") || strings.Contains(path, "/projects/")) && !isPage:
		return Priority{0.8, Monthly}
	case hasAnySuffix(path, "/blog/", "/wiki/", "/projects/", "/tags/", "/archive/"):
		return Priority{0.7, Weekly}
	case isPage:
		return Priority{0.5, Weekly}
	case hasAnySuffix(path, "/about/", "/uses/", "/now/", "/blogroll/"):
		return Priority{0.6, Monthly}
	default:
		return Priority{0.5, Weekly}
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
