package collections

import (
	"sort"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/format"
)

// OtherLetter is the bucket of tags that do not start with a-z.
const OtherLetter = "#"

// LetterGroup holds the tags starting with Letter.
type LetterGroup struct {
	Letter string   `json:"letter"`
	Tags   []string `json:"tags"`
}

// UniqueTags returns the sorted set of slugified tags. Tags that slugify to
// the empty string are dropped.
func UniqueTags(entries []domain.Entry) []string {
	set := make(map[string]struct{})
	for _, e := range entries {
		for _, t := range e.Data.Tags {
			if s := format.Slugify(t); s != "" {
				set[s] = struct{}{}
			}
		}
	}

	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// LimitTagsByLetter buckets tags by their first letter (a-z, anything else
// in OtherLetter), keeps the first limit tags of each bucket and flattens
// the buckets in the order their first tag was seen. Slugified tags outside
// a-z start with a digit, '-' or '_', so for sorted input the OtherLetter
// bucket comes first and the letters follow alphabetically.
func LimitTagsByLetter(tags []string, limit int) []string {
	var order []string
	buckets := make(map[string][]string)
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		letter := letterOf(tag)
		if _, ok := buckets[letter]; !ok {
			order = append(order, letter)
		}
		buckets[letter] = append(buckets[letter], tag)
	}

	out := []string{}
	for _, letter := range order {
		b := buckets[letter]
		out = append(out, b[:min(max(limit, 0), len(b))]...)
	}
	return out
}

// GroupTagsByLetter returns the 26 groups a..z, each with the tags starting
// with that letter. Tags outside a-z are not part of any group.
func GroupTagsByLetter(tags []string) []LetterGroup {
	groups := make([]LetterGroup, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		g := LetterGroup{Letter: string(c), Tags: []string{}}
		for _, tag := range tags {
			if tag != "" && tag[0] == byte(c) {
				g.Tags = append(g.Tags, tag)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func letterOf(tag string) string {
	c := tag[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c >= 'a' && c <= 'z' {
		return string(c)
	}
	return OtherLetter
}
