package content

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header of a markdown entry.
//
// Example:
//
//	---
//	title: Docker cheatsheet
//	description: Commands I keep looking up
//	tags: [docker, devops]
//	date: 2024-01-05
//	published: true
//	---
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Date        *Date    `yaml:"date"`
	Mod         *Date    `yaml:"mod"`
	Index       *bool    `yaml:"index"`
	Published   *bool    `yaml:"published"`
}

// Date accepts the date spellings found in front matter: bare YAML dates,
// quoted dates and full timestamps.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("line %d: invalid date %q", value.Line, value.Value)
}

// ptr returns a pointer to the date, nil when unset.
func (d *Date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
