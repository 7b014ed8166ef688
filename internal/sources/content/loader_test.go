package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/logger"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

const post = `---
title: Docker cheatsheet
description: Commands I keep looking up
tags: [docker, DevOps]
date: 2024-01-05
published: true
---
# Compose

Some **bold** text.
`

func newTestLoader(root string) *Loader {
	return NewLoader(root, []config.CollectionDef{
		{Name: "wiki", Base: "wiki", Pattern: "**/*.md"},
		{Name: "now", Base: ".", Pattern: "now.md", Index: true},
		{Name: "blog", Base: "blog", Pattern: "**/*.md"},
	}, logger.NewNop())
}

func TestLoaderLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "wiki/Guides/Docker Compose.md", post)
	writeFile(t, root, "wiki/intro.md", "---\ntitle: Intro\n---\nHello\n")
	writeFile(t, root, "wiki/notes.txt", "ignored")
	writeFile(t, root, "wiki/.drafts/wip.md", "---\ntitle: WIP\n---\n")

	entries, err := newTestLoader(root).Load(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Load() returned %d entries, want 2", len(entries))
	}

	docker := entries[0]
	if docker.ID != "guides/docker-compose" {
		t.Errorf("ID = %q, want guides/docker-compose", docker.ID)
	}
	if docker.Collection != "wiki" {
		t.Errorf("Collection = %q", docker.Collection)
	}
	if !docker.Data.Published || docker.Data.Index {
		t.Errorf("flags = published %v index %v", docker.Data.Published, docker.Data.Index)
	}
	if docker.Data.Date == nil || !docker.Data.Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", docker.Data.Date)
	}
	if got := strings.Join(docker.Data.Tags, ","); got != "docker,DevOps" {
		t.Errorf("Tags = %q, tags are slugified later by the aggregator", got)
	}
	if !strings.Contains(docker.Rendered, `<h1 id="compose">Compose</h1>`) {
		t.Errorf("Rendered = %q", docker.Rendered)
	}
	if !strings.Contains(docker.Rendered, "<strong>bold</strong>") {
		t.Errorf("Rendered = %q", docker.Rendered)
	}

	intro := entries[1]
	if intro.ID != "intro" || intro.Data.Published {
		t.Errorf("intro = %+v", intro)
	}
	if intro.Data.Tags == nil {
		t.Error("Tags should never be nil")
	}
}

func TestLoaderSingleFileCollection(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "now.md", "---\ntitle: Now\npublished: true\n---\nBusy.\n")
	writeFile(t, root, "other.md", "---\ntitle: Other\n---\n")

	entries, err := newTestLoader(root).Load(context.Background(), "now")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Load() returned %d entries, want 1", len(entries))
	}
	if entries[0].ID != "now" || !entries[0].Data.Index {
		t.Errorf("entry = %+v, want id now with index default", entries[0])
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	entries, err := newTestLoader(t.TempDir()).Load(context.Background(), "blog")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("Load() = %v, want empty", entries)
	}
}

func TestLoaderUnknownCollection(t *testing.T) {
	if _, err := newTestLoader(t.TempDir()).Load(context.Background(), "recipes"); err == nil {
		t.Fatal("Load() expected error for unknown collection")
	}
}

func TestLoaderRejectsInvalidEntry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blog/bad.md", "---\ndescription: short\n---\n")

	_, err := newTestLoader(root).Load(context.Background(), "blog")
	if !errors.Is(err, ErrInvalidFrontMatter) {
		t.Fatalf("Load() error = %v, want ErrInvalidFrontMatter", err)
	}
	if !strings.Contains(err.Error(), "blog/bad.md") {
		t.Errorf("error %q should name the file", err)
	}
	if !strings.Contains(err.Error(), "title is required") || !strings.Contains(err.Error(), "at least 10") {
		t.Errorf("error %q should list every problem", err)
	}
}

func TestLoaderHonoursContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "blog/a.md", post)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestLoader(root).Load(ctx, "blog"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
}
