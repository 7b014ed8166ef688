package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/garden/internal/config"
	"github.com/MrSnakeDoc/garden/internal/logger"
	"github.com/MrSnakeDoc/garden/internal/routes"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func newRaindropServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/collections":
			_, _ = w.Write([]byte(`{"result":true,"items":[{"_id":1,"title":"ansango.reading"}]}`))
		default:
			_, _ = w.Write([]byte(`{"result":true,"items":[],"count":0}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "blog/first.md", "---\ntitle: First\ndate: 2024-01-05\ntags: [go]\npublished: true\n---\nHello\n")
	writeFile(t, root, "wiki/linux/boot.md", "---\ntitle: Boot\npublished: true\n---\n")
	writeFile(t, root, "wiki/intro.md", "---\ntitle: Intro\npublished: true\n---\n")
	writeFile(t, root, "about.md", "---\ntitle: About\npublished: true\n---\n")

	cfg := &config.Config{
		ListenPort:      "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		RequestTimeout:  time.Second,
		ContentDir:      root,
		HTTPTimeout:     time.Second,
		RaindropAPIURL:  newRaindropServer(t).URL,
		LatestSize:      5,
		Site:            config.DefaultSite(),
	}
	return NewWithConfig(cfg, logger.New("error", false))
}

func TestRoutes(t *testing.T) {
	a := newTestApp(t)

	groups, err := a.Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes() error = %v", err)
	}

	var found bool
	for _, r := range routes.Flatten(groups) {
		if r.Path == "/blog/first" {
			found = true
			if r.Props.Entry == nil || r.Props.Entry.Data.Title != "First" {
				t.Errorf("entry props = %+v", r.Props.Entry)
			}
		}
		if r.Path == "/about/about" {
			t.Error("index entries must not get an entry route")
		}
	}
	if !found {
		t.Error("missing /blog/first route")
	}
}

func TestTree(t *testing.T) {
	a := newTestApp(t)

	nodes, err := a.Tree(context.Background(), "wiki", false)
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if len(nodes) != 2 || !nodes[0].IsFolder() || nodes[0].Name != "linux" {
		t.Fatalf("Tree() = %+v, want folder linux then file Intro", nodes)
	}

	nodes, err = a.Tree(context.Background(), "wiki", true)
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if !nodes[0].IsFile() {
		t.Errorf("files-first tree starts with %+v", nodes[0])
	}

	if _, err := a.Tree(context.Background(), "recipes", false); err == nil {
		t.Error("Tree() expected error for unknown collection")
	}
}

func TestMusicDisabled(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.Music(context.Background()); !errors.Is(err, ErrMusicDisabled) {
		t.Fatalf("Music() error = %v, want ErrMusicDisabled", err)
	}
}

func TestBookmarks(t *testing.T) {
	a := newTestApp(t)

	data, err := a.Bookmarks(context.Background())
	if err != nil {
		t.Fatalf("Bookmarks() error = %v", err)
	}
	if len(data.Collections) != 1 || data.Collections[0].Title != "reading" {
		t.Errorf("Collections = %+v", data.Collections)
	}
	if data.Bookmarks == nil || len(data.Bookmarks) != 0 {
		t.Errorf("Bookmarks = %v, want empty", data.Bookmarks)
	}
}

func TestWarmBuildsIndex(t *testing.T) {
	a := newTestApp(t)

	if err := a.warmer.Warm(context.Background()); err != nil {
		t.Fatalf("Warm() error = %v", err)
	}
	if !a.index.Ready() {
		t.Fatal("route index should be ready after warm-up")
	}
	if _, ok := a.index.Lookup("/blog/first"); !ok {
		t.Error("route /blog/first not indexed")
	}
}
