package content

import (
	"errors"
	"testing"
)

func TestEntryID(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"hello-world.md", "hello-world"},
		{"Guides/Docker Compose.md", "guides/docker-compose"},
		{"linux/Árbol/boot.md", "linux/arbol/boot"},
		{"now.md", "now"},
	}

	for _, tt := range tests {
		if got := EntryID(tt.rel); got != tt.want {
			t.Errorf("EntryID(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHeader string
		wantBody   string
		wantErr    error
	}{
		{"basic", "---\ntitle: A\n---\nbody\n", "title: A\n", "body\n", nil},
		{"crlf", "---\r\ntitle: A\r\n---\r\nbody\r\n", "title: A\n", "body\n", nil},
		{"empty header", "---\n---\nbody", "", "body", nil},
		{"no front matter", "# Title\n", "", "", ErrNoFrontMatter},
		{"unterminated", "---\ntitle: A\n", "", "", ErrInvalidFrontMatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body, err := splitFrontMatter([]byte(tt.raw))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(header) != tt.wantHeader {
				t.Errorf("header = %q, want %q", header, tt.wantHeader)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestMapEntryDates(t *testing.T) {
	m := NewMapper()
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2024-01-05", false},
		{`"2024-01-05"`, false},
		{"2024-01-05T10:30:00Z", false},
		{`"2024-01-05 10:30"`, false},
		{"yesterday", true},
	}

	for _, tt := range tests {
		raw := "---\ntitle: T\ndate: " + tt.date + "\n---\n"
		e, err := m.MapEntry("blog", "t.md", false, []byte(raw))
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidFrontMatter) {
				t.Errorf("date %s: err = %v, want ErrInvalidFrontMatter", tt.date, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("date %s: unexpected error %v", tt.date, err)
			continue
		}
		if e.Data.Date == nil || e.Data.Date.Year() != 2024 || e.Data.Date.Day() != 5 {
			t.Errorf("date %s: got %v", tt.date, e.Data.Date)
		}
	}
}

func TestMapEntryIndexOverride(t *testing.T) {
	m := NewMapper()
	e, err := m.MapEntry("about", "about.md", true, []byte("---\ntitle: About\nindex: false\n---\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Data.Index {
		t.Error("explicit index: false should win over the collection default")
	}
}
