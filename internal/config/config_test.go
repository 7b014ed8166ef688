package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      int
		expected int
	}{
		{name: "valid integer", key: "TEST_INT", value: "42", def: 1, expected: 42},
		{name: "invalid integer uses default", key: "TEST_INT_INVALID", value: "not_a_number", def: 7, expected: 7},
		{name: "missing variable uses default", key: "TEST_INT_MISSING", value: "", def: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := getenvInt(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetenvFloat(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      float64
		expected float64
	}{
		{name: "valid float", key: "TEST_FLOAT", value: "2.5", def: 1, expected: 2.5},
		{name: "negative uses default", key: "TEST_FLOAT_NEG", value: "-1", def: 3, expected: 3},
		{name: "invalid uses default", key: "TEST_FLOAT_INVALID", value: "fast", def: 4, expected: 4},
		{name: "missing variable uses default", key: "TEST_FLOAT_MISSING", value: "", def: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := getenvFloat(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenvFloat() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", key: "TEST_DURATION", value: "5s", def: 1 * time.Second, expected: 5 * time.Second},
		{name: "invalid duration uses default", key: "TEST_DURATION_INVALID", value: "invalid", def: 10 * time.Second, expected: 10 * time.Second},
		{name: "missing variable uses default", key: "TEST_DURATION_MISSING", value: "", def: 15 * time.Second, expected: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", key: "TEST_BOOL", value: "true", def: false, expected: true},
		{name: "false value", key: "TEST_BOOL_FALSE", value: "false", def: true, expected: false},
		{name: "invalid value uses default", key: "TEST_BOOL_INVALID", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", key: "TEST_BOOL_MISSING", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GARDEN_SITE_FILE", "")
	t.Setenv("GARDEN_LISTEN_PORT", ":9999")

	cfg := Load()
	if cfg.ListenPort != ":9999" {
		t.Errorf("ListenPort = %v, want :9999", cfg.ListenPort)
	}
	if cfg.Site == nil {
		t.Fatal("Load() should fall back to the built-in site")
	}
	if cfg.Site.Name != "ansango" {
		t.Errorf("Site.Name = %v, want ansango", cfg.Site.Name)
	}
	if cfg.RaindropAPIURL != "https://api.raindrop.io/rest/v1" {
		t.Errorf("RaindropAPIURL = %v", cfg.RaindropAPIURL)
	}
}

func TestLoadPanicsOnInvalidSite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `
name: demo
pages:
  home: {title: Home, entriesPerPage: -1}
collections:
  - name: blog
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write site file: %v", err)
	}
	t.Setenv("GARDEN_SITE_FILE", path)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked on a negative page size")
		}
	}()
	Load()
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"127.0.0.1", []string{"127.0.0.1"}},
		{" 10.0.0.0/8 , ,192.168.1.2 ", []string{"10.0.0.0/8", "192.168.1.2"}},
	}

	for _, tt := range tests {
		got := splitAndTrim(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("splitAndTrim(%q) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
