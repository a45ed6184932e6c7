package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "prefs.toml"))
	if p.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox", p.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p := Load(path)
	if p.Theme != "Kanagawa" {
		t.Fatalf("Theme after round trip = %q, want Kanagawa", p.Theme)
	}
}

func TestLoadMalformedFileDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p := Load(path)
	if p.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want default on malformed file", p.Theme)
	}
}

func TestLoadBlankThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "  "`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if p := Load(path); p.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want default for blank value", p.Theme)
	}
}
