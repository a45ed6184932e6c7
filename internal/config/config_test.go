package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox", cfg.Theme)
	}
	if cfg.FPS != 30 || cfg.RescanSeconds != 5 {
		t.Fatalf("defaults = fps %d rescan %d, want 30/5", cfg.FPS, cfg.RescanSeconds)
	}
	if len(cfg.LibraryDirs) != 1 {
		t.Fatalf("LibraryDirs = %v, want one default dir", cfg.LibraryDirs)
	}
}

func TestLoadParsesAndExpands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
library_dirs = ["~/photos", "/srv/shared"]
extensions = [".png"]
theme = "Slate"
fps = 60
rescan_seconds = 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "Slate" || cfg.FPS != 60 || cfg.RescanSeconds != 30 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".png" {
		t.Fatalf("Extensions = %v, want [.png]", cfg.Extensions)
	}
	home, _ := os.UserHomeDir()
	if cfg.LibraryDirs[0] != filepath.Join(home, "photos") {
		t.Fatalf("LibraryDirs[0] = %q, want home expansion", cfg.LibraryDirs[0])
	}
	if cfg.LibraryDirs[1] != "/srv/shared" {
		t.Fatalf("LibraryDirs[1] = %q, want /srv/shared", cfg.LibraryDirs[1])
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("library_dirs = not-a-list"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed TOML succeeded")
	}
}
