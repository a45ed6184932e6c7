package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/tavisk/lux/internal/library"
)

// Config captures everything lux reads from its config file.
type Config struct {
	LibraryDirs   []string
	Extensions    []string
	Theme         string
	FPS           int
	RescanSeconds int
}

const (
	defaultConfigPath    = "~/.config/lux/config.toml"
	defaultTheme         = "Nightfox"
	defaultFPS           = 30
	defaultRescanSeconds = 5
)

// Load locates and parses the lux config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LibraryDirs   []string `toml:"library_dirs"`
		Extensions    []string `toml:"extensions"`
		Theme         string   `toml:"theme"`
		FPS           int      `toml:"fps"`
		RescanSeconds int      `toml:"rescan_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(raw.LibraryDirs) > 0 {
		cfg.LibraryDirs = raw.LibraryDirs
	}
	if len(raw.Extensions) > 0 {
		cfg.Extensions = raw.Extensions
	}
	if strings.TrimSpace(raw.Theme) != "" {
		cfg.Theme = strings.TrimSpace(raw.Theme)
	}
	if raw.FPS > 0 {
		cfg.FPS = raw.FPS
	}
	if raw.RescanSeconds > 0 {
		cfg.RescanSeconds = raw.RescanSeconds
	}

	cfg.LibraryDirs = expandDirs(cfg.LibraryDirs)
	return cfg, nil
}

func defaults() Config {
	return Config{
		LibraryDirs:   []string{"~/Pictures"},
		Extensions:    library.DefaultExtensions,
		Theme:         defaultTheme,
		FPS:           defaultFPS,
		RescanSeconds: defaultRescanSeconds,
	}
}

func expandDirs(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, mustExpand(d))
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
