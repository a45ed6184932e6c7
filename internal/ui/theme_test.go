package ui

import "testing"

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"known theme", "Kanagawa", "Kanagawa"},
		{"default theme", "Nightfox", "Nightfox"},
		{"unknown falls back", "Dracula", "Nightfox"},
		{"empty falls back", "", "Nightfox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetTheme(tt.input)
			if got.Name != tt.expected {
				t.Errorf("GetTheme(%q).Name = %q, want %q", tt.input, got.Name, tt.expected)
			}
		})
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Errorf("cycle did not return to start: got %q", name)
	}
	if len(seen) != len(themeOrder) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(themeOrder))
	}
}

func TestNextThemeUnknown(t *testing.T) {
	if got := NextTheme("nope"); got != themeOrder[0] {
		t.Errorf("NextTheme(unknown) = %q, want %q", got, themeOrder[0])
	}
}

func TestThemeLightboxSlots(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for slot, hex := range map[string]string{
			"Backdrop": th.Backdrop,
			"Frame":    th.Frame,
			"Control":  th.Control,
			"Caption":  th.Caption,
		} {
			if hex == "" {
				t.Errorf("theme %s: lightbox slot %s is empty", name, slot)
			}
		}
	}
}
