// Package library discovers the images the gallery navigates.
//
// The gallery core never stores the item list; it receives it fresh on
// every transition. This package supplies that list: a filesystem
// scanner producing an ordered slice of Items, a thread-safe snapshot
// Store shared between the UI and a background rescanner, and fuzzy
// name filtering for the thumbnail grid.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ThumbDirName is the per-directory folder checked for pre-rendered
// thumbnails. A file dir/.thumbs/<base> becomes the thumbnail for
// dir/<base>.
const ThumbDirName = ".thumbs"

// DefaultExtensions are the image formats scanned when the config does
// not override them.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// Item is one image in the library. All fields are strings so Items
// compare by value, which the gallery requires of its item type.
type Item struct {
	// Path is the full image location and the item's identity.
	Path string
	// Thumb is the sidecar thumbnail location, empty when absent.
	Thumb string
	// Name is the display name shown under the thumbnail.
	Name string
}

// Scan walks dirs (not recursing into subdirectories) and returns every
// file with a matching extension, ordered by path. Unreadable
// directories are skipped; the first error is returned alongside
// whatever was collected so a partial library still renders.
func Scan(dirs, exts []string) ([]Item, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	match := make(map[string]bool, len(exts))
	for _, e := range exts {
		match[strings.ToLower(e)] = true
	}

	var items []Item
	var firstErr error
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !match[strings.ToLower(filepath.Ext(entry.Name()))] {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			items = append(items, Item{
				Path:  path,
				Thumb: findThumb(dir, entry.Name()),
				Name:  entry.Name(),
			})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, firstErr
}

func findThumb(dir, base string) string {
	thumb := filepath.Join(dir, ThumbDirName, base)
	if info, err := os.Stat(thumb); err == nil && !info.IsDir() {
		return thumb
	}
	return ""
}

// itemNames adapts a slice of Items to fuzzy.Source.
type itemNames []Item

func (n itemNames) String(i int) string { return n[i].Name }
func (n itemNames) Len() int            { return len(n) }

// Filter returns the items whose names fuzzy-match query, best match
// first. An empty query returns items unchanged.
func Filter(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	matches := fuzzy.FindFrom(query, itemNames(items))
	out := make([]Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}
