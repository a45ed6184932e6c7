package library

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanCollectsMatchingFilesSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.png"))
	touch(t, filepath.Join(dir, "a.JPG"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "nested.png")) // not recursed into

	items, err := Scan([]string{dir}, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Scan returned %d items, want 2: %+v", len(items), items)
	}
	if items[0].Name != "a.JPG" || items[1].Name != "b.png" {
		t.Fatalf("items out of order: %+v", items)
	}
}

func TestScanFindsSidecarThumbnails(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "cat.png"))
	touch(t, filepath.Join(dir, ThumbDirName, "cat.png"))
	touch(t, filepath.Join(dir, "dog.png"))

	items, err := Scan([]string{dir}, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	byName := make(map[string]Item, len(items))
	for _, it := range items {
		byName[it.Name] = it
	}
	if got := byName["cat.png"].Thumb; got != filepath.Join(dir, ThumbDirName, "cat.png") {
		t.Fatalf("cat.png thumb = %q, want sidecar path", got)
	}
	if got := byName["dog.png"].Thumb; got != "" {
		t.Fatalf("dog.png thumb = %q, want empty", got)
	}
}

func TestScanMissingDirReturnsPartialResults(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.png"))

	items, err := Scan([]string{filepath.Join(dir, "missing"), dir}, nil)
	if err == nil {
		t.Fatal("Scan of missing dir returned nil error")
	}
	if len(items) != 1 {
		t.Fatalf("Scan returned %d items, want 1 from the readable dir", len(items))
	}
}

func TestFilter(t *testing.T) {
	items := []Item{
		{Path: "/p/beach-sunset.png", Name: "beach-sunset.png"},
		{Path: "/p/mountain.png", Name: "mountain.png"},
		{Path: "/p/sunrise.png", Name: "sunrise.png"},
	}

	if got := Filter(items, ""); len(got) != len(items) {
		t.Fatalf("empty query filtered to %d items, want all %d", len(got), len(items))
	}
	got := Filter(items, "sun")
	if len(got) != 2 {
		t.Fatalf("Filter(sun) = %+v, want 2 matches", got)
	}
	for _, it := range got {
		if it.Name != "beach-sunset.png" && it.Name != "sunrise.png" {
			t.Fatalf("unexpected match %q", it.Name)
		}
	}
	if got := Filter(items, "zzz"); len(got) != 0 {
		t.Fatalf("Filter(zzz) = %+v, want none", got)
	}
}

func TestStoreUpdateAndSnapshot(t *testing.T) {
	store := &Store{}

	store.Update([]Item{{Path: "/a.png", Name: "a.png"}}, nil)
	snap := store.Snapshot()
	if len(snap.Items) != 1 || snap.LastError != nil || snap.ConsecutiveFailures != 0 {
		t.Fatalf("snapshot = %+v, want one item and no error", snap)
	}

	// A failed rescan keeps the previous items.
	store.Update(nil, os.ErrNotExist)
	snap = store.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("items dropped on failed update: %+v", snap.Items)
	}
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("failure not recorded: %+v", snap)
	}

	// Mutating a returned snapshot must not affect the store.
	snap.Items[0].Name = "mutated"
	if got := store.Snapshot().Items[0].Name; got != "a.png" {
		t.Fatalf("store item mutated through snapshot copy: %q", got)
	}
}

func TestStoreUpdateKeepsPartialScan(t *testing.T) {
	store := &Store{}

	// One configured directory unreadable: the scan still yields the
	// readable directories' items, and those must render.
	store.Update([]Item{{Path: "/a.png", Name: "a.png"}}, os.ErrNotExist)
	snap := store.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("partial scan dropped: %d items, want 1", len(snap.Items))
	}
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("failure not recorded alongside partial items: %+v", snap)
	}

	// A later scan yielding nothing at all keeps the last good items.
	store.Update(nil, os.ErrPermission)
	if got := len(store.Snapshot().Items); got != 1 {
		t.Fatalf("empty failed scan dropped items: %d, want 1", got)
	}
}
