package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDownsampleFitsWithinBounds(t *testing.T) {
	img := solid(400, 100, color.RGBA{R: 255, A: 255})
	g := Downsample(img, 40, 20)

	if g.Empty() {
		t.Fatal("grid is empty")
	}
	if g.Cols > 40 || g.Rows > 20 {
		t.Fatalf("grid %dx%d exceeds bounds 40x20", g.Cols, g.Rows)
	}
	// 400x100 into 40x40 pixel budget: width-limited, 40x10 pixels,
	// so 40 cols and 5 cell rows.
	if g.Cols != 40 || g.Rows != 5 {
		t.Fatalf("grid = %dx%d, want 40x5", g.Cols, g.Rows)
	}
}

func TestDownsamplePreservesSolidColor(t *testing.T) {
	img := solid(64, 64, color.RGBA{R: 255, A: 255})
	g := Downsample(img, 8, 4)

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			if c.Top.R < 0.99 || c.Top.G > 0.01 || c.Bottom.R < 0.99 {
				t.Fatalf("cell (%d,%d) = %+v, want pure red", x, y, c)
			}
		}
	}
}

func TestDownsampleAveragesRegions(t *testing.T) {
	// Left half black, right half white; a 2x1 grid must keep the
	// halves distinct.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{A: 255}
			if x >= 4 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}

	g := Downsample(img, 2, 1)
	if g.Cols != 2 || g.Rows != 1 {
		t.Fatalf("grid = %dx%d, want 2x1", g.Cols, g.Rows)
	}
	if left := g.At(0, 0).Top; left.R > 0.1 {
		t.Fatalf("left cell = %+v, want near black", left)
	}
	if right := g.At(1, 0).Top; right.R < 0.9 {
		t.Fatalf("right cell = %+v, want near white", right)
	}
}

func TestDownsampleDegenerateInput(t *testing.T) {
	img := solid(10, 10, color.RGBA{A: 255})
	if g := Downsample(img, 0, 5); !g.Empty() {
		t.Fatalf("zero cols produced non-empty grid: %dx%d", g.Cols, g.Rows)
	}
	if g := Downsample(image.NewRGBA(image.Rect(0, 0, 0, 0)), 5, 5); !g.Empty() {
		t.Fatalf("empty image produced non-empty grid: %dx%d", g.Cols, g.Rows)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "red.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, solid(32, 32, color.RGBA{R: 255, A: 255})); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	g, err := Load(path, 16, 8)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Empty() {
		t.Fatal("loaded grid is empty")
	}

	if _, err := Load(filepath.Join(dir, "missing.png"), 16, 8); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}
