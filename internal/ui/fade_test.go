package ui

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tavisk/lux/internal/imaging"
)

func TestBlendEndpoints(t *testing.T) {
	base := colorful.Color{R: 0, G: 0, B: 0}
	over := colorful.Color{R: 1, G: 1, B: 1}

	if got := blend(base, over, 0); got != base {
		t.Errorf("blend at 0 = %v, want base", got)
	}
	if got := blend(base, over, 1); got != over {
		t.Errorf("blend at 1 = %v, want over", got)
	}
	mid := blend(base, over, 0.5)
	if mid.R <= 0 || mid.R >= 1 {
		t.Errorf("blend at 0.5 not between endpoints: %v", mid)
	}
}

func TestSampleGridShrinks(t *testing.T) {
	cells := make([]imaging.Cell, 40*20)
	g := imaging.Grid{Cols: 40, Rows: 20, Cells: cells}

	out := sampleGrid(g, 10, 10)
	if out.Cols > 10 || out.Rows > 10 {
		t.Errorf("sampled grid %dx%d exceeds 10x10", out.Cols, out.Rows)
	}
	// Aspect ratio 2:1 is preserved.
	if out.Cols != 10 || out.Rows != 5 {
		t.Errorf("sampled grid = %dx%d, want 10x5", out.Cols, out.Rows)
	}
}

func TestSampleGridPassthrough(t *testing.T) {
	cells := make([]imaging.Cell, 4*2)
	g := imaging.Grid{Cols: 4, Rows: 2, Cells: cells}
	out := sampleGrid(g, 10, 10)
	if out.Cols != 4 || out.Rows != 2 {
		t.Errorf("small grid resampled to %dx%d, want unchanged", out.Cols, out.Rows)
	}
}

func TestCompositeDimensions(t *testing.T) {
	base := colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	out := composite(4, 3, base, 1)

	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 3 {
		t.Errorf("composite produced %d rows, want 3", lines)
	}
}
