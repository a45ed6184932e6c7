package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tavisk/lux/internal/imaging"
)

// Terminal cells have no alpha channel, so opacity is simulated by
// blending cell colors toward whatever sits "behind" them. All image
// rendering goes through composite so the lightbox cross-fade and the
// modal's own fade use one code path.

const halfBlock = "▀"

// blend mixes over onto base at the given opacity. Opacity 0 yields
// base, 1 yields over.
func blend(base, over colorful.Color, opacity float64) colorful.Color {
	if opacity <= 0 {
		return base
	}
	if opacity >= 1 {
		return over
	}
	return base.BlendRgb(over, opacity)
}

// layer is one image plane in a composite: a grid plus its opacity.
type layer struct {
	grid    imaging.Grid
	opacity float64
}

// composite renders stacked image layers into a cols x rows block of
// half-block cells over a solid base color. Layers are drawn in order,
// each centered, each blended at its own opacity; the finished cell is
// then blended toward base at the overall opacity (the modal fade).
func composite(cols, rows int, base colorful.Color, overall float64, layers ...layer) string {
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteString("\n")
		}
		for x := 0; x < cols; x++ {
			top, bottom := base, base
			for _, l := range layers {
				if l.grid.Empty() || l.opacity <= 0 {
					continue
				}
				offX := (cols - l.grid.Cols) / 2
				offY := (rows - l.grid.Rows) / 2
				gx, gy := x-offX, y-offY
				if gx < 0 || gy < 0 || gx >= l.grid.Cols || gy >= l.grid.Rows {
					continue
				}
				cell := l.grid.At(gx, gy)
				top = blend(top, cell.Top, l.opacity)
				bottom = blend(bottom, cell.Bottom, l.opacity)
			}
			top = blend(base, top, overall)
			bottom = blend(base, bottom, overall)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(halfBlock))
		}
	}
	return sb.String()
}

// sampleGrid nearest-samples a grid down into a smaller cell box,
// used to draw thumbnails from an already-loaded full-size grid.
func sampleGrid(g imaging.Grid, cols, rows int) imaging.Grid {
	if g.Empty() || cols <= 0 || rows <= 0 || (g.Cols <= cols && g.Rows <= rows) {
		return g
	}
	scale := float64(cols) / float64(g.Cols)
	if s := float64(rows) / float64(g.Rows); s < scale {
		scale = s
	}
	outCols := int(float64(g.Cols) * scale)
	outRows := int(float64(g.Rows) * scale)
	if outCols < 1 {
		outCols = 1
	}
	if outRows < 1 {
		outRows = 1
	}
	cells := make([]imaging.Cell, outCols*outRows)
	for y := 0; y < outRows; y++ {
		for x := 0; x < outCols; x++ {
			cells[y*outCols+x] = g.At(x*g.Cols/outCols, y*g.Rows/outRows)
		}
	}
	return imaging.Grid{Cols: outCols, Rows: outRows, Cells: cells}
}
