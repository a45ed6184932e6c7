// Package imaging decodes images and downsamples them into terminal
// cell grids.
//
// A terminal cell rendered with the upper-half-block rune holds two
// vertically stacked "pixels": the foreground colors the top half and
// the background colors the bottom. A Grid is therefore cols wide and
// rows tall in cells, but cols wide and rows*2 tall in pixels, which
// makes pixels roughly square on common fonts.
package imaging

import (
	"fmt"
	"image"
	"os"

	// Decoders for the supported library formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one terminal cell: two stacked pixel colors.
type Cell struct {
	Top    colorful.Color
	Bottom colorful.Color
}

// Grid is a downsampled image in cell space, row-major.
type Grid struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) Cell {
	return g.Cells[y*g.Cols+x]
}

// Empty reports whether the grid holds no cells.
func (g Grid) Empty() bool {
	return g.Cols == 0 || g.Rows == 0
}

// Load decodes the image at path and downsamples it to fit within
// maxCols x maxRows cells, preserving aspect ratio.
func Load(path string, maxCols, maxRows int) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Grid{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return Downsample(img, maxCols, maxRows), nil
}

// Downsample box-filters img into a grid no larger than maxCols x
// maxRows cells. Aspect ratio is preserved in pixel space (two pixels
// per cell row). Degenerate bounds yield an empty grid.
func Downsample(img image.Image, maxCols, maxRows int) Grid {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 || maxCols <= 0 || maxRows <= 0 {
		return Grid{}
	}

	maxPxW, maxPxH := maxCols, maxRows*2
	scale := float64(maxPxW) / float64(srcW)
	if s := float64(maxPxH) / float64(srcH); s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}

	pxW := int(float64(srcW) * scale)
	pxH := int(float64(srcH) * scale)
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 2 {
		pxH = 2
	}
	if pxH%2 == 1 {
		pxH++
	}

	cols, rows := pxW, pxH/2
	cells := make([]Cell, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cells[y*cols+x] = Cell{
				Top:    boxAverage(img, b, x, y*2, cols, pxH),
				Bottom: boxAverage(img, b, x, y*2+1, cols, pxH),
			}
		}
	}
	return Grid{Cols: cols, Rows: rows, Cells: cells}
}

// boxAverage averages the source rectangle that maps onto target pixel
// (px, py) of a pxW x pxH output.
func boxAverage(img image.Image, b image.Rectangle, px, py, pxW, pxH int) colorful.Color {
	srcW, srcH := b.Dx(), b.Dy()
	x0 := b.Min.X + px*srcW/pxW
	x1 := b.Min.X + (px+1)*srcW/pxW
	y0 := b.Min.Y + py*srcH/pxH
	y1 := b.Min.Y + (py+1)*srcH/pxH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var r, g, bl float64
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += float64(cr) / 65535
			g += float64(cg) / 65535
			bl += float64(cb) / 65535
			n++
		}
	}
	return colorful.Color{R: r / float64(n), G: g / float64(n), B: bl / float64(n)}
}
