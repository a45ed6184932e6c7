package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tavisk/lux/internal/library"
)

// Thumbnail tile geometry, in cells. A tile is a bordered box holding
// a tileImgCols x tileImgRows image block and a one-line caption.
const (
	tileImgCols = 16
	tileImgRows = 7
	tileGap     = 1

	// Border adds one cell on each side.
	tileOuterW = tileImgCols + 2
	tileOuterH = tileImgRows + 1 + 2

	// Rows above the grid: header line + filter line.
	gridTop = 2
)

// gridColumns returns how many tiles fit per row at the given width.
func gridColumns(width int) int {
	cols := (width + tileGap) / (tileOuterW + tileGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// gridVisibleRows returns how many tile rows fit between header and
// footer at the given height.
func gridVisibleRows(height int) int {
	rows := (height - gridTop - 1) / tileOuterH
	if rows < 1 {
		rows = 1
	}
	return rows
}

// renderGrid draws the thumbnail grid and registers a click target per
// tile. The cursor row is kept scrolled into view.
func (m Model) renderGrid() string {
	st := m.theme.Styles()
	if len(m.visible) == 0 {
		empty := st.MutedText.Render(ternary(m.query != "",
			"No images match the filter.",
			"No images found. Point lux at a directory with pictures."))
		return lipgloss.Place(m.width, m.gridHeight(), lipgloss.Center, lipgloss.Center, empty)
	}

	cols := gridColumns(m.width)
	visRows := gridVisibleRows(m.height)
	cursorRow := m.cursor / cols
	offset := 0
	if cursorRow >= visRows {
		offset = cursorRow - visRows + 1
	}

	var rows []string
	for r := offset; r < offset+visRows; r++ {
		start := r * cols
		if start >= len(m.visible) {
			break
		}
		var cells []string
		for c := 0; c < cols && start+c < len(m.visible); c++ {
			idx := start + c
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", tileGap))
			}
			cells = append(cells, m.renderTile(idx))

			x := c * (tileOuterW + tileGap)
			y := gridTop + (r-offset)*tileOuterH
			m.hits.AddRect(hitThumb, x, y, tileOuterW, tileOuterH, idx)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// renderTile draws one bordered thumbnail with its caption.
func (m Model) renderTile(idx int) string {
	st := m.theme.Styles()
	item := m.visible[idx]
	focused := idx == m.cursor

	img := m.renderThumbImage(item)
	caption := truncateMiddle(item.Name, tileImgCols)
	captionStyle := st.TileCaption
	if focused {
		captionStyle = st.TileCaptionFocus
	}
	content := img + "\n" + captionStyle.Width(tileImgCols).Render(caption)

	tile := st.Tile
	if focused {
		tile = st.TileFocus
	}
	return tile.Render(content)
}

// renderThumbImage draws the downsampled thumbnail, or a placeholder
// while the image is loading or failed to decode.
func (m Model) renderThumbImage(item library.Item) string {
	st := m.theme.Styles()
	source := m.galleryCfg.Thumb(item)
	grid, ok := m.grids[source]
	if ok && !grid.Empty() {
		return composite(tileImgCols, tileImgRows, st.background, 1,
			layer{grid: sampleGrid(grid, tileImgCols, tileImgRows), opacity: 1})
	}

	label := "…"
	if ok { // loaded but empty: decode failed
		label = "⊘"
	}
	return lipgloss.Place(tileImgCols, tileImgRows, lipgloss.Center, lipgloss.Center,
		st.FaintText.Render(label))
}

// renderHeader draws the one-line title bar.
func (m Model) renderHeader() string {
	st := m.theme.Styles()
	left := st.AccentText.Render("lux")
	count := fmt.Sprintf(" %d images", len(m.visible))
	if m.query != "" {
		count = fmt.Sprintf(" %d/%d images", len(m.visible), len(m.items))
	}
	right := st.FaintText.Render(m.theme.Name)
	mid := st.MutedText.Render(count)

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return st.Header.Width(m.width).Render(left + mid + strings.Repeat(" ", pad) + right)
}

// renderFilterLine draws the filter input or, when idle, the active
// query hint.
func (m Model) renderFilterLine() string {
	st := m.theme.Styles()
	if m.filtering {
		return m.filterInput.View()
	}
	if m.query != "" {
		return st.MutedText.Render(fmt.Sprintf("filter: %s (esc to clear)", m.query))
	}
	return ""
}

// renderFooter draws the short help line.
func (m Model) renderFooter() string {
	st := m.theme.Styles()
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return st.Footer.Width(m.width).Render(strings.Join(parts, "  •  "))
}

// gridHeight is the cell height available to the thumbnail grid.
func (m Model) gridHeight() int {
	h := m.height - gridTop - 1
	if h < 1 {
		h = 1
	}
	return h
}
