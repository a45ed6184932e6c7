package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Side-control column width inside the modal frame.
const controlW = 3

// renderModal draws the lightbox overlay: a backdrop filling the
// screen, a framed image area cross-fading between the background and
// foreground layers, previous/next controls, a close control and a
// caption. The whole overlay is blended toward the backdrop by the
// modal timeline's opacity, which is what animates open and close.
//
// Click targets: the backdrop and the close control raise Close, the
// side controls raise Previous/Next, and the content area swallows
// clicks so they do not fall through to the backdrop.
func (m Model) renderModal() string {
	st := m.theme.Styles()
	modal := m.state.Modal.Style()
	op := modal.Opacity

	imgCols := m.width - 2*controlW - 6
	imgRows := m.height - 7
	if imgCols < 8 {
		imgCols = 8
	}
	if imgRows < 4 {
		imgRows = 4
	}

	bg := m.state.Background.Style()
	fg := m.state.Foreground.Style()
	img := composite(imgCols, imgRows, st.backdrop, op,
		layer{grid: sampleGrid(m.grids[bg.Source], imgCols, imgRows), opacity: bg.Opacity},
		layer{grid: sampleGrid(m.grids[fg.Source], imgCols, imgRows), opacity: fg.Opacity},
	)

	sel, open := m.state.Selection()
	showNav := open && sel.Next != sel.Selected

	prevCol := strings.Repeat(" ", controlW)
	nextCol := prevCol
	if showNav {
		prevCol = st.ModalControl.Render(" ❮ ")
		nextCol = st.ModalControl.Render(" ❯ ")
	}
	prevBlock := lipgloss.Place(controlW, imgRows, lipgloss.Center, lipgloss.Center, prevCol)
	nextBlock := lipgloss.Place(controlW, imgRows, lipgloss.Center, lipgloss.Center, nextCol)

	body := lipgloss.JoinHorizontal(lipgloss.Center, prevBlock, img, nextBlock)

	caption := m.modalCaption(imgCols)
	content := body + "\n" + caption

	// Fade the frame border along with the content.
	frameColor := blend(st.backdrop, mustHex(m.theme.Frame), op)
	frame := st.ModalFrame.BorderForeground(lipgloss.Color(frameColor.Hex())).Render(content)

	frameW := lipgloss.Width(frame)
	frameH := lipgloss.Height(frame)
	fx := (m.width - frameW) / 2
	fy := (m.height - frameH) / 2
	if fx < 0 {
		fx = 0
	}
	if fy < 0 {
		fy = 0
	}

	// Backdrop first so the frame regions win on overlap.
	m.hits.AddRect(hitBackdrop, 0, 0, m.width, m.height, nil)
	m.hits.AddRect(hitContent, fx, fy, frameW, frameH, nil)
	if showNav {
		m.hits.AddRect(hitPrev, fx, fy+1, controlW+1, imgRows, nil)
		m.hits.AddRect(hitNext, fx+frameW-controlW-1, fy+1, controlW+1, imgRows, nil)
	}
	// Close target: right end of the caption row.
	m.hits.AddRect(hitClose, fx+frameW-6, fy+frameH-2, 5, 1, nil)

	backdrop := blend(st.background, st.backdrop, op)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(backdrop.Hex())))
}

// modalCaption draws the line under the image: name and position on
// the left, the close control on the right. Text fades with the modal.
func (m Model) modalCaption(width int) string {
	st := m.theme.Styles()
	op := m.state.Modal.Style().Opacity

	var left string
	if sel, open := m.state.Selection(); open {
		pos := ""
		for i, it := range m.visible {
			if it == sel.Selected {
				pos = fmt.Sprintf("  %d/%d", i+1, len(m.visible))
				break
			}
		}
		left = truncateMiddle(sel.Selected.Name, width-12) + pos
	} else {
		left = "no image selected"
	}

	captionColor := blend(st.backdrop, mustHex(m.theme.Caption), op)
	controlColor := blend(st.backdrop, mustHex(m.theme.Control), op)

	closeCtl := lipgloss.NewStyle().Foreground(lipgloss.Color(controlColor.Hex())).Bold(true).Render(" ✕ ")
	leftR := lipgloss.NewStyle().Foreground(lipgloss.Color(captionColor.Hex())).Render(left)

	total := width + 2*controlW
	pad := total - lipgloss.Width(leftR) - lipgloss.Width(closeCtl) - 1
	if pad < 1 {
		pad = 1
	}
	return " " + leftR + strings.Repeat(" ", pad) + closeCtl
}
