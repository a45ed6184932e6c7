package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tavisk/lux/internal/config"
	"github.com/tavisk/lux/internal/gallery"
	"github.com/tavisk/lux/internal/imaging"
	"github.com/tavisk/lux/internal/library"
	"github.com/tavisk/lux/internal/logging"
	"github.com/tavisk/lux/internal/prefs"
)

// refreshEvery is how often the UI pulls a fresh library snapshot from
// the store. The rescanner writes on its own cadence; this only
// controls how quickly the grid notices.
const refreshEvery = time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *library.Store
	Config    *config.Config
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *library.Store
	config    *config.Config
	prefsPath string
	fps       int

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	// Library state
	items   []library.Item
	visible []library.Item
	cursor  int

	// Filter state
	filterInput textinput.Model
	filtering   bool
	query       string

	// Lightbox state
	galleryCfg gallery.Config[library.Item]
	state      gallery.State[library.Item]

	// Decoded image grids keyed by source path. An empty grid marks a
	// failed decode so it is not retried every frame.
	grids   map[string]imaging.Grid
	loading map[string]bool

	// Mouse click targets, rebuilt on every render pass.
	hits *HitMap

	// Frame tick bookkeeping
	ticking   bool
	lastFrame time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	fps := 30
	if opts.Config != nil && opts.Config.FPS > 0 {
		fps = opts.Config.FPS
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter images"
	input.CharLimit = 64

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		config:      opts.Config,
		prefsPath:   prefsPath,
		fps:         fps,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		filterInput: input,
		galleryCfg: gallery.Config[library.Item]{
			ImageURL: func(it library.Item) string { return it.Path },
			ThumbURL: func(it library.Item) string { return it.Thumb },
		},
		state:   gallery.NewState[library.Item](fps),
		grids:   make(map[string]imaging.Grid),
		loading: make(map[string]bool),
		hits:    NewHitMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{refreshCmd()}
	if m.store != nil {
		cmds = append(cmds, fetchItemsCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, tea.Batch(m.ensureImages()...)

	case refreshMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchItemsCmd(m.store))
		}
		cmds = append(cmds, refreshCmd())
		return m, tea.Batch(cmds...)

	case itemsMsg:
		m.items = msg
		m.applyFilter()
		return m, tea.Batch(m.ensureImages()...)

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case gridLoadedMsg:
		delete(m.loading, msg.source)
		m.grids[msg.source] = msg.grid
		return m, nil

	case gridErrorMsg:
		delete(m.loading, msg.source)
		m.grids[msg.source] = imaging.Grid{} // marks the decode as failed
		logging.L().Warn("image load failed", zap.String("source", msg.source), zap.Error(msg.err))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	m.hits.Clear()

	if m.showHelp {
		return m.renderHelp()
	}
	if m.state.Modal.Style().Shown {
		return m.renderModal()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input. When the lightbox is visible it
// owns the keyboard: navigation and close are handled, everything else
// is deliberately swallowed so stray keys never reach the grid.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	if m.state.Modal.Style().Shown {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escape):
			return m, m.transition(gallery.Close[library.Item]())
		case key.Matches(msg, m.keys.NextImage):
			return m, m.transition(gallery.Next[library.Item]())
		case key.Matches(msg, m.keys.PrevImage):
			return m, m.transition(gallery.Previous[library.Item]())
		}
		return m, m.transition(gallery.Noop[library.Item]())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.query)
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		if m.query != "" {
			m.query = ""
			m.applyFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if item, ok := m.itemUnderCursor(); ok {
			return m, m.transition(gallery.Select(item))
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-gridColumns(m.width))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(gridColumns(m.width))
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}

	return m, tea.Batch(m.ensureImages()...)
}

// handleFilterKey processes keys while the filter input is focused.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.filterInput.Blur()
		m.query = m.filterInput.Value()
		m.applyFilter()
		return m, tea.Batch(m.ensureImages()...)
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// handleMouse routes clicks through the hit map built by the last
// render. Wheel events over the lightbox are swallowed so they cannot
// scroll the grid underneath it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	modalShown := m.state.Modal.Style().Shown

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if modalShown || m.showHelp {
			return m, m.transition(gallery.Noop[library.Item]())
		}
		if msg.Button == tea.MouseButtonWheelUp {
			m.moveCursor(-gridColumns(m.width))
		} else {
			m.moveCursor(gridColumns(m.width))
		}
		return m, tea.Batch(m.ensureImages()...)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	region := m.hits.Test(msg.X, msg.Y)
	if region == nil {
		return m, nil
	}

	switch region.ID {
	case hitThumb:
		if idx, ok := region.Data.(int); ok && idx < len(m.visible) {
			m.cursor = idx
			return m, m.transition(gallery.Select(m.visible[idx]))
		}
	case hitBackdrop, hitClose:
		return m, m.transition(gallery.Close[library.Item]())
	case hitPrev:
		return m, m.transition(gallery.Previous[library.Item]())
	case hitNext:
		return m, m.transition(gallery.Next[library.Item]())
	case hitContent:
		// Clicks inside the modal content must not fall through to
		// the backdrop's close handler.
		return m, m.transition(gallery.Noop[library.Item]())
	}
	return m, nil
}

// handleFrame advances the animation timelines by the wall time since
// the last frame and reschedules while anything is still moving.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := now.Sub(m.lastFrame)
	if elapsed < 0 {
		elapsed = 0
	}
	m.lastFrame = now
	m.state = m.state.Tick(elapsed)

	if !m.state.Animating() {
		m.ticking = false
		return m, nil
	}
	return m, frameCmd(m.fps)
}

// transition feeds one event to the gallery state machine against the
// currently visible item list, then makes sure the images it needs are
// loading and that frame ticks are running.
func (m *Model) transition(ev gallery.Event[library.Item]) tea.Cmd {
	m.state = gallery.Transition(m.galleryCfg, ev, m.state, m.visible)
	// Apply the instantaneous steps (show, source swaps) right away so
	// the next render reflects the event without waiting for a frame.
	m.state = m.state.Tick(0)

	cmds := m.ensureImages()
	if m.state.Animating() && !m.ticking {
		m.ticking = true
		m.lastFrame = time.Now()
		cmds = append(cmds, frameCmd(m.fps))
	}
	return tea.Batch(cmds...)
}

// ensureImages starts loads for every image source the current frame
// could need: visible thumbnails plus the lightbox layers and the
// neighbors it can navigate to next.
func (m *Model) ensureImages() []tea.Cmd {
	if !m.ready {
		return nil
	}
	var cmds []tea.Cmd

	want := func(source string) {
		if source == "" {
			return
		}
		if _, ok := m.grids[source]; ok {
			return
		}
		if m.loading[source] {
			return
		}
		m.loading[source] = true
		cmds = append(cmds, loadGridCmd(source, m.width, m.height))
	}

	for _, item := range m.visible {
		want(m.galleryCfg.Thumb(item))
	}
	want(m.state.Background.Style().Source)
	want(m.state.Foreground.Style().Source)
	if sel, open := m.state.Selection(); open {
		want(m.galleryCfg.ImageURL(sel.Selected))
		want(m.galleryCfg.ImageURL(sel.Next))
		want(m.galleryCfg.ImageURL(sel.Previous))
	}
	return cmds
}

// applyFilter recomputes the visible list from the latest items and
// the active query, keeping the cursor in range.
func (m *Model) applyFilter() {
	m.visible = library.Filter(m.items, m.query)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.visible) {
		return
	}
	m.cursor = next
}

func (m Model) itemUnderCursor() (library.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return library.Item{}, false
	}
	return m.visible[m.cursor], true
}

// Messages

type refreshMsg time.Time

type frameMsg time.Time

type itemsMsg []library.Item

type gridLoadedMsg struct {
	source string
	grid   imaging.Grid
}

type gridErrorMsg struct {
	source string
	err    error
}

// Commands

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func fetchItemsCmd(store *library.Store) tea.Cmd {
	return func() tea.Msg {
		return itemsMsg(store.Snapshot().Items)
	}
}

func loadGridCmd(source string, maxCols, maxRows int) tea.Cmd {
	return func() tea.Msg {
		grid, err := imaging.Load(source, maxCols, maxRows)
		if err != nil {
			return gridErrorMsg{source: source, err: err}
		}
		return gridLoadedMsg{source: source, grid: grid}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
