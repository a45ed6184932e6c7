// Package gallery implements the lightbox state machine.
//
// A State tracks which item of an externally supplied ordered list is
// currently open in the lightbox, plus three animation timelines: one
// for the modal's visibility, and one each for the background and
// foreground image layers used to cross-fade between pictures.
//
// The item list is passed into every transition rather than stored, so
// callers are free to supply a different list on each call; neighbors
// are recomputed from whatever list arrives with the event. All
// transitions are total: degenerate input (empty list, item not in the
// list, navigation while closed) degrades to a valid state instead of
// returning an error.
package gallery

import (
	"time"

	"github.com/tavisk/lux/internal/timeline"
)

// Config derives display values from items. It is supplied once by the
// embedding application and never retained across calls.
type Config[T comparable] struct {
	// ImageURL returns the full-size image source for an item.
	ImageURL func(T) string
	// ThumbURL returns the thumbnail source, or "" when the item has
	// none. May be nil.
	ThumbURL func(T) string
}

// Thumb returns the thumbnail source for an item, falling back to the
// full image source when no thumbnail is configured.
func (c Config[T]) Thumb(item T) string {
	if c.ThumbURL != nil {
		if u := c.ThumbURL(item); u != "" {
			return u
		}
	}
	return c.ImageURL(item)
}

// crossfadeDelay is the pause before a newly selected image starts
// fading in, giving its source a head start on loading.
const crossfadeDelay = 50 * time.Millisecond

// State is the complete gallery state. It is a value: Transition and
// Tick return new states and never mutate their input.
type State[T comparable] struct {
	selection Selection[T]
	open      bool

	// Modal drives the overlay's visibility and backdrop fade.
	Modal timeline.Timeline
	// Background shows the last fully displayed image during a
	// cross-fade.
	Background timeline.Timeline
	// Foreground fades the newly selected image in over the
	// background.
	Foreground timeline.Timeline
}

// NewState returns a closed gallery whose timelines run at the given
// frame rate.
func NewState[T comparable](fps int) State[T] {
	return State[T]{
		Modal:      timeline.New(fps),
		Background: timeline.New(fps),
		Foreground: timeline.New(fps),
	}
}

// Selection returns the current selection and whether the gallery is
// open.
func (s State[T]) Selection() (Selection[T], bool) {
	return s.selection, s.open
}

// Open reports whether an item is currently selected.
func (s State[T]) Open() bool {
	return s.open
}

// Animating reports whether any timeline still needs frame ticks.
func (s State[T]) Animating() bool {
	return s.Modal.Animating() || s.Background.Animating() || s.Foreground.Animating()
}

// Tick advances all three timelines by elapsed wall time. The
// selection is never altered by time passing.
func (s State[T]) Tick(elapsed time.Duration) State[T] {
	s.Modal = s.Modal.Advance(elapsed)
	s.Background = s.Background.Advance(elapsed)
	s.Foreground = s.Foreground.Advance(elapsed)
	return s
}

// Transition applies one event to the state against the supplied item
// list and returns the resulting state.
func Transition[T comparable](cfg Config[T], ev Event[T], s State[T], items []T) State[T] {
	switch ev.kind {
	case kindSelect:
		return doSelect(cfg, s, ev.item, items)
	case kindNext:
		if !s.open {
			return s
		}
		return doSelect(cfg, s, s.selection.Next, items)
	case kindPrevious:
		if !s.open {
			return s
		}
		return doSelect(cfg, s, s.selection.Previous, items)
	case kindClose:
		return doClose(cfg, s)
	}
	// kindNoop and anything unrecognized: identity.
	return s
}

func doSelect[T comparable](cfg Config[T], s State[T], item T, items []T) State[T] {
	var prevSrc string
	havePrev := s.open
	if havePrev {
		prevSrc = cfg.ImageURL(s.selection.Selected)
	}

	sel, ok := Neighbors(items, item)
	if !ok {
		// Item missing or list empty: clear the selection but leave
		// modal visibility alone. Policy, not failure.
		s.selection = Selection[T]{}
		s.open = false
		return crossfade(s, prevSrc, havePrev, "", false)
	}

	s.selection = sel
	s.open = true
	s.Modal = s.Modal.Interrupt().Show().To(1)
	return crossfade(s, prevSrc, havePrev, cfg.ImageURL(sel.Selected), true)
}

func doClose[T comparable](cfg Config[T], s State[T]) State[T] {
	var prevSrc string
	havePrev := s.open
	if havePrev {
		prevSrc = cfg.ImageURL(s.selection.Selected)
	}

	s.selection = Selection[T]{}
	s.open = false
	// Fade out first, drop from layout only once the fade completes.
	s.Modal = s.Modal.Interrupt().To(0).Hide()
	return crossfade(s, prevSrc, havePrev, "", false)
}

// crossfade applies the image-layer rule for a selection change.
//
// With both an outgoing and an incoming image the new picture fades in
// over the old one: the background queues a hard set to the previous
// source while the foreground queues a short delay, the new source at
// zero opacity, and a fade to full. These are queued rather than
// interrupting so rapid navigation finishes each fade in order.
//
// With only one image available (first open, or closing) the
// background is set to it directly and the foreground resets to
// transparent with no transition. With neither, the layers are left
// untouched.
func crossfade[T comparable](s State[T], prevSrc string, havePrev bool, newSrc string, haveNew bool) State[T] {
	switch {
	case havePrev && haveNew:
		s.Background = s.Background.SetSource(prevSrc, 1)
		s.Foreground = s.Foreground.
			Wait(crossfadeDelay).
			SetSource(newSrc, 0).
			To(1)
	case haveNew:
		s.Background = s.Background.Interrupt().SetSource(newSrc, 1)
		s.Foreground = s.Foreground.Interrupt().SetOpacity(0)
	case havePrev:
		s.Background = s.Background.Interrupt().SetSource(prevSrc, 1)
		s.Foreground = s.Foreground.Interrupt().SetOpacity(0)
	}
	return s
}
