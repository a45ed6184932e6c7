// Package timeline implements a small declarative animation timeline.
//
// A Timeline owns the presentation of one renderable layer: its
// opacity, its visibility, and the image source it shows. Callers
// append instructions (set, wait, tween) and advance the timeline with
// elapsed wall time; the current Style is a pure projection of
// everything consumed so far. Animated opacity changes are driven by a
// critically damped harmonica spring, so they ease out instead of
// cutting hard.
//
// Timelines are values. Every instruction and Advance returns a new
// Timeline; the original is never mutated.
package timeline

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Style is the renderable projection of a timeline.
type Style struct {
	Opacity float64 // 0..1
	Shown   bool    // whether the layer participates in layout at all
	Source  string  // image identity, opaque to this package
}

const (
	// Spring tuning for opacity fades. Damping 1.0 is critical
	// damping: the value approaches its target without overshoot.
	fadeFrequency = 7.0
	fadeDamping   = 1.0

	// A tween is considered settled once position and velocity are
	// both within this distance of rest.
	settleEpsilon = 0.005
)

type stepKind int

const (
	stepShown stepKind = iota
	stepSource
	stepOpacity
	stepWait
	stepTween
)

type step struct {
	kind    stepKind
	shown   bool
	source  string
	opacity float64 // payload for stepSource/stepOpacity, target for stepTween
	wait    time.Duration

	// tween velocity, carried across Advance calls
	vel float64
}

// Timeline is an ordered queue of style instructions plus the style
// they have produced so far.
type Timeline struct {
	current Style
	steps   []step
	spring  harmonica.Spring
	frame   time.Duration
}

// New returns an idle timeline rendering at the given frame rate with
// a hidden, fully transparent style.
func New(fps int) Timeline {
	if fps <= 0 {
		fps = 60
	}
	return Timeline{
		spring: harmonica.NewSpring(harmonica.FPS(fps), fadeFrequency, fadeDamping),
		frame:  time.Second / time.Duration(fps),
	}
}

// Style returns the current renderable style.
func (t Timeline) Style() Style {
	return t.current
}

// Animating reports whether the timeline still has queued work and
// therefore needs further Advance calls.
func (t Timeline) Animating() bool {
	return len(t.steps) > 0
}

// Interrupt drops every queued instruction, freezing the style at its
// current value. In-flight tweens stop where they are.
func (t Timeline) Interrupt() Timeline {
	t.steps = nil
	return t
}

// Show queues an instruction making the layer visible.
func (t Timeline) Show() Timeline {
	return t.push(step{kind: stepShown, shown: true})
}

// Hide queues an instruction removing the layer from layout.
func (t Timeline) Hide() Timeline {
	return t.push(step{kind: stepShown, shown: false})
}

// SetSource queues an instruction swapping the image source and
// setting opacity in the same frame.
func (t Timeline) SetSource(source string, opacity float64) Timeline {
	return t.push(step{kind: stepSource, source: source, opacity: opacity})
}

// SetOpacity queues an instantaneous opacity change.
func (t Timeline) SetOpacity(opacity float64) Timeline {
	return t.push(step{kind: stepOpacity, opacity: opacity})
}

// Wait queues a fixed delay before subsequent instructions run.
func (t Timeline) Wait(d time.Duration) Timeline {
	return t.push(step{kind: stepWait, wait: d})
}

// To queues an animated opacity transition toward the target value.
func (t Timeline) To(opacity float64) Timeline {
	return t.push(step{kind: stepTween, opacity: opacity})
}

// Advance consumes queued instructions against elapsed wall time and
// returns the resulting timeline. Instantaneous instructions consume
// no time; waits and tweens consume it in order, so a delay queued
// before a fade holds the fade back.
func (t Timeline) Advance(elapsed time.Duration) Timeline {
	if len(t.steps) == 0 {
		return t
	}
	steps := make([]step, len(t.steps))
	copy(steps, t.steps)
	t.steps = steps

	for len(t.steps) > 0 {
		head := &t.steps[0]
		switch head.kind {
		case stepShown:
			t.current.Shown = head.shown
			t.steps = t.steps[1:]

		case stepSource:
			t.current.Source = head.source
			t.current.Opacity = head.opacity
			t.steps = t.steps[1:]

		case stepOpacity:
			t.current.Opacity = head.opacity
			t.steps = t.steps[1:]

		case stepWait:
			if head.wait > elapsed {
				head.wait -= elapsed
				return t
			}
			elapsed -= head.wait
			t.steps = t.steps[1:]

		case stepTween:
			settled := false
			for elapsed >= t.frame {
				elapsed -= t.frame
				pos, vel := t.spring.Update(t.current.Opacity, head.vel, head.opacity)
				t.current.Opacity = clamp01(pos)
				head.vel = vel
				if isSettled(t.current.Opacity, head.vel, head.opacity) {
					t.current.Opacity = head.opacity
					settled = true
					break
				}
			}
			if !settled {
				return t
			}
			t.steps = t.steps[1:]
		}
	}
	return t
}

func (t Timeline) push(s step) Timeline {
	steps := make([]step, len(t.steps), len(t.steps)+1)
	copy(steps, t.steps)
	t.steps = append(steps, s)
	return t
}

func isSettled(pos, vel, target float64) bool {
	d := pos - target
	if d < 0 {
		d = -d
	}
	v := vel
	if v < 0 {
		v = -v
	}
	return d < settleEpsilon && v < settleEpsilon
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
