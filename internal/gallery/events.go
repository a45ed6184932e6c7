package gallery

type kind int

const (
	kindNoop kind = iota
	kindSelect
	kindClose
	kindNext
	kindPrevious
)

// Event is one input to the state machine. Construct events with the
// package-level functions; the zero Event is a no-op.
type Event[T comparable] struct {
	kind kind
	item T
}

// Select opens the lightbox on item.
func Select[T comparable](item T) Event[T] {
	return Event[T]{kind: kindSelect, item: item}
}

// Close closes the lightbox.
func Close[T comparable]() Event[T] {
	return Event[T]{kind: kindClose}
}

// Next advances to the item after the current selection.
func Next[T comparable]() Event[T] {
	return Event[T]{kind: kindNext}
}

// Previous moves to the item before the current selection.
func Previous[T comparable]() Event[T] {
	return Event[T]{kind: kindPrevious}
}

// Noop is the identity event, used to deliberately swallow input that
// must not propagate (scrolling over the modal, stray keys).
func Noop[T comparable]() Event[T] {
	return Event[T]{kind: kindNoop}
}
