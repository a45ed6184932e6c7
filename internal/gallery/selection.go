package gallery

// Selection is the open-lightbox navigation state: the selected item
// plus its circular neighbors in the item list it was computed from.
type Selection[T comparable] struct {
	Selected T
	Previous T
	Next     T
}

// Neighbors locates selected in items and returns it together with its
// circular previous and next neighbors. The scan is a single pass and
// the first equal element wins when duplicates exist.
//
// A single-element list yields previous == next == selected; a
// two-element list yields previous == next == the other element. The
// second return is false when items is empty or selected is absent.
func Neighbors[T comparable](items []T, selected T) (Selection[T], bool) {
	for i, item := range items {
		if item != selected {
			continue
		}
		n := len(items)
		return Selection[T]{
			Selected: item,
			Previous: items[(i-1+n)%n],
			Next:     items[(i+1)%n],
		}, true
	}
	return Selection[T]{}, false
}
