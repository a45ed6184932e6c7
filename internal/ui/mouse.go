package ui

// Click-target identifiers registered by the render functions.
const (
	hitThumb    = "thumb"
	hitBackdrop = "backdrop"
	hitContent  = "content"
	hitPrev     = "prev"
	hitNext     = "next"
	hitClose    = "close"
)

// Rect is a rectangular screen region in cell coordinates. Width and
// height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area with optional payload data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap resolves click coordinates to regions. Regions added later
// win over earlier ones, so overlays register after what they cover.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Clear removes all regions. Called at the start of every render pass
// so the map always matches the frame on screen.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// AddRect registers a clickable region.
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}
