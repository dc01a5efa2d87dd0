package scene

import "github.com/draftview/draft"

// RecomputeBounds returns the scene with its cached AABB refreshed from
// every entity's type-specific bounds. An empty scene yields the defined
// degenerate box at the origin rather than an inverted rectangle, so
// callers can always fit or center the view without special cases.
func (s Scene) RecomputeBounds() Scene {
	box := draft.EmptyRect()
	for _, e := range s.Entities {
		box = box.Union(e.Bounds())
	}
	if box.IsEmpty() {
		box = draft.Rect{}
	}
	out := s
	out.Bounds = box
	return out
}
