// Package grip implements direct-manipulation grip editing: the draggable
// handles shown on selected entities and the drag session that turns a
// pointer gesture into exactly one atomic entity update.
//
// Grips are recomputed from entity geometry on every render pass and never
// persisted; only the drag session carries state between events.
package grip

import "github.com/draftview/draft"

// Type classifies what part of the geometry a grip owns.
type Type string

const (
	// Vertex grips move a defining point (line endpoint, polyline vertex,
	// rectangle corner, arc endpoint).
	Vertex Type = "vertex"

	// Midpoint grips sit halfway along an edge and move the whole edge or
	// entity depending on the kind.
	Midpoint Type = "midpoint"

	// Center grips move the entire entity.
	Center Type = "center"

	// Quadrant grips sit on a circle at 0/90/180/270 degrees and resize
	// the radius.
	Quadrant Type = "quadrant"
)

// State is the tiered visual state of a grip.
type State int

const (
	// Cold: the entity is selected or hovered but the pointer is
	// elsewhere.
	Cold State = iota

	// Warm: the pointer is within the aperture tolerance but the grip is
	// not grabbed.
	Warm

	// Hot: the grip is grabbed and dragging.
	Hot
)

// Grip is one draggable handle on an entity. Index disambiguates grips of
// the same Type (vertex number, quadrant number, edge number).
type Grip struct {
	EntityID string
	Type     Type
	Index    int
	Position draft.Point
	State    State
}

// Hit returns the index of the grip within aperture distance of the
// pointer, nearest first, or -1 if none qualifies.
func Hit(grips []Grip, pointer draft.Point, aperture float64) int {
	best := -1
	bestDist := aperture
	for i, g := range grips {
		d := g.Position.Distance(pointer)
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// UpdateStates returns the grips with their states refreshed for the
// current pointer position: the grip being dragged (hotIdx >= 0) is Hot,
// the nearest grip within aperture is Warm, all others Cold. The input
// slice is not modified.
func UpdateStates(grips []Grip, pointer draft.Point, aperture float64, hotIdx int) []Grip {
	out := make([]Grip, len(grips))
	copy(out, grips)
	warm := -1
	if hotIdx < 0 {
		warm = Hit(out, pointer, aperture)
	}
	for i := range out {
		switch i {
		case hotIdx:
			out[i].State = Hot
		case warm:
			out[i].State = Warm
		default:
			out[i].State = Cold
		}
	}
	return out
}
