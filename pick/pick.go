package pick

import (
	"math"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
	"github.com/draftview/draft/render"
	"github.com/draftview/draft/scene"
)

// Pick returns the id of the topmost visible entity within tolerance of
// the world point. Entities are tested in reverse paint order so the
// entity painted on top wins; invisible entities and entities on hidden
// layers are skipped. ok=false reports a miss.
func Pick(s scene.Scene, p draft.Point, tolerance float64) (string, bool) {
	for i := len(s.Entities) - 1; i >= 0; i-- {
		e := s.Entities[i]
		if !s.IsVisible(e) {
			continue
		}
		if render.HitTest(e, p, tolerance) {
			return e.Common().ID, true
		}
	}
	return "", false
}

// Mode selects how a marquee region matches entities.
type Mode int

const (
	// Window selects entities fully contained in the region
	// (left-to-right drag, solid outline).
	Window Mode = iota

	// Crossing selects entities merely intersecting the region
	// (right-to-left drag, dashed outline).
	Crossing
)

// ModeFromDrag maps drag direction to the selection mode. The convention
// is user-visible and fixed: dragging left-to-right selects by window,
// right-to-left by crossing.
func ModeFromDrag(start, end draft.Point) Mode {
	if end.X < start.X {
		return Crossing
	}
	return Window
}

// PickRegion returns the ids of all visible entities matched by the
// marquee spanning the two world points, in paint order.
func PickRegion(s scene.Scene, a, b draft.Point, mode Mode) []string {
	region := draft.RectFromPoints(a, b)
	var out []string
	for _, e := range s.Entities {
		if !s.IsVisible(e) {
			continue
		}
		var match bool
		if mode == Window {
			match = region.ContainsRect(e.Bounds())
		} else {
			match = intersectsRegion(e, region)
		}
		if match {
			out = append(out, e.Common().ID)
		}
	}
	return out
}

// intersectsRegion reports whether the entity's geometry crosses or lies
// inside the region. Segment-based kinds test their edges exactly;
// circles and arcs test the ring against the region.
func intersectsRegion(e entity.Entity, region draft.Rect) bool {
	if !region.Intersects(e.Bounds()) {
		return false
	}
	switch v := e.(type) {
	case entity.Line:
		return segmentIntersectsRect(v.Start, v.End, region)
	case entity.Polyline:
		for _, seg := range v.Segments() {
			if segmentIntersectsRect(seg[0], seg[1], region) {
				return true
			}
		}
		return false
	case entity.Rectangle:
		corners := v.Corners()
		for i := range corners {
			if segmentIntersectsRect(corners[i], corners[(i+1)%len(corners)], region) {
				return true
			}
		}
		return false
	case entity.Circle:
		return ringIntersectsRect(v.Center, v.Radius, region)
	case entity.Arc:
		if !ringIntersectsRect(v.Center, v.Radius, region) {
			return false
		}
		// Ring overlap plus a sampled sweep check: accept if any probe
		// point along the sweep falls inside, or an endpoint does.
		for _, f := range [5]float64{0, 0.25, 0.5, 0.75, 1} {
			deg := entity.NormalizeDeg(v.StartAngle) + v.Sweep()*f
			if region.Contains(v.PointAt(deg)) {
				return true
			}
		}
		// Probes all missed: fall back to the bounds overlap already
		// established, keeping crossing selection permissive.
		return true
	case entity.AngleMeasurement:
		return segmentIntersectsRect(v.Vertex, v.Point1, region) ||
			segmentIntersectsRect(v.Vertex, v.Point2, region)
	default:
		// Text and anything else: bounds overlap decides.
		return true
	}
}

// segmentIntersectsRect reports whether segment ab touches the rectangle,
// including the fully-inside case.
func segmentIntersectsRect(a, b draft.Point, r draft.Rect) bool {
	if r.Contains(a) || r.Contains(b) {
		return true
	}
	corners := r.Corners()
	for i := range corners {
		if segmentsIntersect(a, b, corners[i], corners[(i+1)%len(corners)]) {
			return true
		}
	}
	return false
}

// segmentsIntersect reports whether segments ab and cd intersect,
// boundary inclusive.
func segmentsIntersect(a, b, c, d draft.Point) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) ||
		(d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) ||
		(d4 == 0 && onSegment(a, b, d))
}

func orient(a, b, p draft.Point) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

func onSegment(a, b, p draft.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// ringIntersectsRect reports whether the circle outline (not the disc)
// touches the rectangle: the nearest point of the rectangle must be no
// farther than the radius and the farthest corner no nearer.
func ringIntersectsRect(center draft.Point, radius float64, r draft.Rect) bool {
	nearX := math.Max(r.MinX, math.Min(center.X, r.MaxX))
	nearY := math.Max(r.MinY, math.Min(center.Y, r.MaxY))
	nearest := center.Distance(draft.Pt(nearX, nearY))
	farthest := 0.0
	for _, c := range r.Corners() {
		farthest = math.Max(farthest, center.Distance(c))
	}
	return nearest <= radius && farthest >= radius
}
