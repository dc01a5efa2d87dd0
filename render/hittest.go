package render

import (
	"math"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
)

// Hit tests operate in world space with an inclusive tolerance: a point at
// exactly tolerance distance counts as a hit. The caller derives tolerance
// from a screen-pixel aperture via ViewTransform.WorldLength so picking
// feels the same at every zoom level.

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(p, a, b draft.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}

func hitLine(e entity.Entity, p draft.Point, tol float64) bool {
	l := e.(entity.Line)
	return segmentDistance(p, l.Start, l.End) <= tol
}

func hitPolyline(e entity.Entity, p draft.Point, tol float64) bool {
	pl := e.(entity.Polyline)
	for _, seg := range pl.Segments() {
		if segmentDistance(p, seg[0], seg[1]) <= tol {
			return true
		}
	}
	return false
}

func hitCircle(e entity.Entity, p draft.Point, tol float64) bool {
	c := e.(entity.Circle)
	return math.Abs(p.Distance(c.Center)-c.Radius) <= tol
}

func hitArc(e entity.Entity, p draft.Point, tol float64) bool {
	a := e.(entity.Arc)
	if math.Abs(p.Distance(a.Center)-a.Radius) > tol {
		return false
	}
	deg := entity.Degrees(a.Center.AngleTo(p))
	return a.ContainsAngle(deg)
}

func hitRectangle(e entity.Entity, p draft.Point, tol float64) bool {
	r := e.(entity.Rectangle)
	corners := r.Corners()
	for i := range corners {
		next := corners[(i+1)%len(corners)]
		if segmentDistance(p, corners[i], next) <= tol {
			return true
		}
	}
	return false
}

func hitText(e entity.Entity, p draft.Point, tol float64) bool {
	t := e.(entity.Text)
	return t.Bounds().Expand(tol).Contains(p)
}

func hitAngle(e entity.Entity, p draft.Point, tol float64) bool {
	m := e.(entity.AngleMeasurement)
	return segmentDistance(p, m.Vertex, m.Point1) <= tol ||
		segmentDistance(p, m.Vertex, m.Point2) <= tol
}
