package entity

import (
	"math"

	"github.com/draftview/draft"
)

// Angle convention: entity angles are stored in degrees, normalized to
// [0, 360), measured counterclockwise from the positive X axis. Arcs sweep
// counterclockwise from StartAngle to EndAngle; a sweep that reaches or
// passes EndAngle <= StartAngle wraps through 0, and equal angles denote a
// full 360-degree sweep.

// NormalizeDeg maps an angle in degrees to [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Sweep returns the arc's counterclockwise extent in degrees, in (0, 360].
func (a Arc) Sweep() float64 {
	s := NormalizeDeg(a.EndAngle) - NormalizeDeg(a.StartAngle)
	if s <= 0 {
		s += 360
	}
	return s
}

// ContainsAngle reports whether the given angle (degrees) lies within the
// arc's sweep, boundary inclusive.
func (a Arc) ContainsAngle(deg float64) bool {
	start := NormalizeDeg(a.StartAngle)
	rel := NormalizeDeg(deg) - start
	if rel < 0 {
		rel += 360
	}
	return rel <= a.Sweep()
}

// PointAt returns the point on the arc's circle at the given angle
// (degrees).
func (a Arc) PointAt(deg float64) draft.Point {
	return a.Center.Polar(a.Radius, Radians(deg))
}

// StartPoint returns the arc endpoint at StartAngle.
func (a Arc) StartPoint() draft.Point { return a.PointAt(a.StartAngle) }

// EndPoint returns the arc endpoint at EndAngle.
func (a Arc) EndPoint() draft.Point { return a.PointAt(a.EndAngle) }

// MidPoint returns the point halfway along the sweep.
func (a Arc) MidPoint() draft.Point {
	return a.PointAt(NormalizeDeg(a.StartAngle) + a.Sweep()/2)
}

// InteriorAngle returns the angle in degrees at vertex between the rays
// toward p1 and p2, always the shorter of the two, in [0, 180].
// A degenerate ray (endpoint at the vertex) measures 0.
func InteriorAngle(vertex, p1, p2 draft.Point) float64 {
	u := p1.Sub(vertex)
	v := p2.Sub(vertex)
	lu, lv := u.Length(), v.Length()
	if lu == 0 || lv == 0 {
		return 0
	}
	cos := u.Dot(v) / (lu * lv)
	cos = math.Max(-1, math.Min(1, cos))
	return Degrees(math.Acos(cos))
}
