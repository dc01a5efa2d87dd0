// Package entity defines the closed set of drawable entity variants and the
// layer definitions they reference.
//
// Entity is a closed tagged union: the Kind discriminant selects the
// concrete variant, and the unexported marker method keeps the set closed so
// per-kind dispatch tables can be exhaustive. Variants are value types;
// editing produces a new value rather than mutating in place.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/draftview/draft"
)

// Kind discriminates the concrete entity variant. The string values are the
// wire names used by the scene import/export contract.
type Kind string

const (
	KindLine      Kind = "line"
	KindPolyline  Kind = "polyline"
	KindCircle    Kind = "circle"
	KindArc       Kind = "arc"
	KindRectangle Kind = "rectangle"
	KindText      Kind = "text"
	KindAngle     Kind = "angle_measurement"
)

// ErrInvalidGeometry reports an entity whose geometry violates its variant's
// invariants (non-positive radius, too few vertices, empty text).
var ErrInvalidGeometry = errors.New("invalid geometry")

// Base holds the fields common to every entity variant.
type Base struct {
	// ID uniquely identifies the entity within a scene.
	ID string

	// Layer is the name of the layer this entity belongs to.
	// An empty or unresolvable name falls back to the default layer.
	Layer string

	// Color is an optional hex color ("#RRGGBB"); empty means inherit the
	// layer color.
	Color string

	// Lineweight is the stroke width in screen pixels; 0 means default.
	Lineweight float64

	// Visible controls whether the entity is painted and pickable.
	Visible bool

	// Name is an optional user-facing label.
	Name string
}

// Entity is the closed union of drawable entity variants.
type Entity interface {
	// Kind returns the variant discriminant.
	Kind() Kind

	// Common returns the shared fields.
	Common() Base

	// WithCommon returns a copy of the entity with its shared fields
	// replaced.
	WithCommon(Base) Entity

	// Bounds returns the entity's axis-aligned bounding box in world
	// coordinates.
	Bounds() draft.Rect

	// Validate reports whether the entity's geometry satisfies its
	// variant's invariants. Errors wrap ErrInvalidGeometry.
	Validate() error

	// isEntity keeps the union closed to this package.
	isEntity()
}

// Line is a straight segment between two world points.
type Line struct {
	Base
	Start, End draft.Point
}

func (l Line) Kind() Kind   { return KindLine }
func (l Line) Common() Base { return l.Base }
func (l Line) WithCommon(b Base) Entity {
	l.Base = b
	return l
}
func (l Line) isEntity() {}

func (l Line) Bounds() draft.Rect {
	return draft.RectFromPoints(l.Start, l.End)
}

func (l Line) Validate() error {
	if !l.Start.IsFinite() || !l.End.IsFinite() {
		return fmt.Errorf("line %s: non-finite endpoint: %w", l.ID, ErrInvalidGeometry)
	}
	return nil
}

// Midpoint returns the point halfway between the endpoints.
func (l Line) Midpoint() draft.Point { return l.Start.Mid(l.End) }

// Length returns the segment length.
func (l Line) Length() float64 { return l.Start.Distance(l.End) }

// Polyline is a chain of two or more vertices, optionally closed.
type Polyline struct {
	Base
	Vertices []draft.Point
	Closed   bool
}

func (p Polyline) Kind() Kind   { return KindPolyline }
func (p Polyline) Common() Base { return p.Base }
func (p Polyline) WithCommon(b Base) Entity {
	p.Base = b
	return p
}
func (p Polyline) isEntity() {}

func (p Polyline) Bounds() draft.Rect {
	r := draft.EmptyRect()
	for _, v := range p.Vertices {
		r = r.UnionPoint(v)
	}
	return r
}

func (p Polyline) Validate() error {
	if len(p.Vertices) < 2 {
		return fmt.Errorf("polyline %s: %d vertices, need at least 2: %w",
			p.ID, len(p.Vertices), ErrInvalidGeometry)
	}
	for _, v := range p.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("polyline %s: non-finite vertex: %w", p.ID, ErrInvalidGeometry)
		}
	}
	return nil
}

// Segments returns the edges of the polyline as start/end pairs, including
// the closing edge when Closed is set.
func (p Polyline) Segments() [][2]draft.Point {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	segs := make([][2]draft.Point, 0, n)
	for i := 0; i < n-1; i++ {
		segs = append(segs, [2]draft.Point{p.Vertices[i], p.Vertices[i+1]})
	}
	if p.Closed {
		segs = append(segs, [2]draft.Point{p.Vertices[n-1], p.Vertices[0]})
	}
	return segs
}

// CloneVertices returns a copy of the vertex slice. Editing operations work
// on the copy so earlier scene values keep their geometry.
func (p Polyline) CloneVertices() []draft.Point {
	out := make([]draft.Point, len(p.Vertices))
	copy(out, p.Vertices)
	return out
}

// Circle is a full circle around a center point.
type Circle struct {
	Base
	Center draft.Point
	Radius float64
}

func (c Circle) Kind() Kind   { return KindCircle }
func (c Circle) Common() Base { return c.Base }
func (c Circle) WithCommon(b Base) Entity {
	c.Base = b
	return c
}
func (c Circle) isEntity() {}

func (c Circle) Bounds() draft.Rect {
	return draft.Rect{
		MinX: c.Center.X - c.Radius, MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius, MaxY: c.Center.Y + c.Radius,
	}
}

func (c Circle) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("circle %s: radius %v: %w", c.ID, c.Radius, ErrInvalidGeometry)
	}
	if !c.Center.IsFinite() {
		return fmt.Errorf("circle %s: non-finite center: %w", c.ID, ErrInvalidGeometry)
	}
	return nil
}

// Arc is a circular arc. Angles are in degrees, normalized to [0, 360),
// and the arc always sweeps counterclockwise from StartAngle to EndAngle;
// EndAngle <= StartAngle wraps through 0. Equal angles denote a full sweep.
type Arc struct {
	Base
	Center     draft.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (a Arc) Kind() Kind   { return KindArc }
func (a Arc) Common() Base { return a.Base }
func (a Arc) WithCommon(b Base) Entity {
	a.Base = b
	return a
}
func (a Arc) isEntity() {}

func (a Arc) Bounds() draft.Rect {
	r := draft.EmptyRect()
	r = r.UnionPoint(a.StartPoint())
	r = r.UnionPoint(a.EndPoint())
	// Axis extremes lie on the arc only if their angle is inside the sweep.
	for _, deg := range [4]float64{0, 90, 180, 270} {
		if a.ContainsAngle(deg) {
			r = r.UnionPoint(a.PointAt(deg))
		}
	}
	return r
}

func (a Arc) Validate() error {
	if a.Radius <= 0 {
		return fmt.Errorf("arc %s: radius %v: %w", a.ID, a.Radius, ErrInvalidGeometry)
	}
	if !a.Center.IsFinite() {
		return fmt.Errorf("arc %s: non-finite center: %w", a.ID, ErrInvalidGeometry)
	}
	return nil
}

// Rectangle is an axis-aligned box spanned by two opposite corners,
// optionally rotated by Rotation degrees around its center.
type Rectangle struct {
	Base
	Corner1, Corner2 draft.Point
	Rotation         float64
}

func (r Rectangle) Kind() Kind   { return KindRectangle }
func (r Rectangle) Common() Base { return r.Base }
func (r Rectangle) WithCommon(b Base) Entity {
	r.Base = b
	return r
}
func (r Rectangle) isEntity() {}

func (r Rectangle) Bounds() draft.Rect {
	box := draft.EmptyRect()
	for _, c := range r.Corners() {
		box = box.UnionPoint(c)
	}
	return box
}

func (r Rectangle) Validate() error {
	if !r.Corner1.IsFinite() || !r.Corner2.IsFinite() {
		return fmt.Errorf("rectangle %s: non-finite corner: %w", r.ID, ErrInvalidGeometry)
	}
	return nil
}

// Corners returns the four corners in counterclockwise order, with
// Rotation applied around the rectangle's center.
func (r Rectangle) Corners() [4]draft.Point {
	box := draft.RectFromPoints(r.Corner1, r.Corner2)
	corners := box.Corners()
	if r.Rotation == 0 {
		return corners
	}
	pivot := box.Center()
	rad := Radians(r.Rotation)
	for i, c := range corners {
		corners[i] = c.RotateAround(pivot, rad)
	}
	return corners
}

// Text is a text label anchored at a world position.
type Text struct {
	Base
	Position draft.Point
	Text     string
	Height   float64
	Rotation float64
}

func (t Text) Kind() Kind   { return KindText }
func (t Text) Common() Base { return t.Base }
func (t Text) WithCommon(b Base) Entity {
	t.Base = b
	return t
}
func (t Text) isEntity() {}

func (t Text) Bounds() draft.Rect {
	// Approximate extent: average glyph advance of 0.6 * height.
	w := 0.6 * t.Height * float64(len([]rune(t.Text)))
	r := draft.EmptyRect()
	corners := [4]draft.Point{
		t.Position,
		{X: t.Position.X + w, Y: t.Position.Y},
		{X: t.Position.X + w, Y: t.Position.Y + t.Height},
		{X: t.Position.X, Y: t.Position.Y + t.Height},
	}
	rad := Radians(t.Rotation)
	for _, c := range corners {
		if t.Rotation != 0 {
			c = c.RotateAround(t.Position, rad)
		}
		r = r.UnionPoint(c)
	}
	return r
}

func (t Text) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("text %s: empty text: %w", t.ID, ErrInvalidGeometry)
	}
	if t.Height <= 0 {
		return fmt.Errorf("text %s: height %v: %w", t.ID, t.Height, ErrInvalidGeometry)
	}
	return nil
}

// AngleMeasurement marks the angle at Vertex between the rays toward
// Point1 and Point2. Angle is the measured interior angle in degrees,
// in [0, 180].
type AngleMeasurement struct {
	Base
	Vertex, Point1, Point2 draft.Point
	Angle                  float64
}

func (m AngleMeasurement) Kind() Kind   { return KindAngle }
func (m AngleMeasurement) Common() Base { return m.Base }
func (m AngleMeasurement) WithCommon(b Base) Entity {
	m.Base = b
	return m
}
func (m AngleMeasurement) isEntity() {}

func (m AngleMeasurement) Bounds() draft.Rect {
	r := draft.EmptyRect()
	r = r.UnionPoint(m.Vertex)
	r = r.UnionPoint(m.Point1)
	r = r.UnionPoint(m.Point2)
	return r
}

func (m AngleMeasurement) Validate() error {
	if m.Vertex.Distance(m.Point1) == 0 || m.Vertex.Distance(m.Point2) == 0 {
		return fmt.Errorf("angle %s: ray endpoint coincides with vertex: %w",
			m.ID, ErrInvalidGeometry)
	}
	return nil
}
