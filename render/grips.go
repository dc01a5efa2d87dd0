package render

import (
	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
	"github.com/draftview/draft/grip"
)

// Grip geometry and application per kind. Each move function touches only
// the geometry field(s) owned by the dragged grip, so one drag gesture
// maps to one well-scoped entity edit.

func gripsLine(e entity.Entity) []grip.Grip {
	l := e.(entity.Line)
	id := l.ID
	return []grip.Grip{
		{EntityID: id, Type: grip.Vertex, Index: 0, Position: l.Start},
		{EntityID: id, Type: grip.Vertex, Index: 1, Position: l.End},
		{EntityID: id, Type: grip.Midpoint, Index: 0, Position: l.Midpoint()},
	}
}

func moveLine(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	l := e.(entity.Line)
	switch g.Type {
	case grip.Vertex:
		switch g.Index {
		case 0:
			l.Start = p
		case 1:
			l.End = p
		default:
			return e, false
		}
	case grip.Midpoint:
		delta := p.Sub(l.Midpoint())
		l.Start = l.Start.Add(delta)
		l.End = l.End.Add(delta)
	default:
		return e, false
	}
	return l, true
}

func gripsPolyline(e entity.Entity) []grip.Grip {
	pl := e.(entity.Polyline)
	id := pl.ID
	grips := make([]grip.Grip, 0, 2*len(pl.Vertices))
	for i, v := range pl.Vertices {
		grips = append(grips, grip.Grip{EntityID: id, Type: grip.Vertex, Index: i, Position: v})
	}
	for i, seg := range pl.Segments() {
		grips = append(grips, grip.Grip{
			EntityID: id, Type: grip.Midpoint, Index: i, Position: seg[0].Mid(seg[1]),
		})
	}
	return grips
}

func movePolyline(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	pl := e.(entity.Polyline)
	n := len(pl.Vertices)
	switch g.Type {
	case grip.Vertex:
		if g.Index < 0 || g.Index >= n {
			return e, false
		}
		verts := pl.CloneVertices()
		verts[g.Index] = p
		pl.Vertices = verts
	case grip.Midpoint:
		segs := pl.Segments()
		if g.Index < 0 || g.Index >= len(segs) {
			return e, false
		}
		i := g.Index
		j := (i + 1) % n
		delta := p.Sub(segs[i][0].Mid(segs[i][1]))
		verts := pl.CloneVertices()
		verts[i] = verts[i].Add(delta)
		verts[j] = verts[j].Add(delta)
		pl.Vertices = verts
	default:
		return e, false
	}
	return pl, true
}

func gripsCircle(e entity.Entity) []grip.Grip {
	c := e.(entity.Circle)
	id := c.ID
	grips := []grip.Grip{
		{EntityID: id, Type: grip.Center, Index: 0, Position: c.Center},
	}
	for i, deg := range [4]float64{0, 90, 180, 270} {
		grips = append(grips, grip.Grip{
			EntityID: id, Type: grip.Quadrant, Index: i,
			Position: c.Center.Polar(c.Radius, entity.Radians(deg)),
		})
	}
	return grips
}

func moveCircle(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	c := e.(entity.Circle)
	switch g.Type {
	case grip.Center:
		c.Center = p
	case grip.Quadrant:
		r := p.Distance(c.Center)
		if r <= 0 {
			return e, false
		}
		c.Radius = r
	default:
		return e, false
	}
	return c, true
}

func gripsArc(e entity.Entity) []grip.Grip {
	a := e.(entity.Arc)
	id := a.ID
	return []grip.Grip{
		{EntityID: id, Type: grip.Center, Index: 0, Position: a.Center},
		{EntityID: id, Type: grip.Vertex, Index: 0, Position: a.StartPoint()},
		{EntityID: id, Type: grip.Vertex, Index: 1, Position: a.EndPoint()},
		{EntityID: id, Type: grip.Midpoint, Index: 0, Position: a.MidPoint()},
	}
}

func moveArc(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	a := e.(entity.Arc)
	switch g.Type {
	case grip.Center:
		a.Center = p
	case grip.Vertex:
		// Endpoint grips re-aim the angle; the radius is owned by the
		// mid-arc grip.
		deg := entity.NormalizeDeg(entity.Degrees(a.Center.AngleTo(p)))
		switch g.Index {
		case 0:
			a.StartAngle = deg
		case 1:
			a.EndAngle = deg
		default:
			return e, false
		}
	case grip.Midpoint:
		r := p.Distance(a.Center)
		if r <= 0 {
			return e, false
		}
		a.Radius = r
	default:
		return e, false
	}
	return a, true
}

func gripsRectangle(e entity.Entity) []grip.Grip {
	r := e.(entity.Rectangle)
	id := r.ID
	corners := r.Corners()
	grips := make([]grip.Grip, 0, 8)
	for i, c := range corners {
		grips = append(grips, grip.Grip{EntityID: id, Type: grip.Vertex, Index: i, Position: c})
	}
	for i := range corners {
		next := corners[(i+1)%len(corners)]
		grips = append(grips, grip.Grip{
			EntityID: id, Type: grip.Midpoint, Index: i, Position: corners[i].Mid(next),
		})
	}
	return grips
}

func moveRectangle(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	r := e.(entity.Rectangle)
	box := draft.RectFromPoints(r.Corner1, r.Corner2)
	// Work in the rectangle's unrotated frame.
	if r.Rotation != 0 {
		p = p.RotateAround(box.Center(), -entity.Radians(r.Rotation))
	}
	switch g.Type {
	case grip.Vertex:
		switch g.Index {
		case 0:
			box.MinX, box.MinY = p.X, p.Y
		case 1:
			box.MaxX, box.MinY = p.X, p.Y
		case 2:
			box.MaxX, box.MaxY = p.X, p.Y
		case 3:
			box.MinX, box.MaxY = p.X, p.Y
		default:
			return e, false
		}
	case grip.Midpoint:
		switch g.Index {
		case 0:
			box.MinY = p.Y
		case 1:
			box.MaxX = p.X
		case 2:
			box.MaxY = p.Y
		case 3:
			box.MinX = p.X
		default:
			return e, false
		}
	default:
		return e, false
	}
	r.Corner1 = draft.Pt(box.MinX, box.MinY)
	r.Corner2 = draft.Pt(box.MaxX, box.MaxY)
	return r, true
}

func gripsText(e entity.Entity) []grip.Grip {
	t := e.(entity.Text)
	return []grip.Grip{
		{EntityID: t.ID, Type: grip.Vertex, Index: 0, Position: t.Position},
	}
}

func moveText(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	t := e.(entity.Text)
	if g.Type != grip.Vertex {
		return e, false
	}
	t.Position = p
	return t, true
}

func gripsAngle(e entity.Entity) []grip.Grip {
	m := e.(entity.AngleMeasurement)
	id := m.ID
	return []grip.Grip{
		{EntityID: id, Type: grip.Vertex, Index: 0, Position: m.Vertex},
		{EntityID: id, Type: grip.Vertex, Index: 1, Position: m.Point1},
		{EntityID: id, Type: grip.Vertex, Index: 2, Position: m.Point2},
	}
}

func moveAngle(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	m := e.(entity.AngleMeasurement)
	if g.Type != grip.Vertex {
		return e, false
	}
	switch g.Index {
	case 0:
		m.Vertex = p
	case 1:
		m.Point1 = p
	case 2:
		m.Point2 = p
	default:
		return e, false
	}
	m.Angle = entity.InteriorAngle(m.Vertex, m.Point1, m.Point2)
	return m, true
}
