package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
)

// Each render strategy paints in three ordered phases:
//
//  1. geometry stroke/fill through the transformed points
//  2. measurement annotation, gated by Config.ShowMeasurements
//  3. decoration markers, gated by Config.ShowDecorations
//
// Phases 2 and 3 return early when their flag is off, so a disabled phase
// costs nothing and never draws.

func renderLine(env Env, e entity.Entity) {
	l := e.(entity.Line)
	a, b := env.pt(l.Start), env.pt(l.End)
	env.Painter.StrokeLines([]draft.Point{a, b}, false, env.Style)

	if env.Config.ShowMeasurements {
		annotate(env, a.Mid(b), fmtFloat(l.Length(), env.Config.Precision))
	}
	if env.Config.ShowDecorations {
		marker(env, a)
		marker(env, b)
	}
}

func renderPolyline(env Env, e entity.Entity) {
	p := e.(entity.Polyline)
	pts := env.pts(p.Vertices)
	env.Painter.StrokeLines(pts, p.Closed, env.Style)

	if env.Config.ShowMeasurements {
		total := 0.0
		for _, seg := range p.Segments() {
			total += seg[0].Distance(seg[1])
		}
		annotate(env, env.pt(p.Bounds().Center()), fmtFloat(total, env.Config.Precision))
	}
	if env.Config.ShowDecorations {
		for _, pt := range pts {
			marker(env, pt)
		}
	}
}

func renderCircle(env Env, e entity.Entity) {
	c := e.(entity.Circle)
	center := env.pt(c.Center)
	env.Painter.StrokeCircle(center, env.px(c.Radius), env.Style)

	if env.Config.ShowMeasurements {
		annotate(env, center, "R "+fmtFloat(c.Radius, env.Config.Precision))
	}
	if env.Config.ShowDecorations {
		cross(env, center)
	}
}

func renderArc(env Env, e entity.Entity) {
	a := e.(entity.Arc)
	center := env.pt(a.Center)
	env.Painter.StrokeArc(center, env.px(a.Radius),
		entity.Radians(a.StartAngle), entity.Radians(a.Sweep()), env.Style)

	if env.Config.ShowMeasurements {
		// Label just outside the sweep midpoint, away from the center.
		mid := a.MidPoint()
		dir := mid.Sub(a.Center).Normalize()
		label := a.Center.Add(dir.Mul(a.Radius * 1.15))
		annotate(env, env.pt(label), fmtFloat(a.Sweep(), env.Config.Precision)+"°")
	}
	if env.Config.ShowDecorations {
		cross(env, center)
		marker(env, env.pt(a.StartPoint()))
		marker(env, env.pt(a.EndPoint()))
	}
}

func renderRectangle(env Env, e entity.Entity) {
	r := e.(entity.Rectangle)
	corners := r.Corners()
	pts := env.pts(corners[:])
	env.Painter.StrokeLines(pts, true, env.Style)

	if env.Config.ShowMeasurements {
		w := r.Corner1.Sub(draft.Pt(r.Corner2.X, r.Corner1.Y)).Length()
		h := r.Corner1.Sub(draft.Pt(r.Corner1.X, r.Corner2.Y)).Length()
		label := fmt.Sprintf("%s × %s",
			fmtFloat(w, env.Config.Precision), fmtFloat(h, env.Config.Precision))
		annotate(env, env.pt(r.Bounds().Center()), label)
	}
	if env.Config.ShowDecorations {
		for _, pt := range pts {
			marker(env, pt)
		}
	}
}

func renderText(env Env, e entity.Entity) {
	t := e.(entity.Text)
	env.Painter.Text(env.pt(t.Position), t.Text, env.px(t.Height),
		entity.Radians(t.Rotation), env.Style.Color)

	if env.Config.ShowDecorations {
		marker(env, env.pt(t.Position))
	}
}

func renderAngle(env Env, e entity.Entity) {
	m := e.(entity.AngleMeasurement)
	v := env.pt(m.Vertex)
	p1 := env.pt(m.Point1)
	p2 := env.pt(m.Point2)
	env.Painter.StrokeLines([]draft.Point{p1, v}, false, env.Style)
	env.Painter.StrokeLines([]draft.Point{v, p2}, false, env.Style)

	// Indicator arc at a fraction of the shorter ray, swept through the
	// interior angle.
	r1 := m.Vertex.Distance(m.Point1)
	r2 := m.Vertex.Distance(m.Point2)
	radius := math.Min(r1, r2) * 0.3
	start, sweep := interiorSweep(m)
	env.Painter.StrokeArc(v, env.px(radius), start, sweep, env.Style)

	if env.Config.ShowMeasurements {
		angle := m.Angle
		if angle == 0 {
			angle = entity.InteriorAngle(m.Vertex, m.Point1, m.Point2)
		}
		mid := m.Vertex.Polar(radius*1.6, start+sweep/2)
		annotate(env, env.pt(mid), fmtFloat(angle, env.Config.Precision)+"°")
	}
	if env.Config.ShowDecorations {
		marker(env, v)
	}
}

// interiorSweep returns the start angle and counterclockwise sweep (both
// radians, world orientation) of the shorter angle between the
// measurement's rays.
func interiorSweep(m entity.AngleMeasurement) (start, sweep float64) {
	a1 := m.Vertex.AngleTo(m.Point1)
	a2 := m.Vertex.AngleTo(m.Point2)
	sweep = a2 - a1
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	if sweep > math.Pi {
		// Shorter way runs from a2 up to a1.
		return a2, 2*math.Pi - sweep
	}
	return a1, sweep
}

// annotate draws measurement text slightly above the given screen point.
func annotate(env Env, at draft.Point, s string) {
	pos := draft.Pt(at.X+4, at.Y-4)
	env.Painter.Text(pos, s, env.Config.AnnotationHeight, 0, env.Config.Palette.Annotation)
}

// marker draws a small square decoration at a screen point.
func marker(env Env, at draft.Point) {
	h := env.Config.GripSize
	env.Painter.FillPolygon([]draft.Point{
		{X: at.X - h, Y: at.Y - h},
		{X: at.X + h, Y: at.Y - h},
		{X: at.X + h, Y: at.Y + h},
		{X: at.X - h, Y: at.Y + h},
	}, env.Style.Color)
}

// cross draws a center cross decoration at a screen point.
func cross(env Env, at draft.Point) {
	h := env.Config.GripSize * 1.5
	s := Style{Color: env.Style.Color, Width: 1}
	env.Painter.StrokeLines([]draft.Point{{X: at.X - h, Y: at.Y}, {X: at.X + h, Y: at.Y}}, false, s)
	env.Painter.StrokeLines([]draft.Point{{X: at.X, Y: at.Y - h}, {X: at.X, Y: at.Y + h}}, false, s)
}

func fmtFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
