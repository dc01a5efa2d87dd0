package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/draftview/draft"
)

// arcSegmentsPerRadian controls the flattening density for circles and
// arcs. 16 segments per radian keeps the chord error below a pixel for
// radii up to a few hundred pixels.
const arcSegmentsPerRadian = 16

// Raster is the reference software Painter. It rasterizes onto an RGBA
// image using golang.org/x/image/vector; strokes are flattened to filled
// quads, circles and arcs to chord fans. Text uses the fixed-metric basic
// font, adequate for annotations; a host surface with real typography can
// replace this painter wholesale.
type Raster struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewRaster creates a software painter with the given pixel dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Image returns the painted surface.
func (r *Raster) Image() *image.RGBA { return r.img }

// Clear fills the whole surface with the given color.
func (r *Raster) Clear(c draft.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

func (r *Raster) StrokeLines(pts []draft.Point, closed bool, style Style) {
	if len(pts) < 2 {
		return
	}
	segs := segments(pts, closed)
	if len(style.Dash) > 0 {
		segs = dashed(segs, style.Dash)
	}
	w := style.Width
	if w <= 0 {
		w = 1
	}
	for _, s := range segs {
		r.fillQuad(s[0], s[1], w, style.Color)
	}
}

func (r *Raster) StrokeCircle(center draft.Point, radius float64, style Style) {
	r.StrokeArc(center, radius, 0, 2*math.Pi, style)
}

func (r *Raster) StrokeArc(center draft.Point, radius, startRad, sweepRad float64, style Style) {
	if radius <= 0 || sweepRad <= 0 {
		return
	}
	n := int(math.Ceil(sweepRad * arcSegmentsPerRadian))
	if n < 4 {
		n = 4
	}
	pts := make([]draft.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := startRad + sweepRad*float64(i)/float64(n)
		// Screen space is Y-down; world angles run counterclockwise.
		pts = append(pts, draft.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y - radius*math.Sin(a),
		})
	}
	r.StrokeLines(pts, false, style)
}

func (r *Raster) FillPolygon(pts []draft.Point, color draft.RGBA) {
	if len(pts) < 3 {
		return
	}
	r.ras.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
	r.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.ras.LineTo(float32(p.X), float32(p.Y))
	}
	r.ras.ClosePath()
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(color.Color()), image.Point{})
}

func (r *Raster) FillCircle(center draft.Point, radius float64, color draft.RGBA) {
	if radius <= 0 {
		return
	}
	n := int(math.Ceil(2 * math.Pi * arcSegmentsPerRadian))
	pts := make([]draft.Point, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, draft.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	r.FillPolygon(pts, color)
}

// Text draws with the fixed-metric basic font. Height and rotation are
// accepted for interface compatibility but the face is fixed at 13px and
// labels draw unrotated; annotation text does not need more.
func (r *Raster) Text(pos draft.Point, s string, _, _ float64, color draft.RGBA) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(color.Color()),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(int(math.Round(pos.X))),
			Y: fixed.I(int(math.Round(pos.Y))),
		},
	}
	d.DrawString(s)
}

// fillQuad fills the rectangle of the given width centered on segment ab.
func (r *Raster) fillQuad(a, b draft.Point, width float64, color draft.RGBA) {
	dir := b.Sub(a)
	if dir.LengthSquared() == 0 {
		return
	}
	n := draft.Point{X: -dir.Y, Y: dir.X}.Normalize().Mul(width / 2)
	r.FillPolygon([]draft.Point{
		a.Add(n), b.Add(n), b.Sub(n), a.Sub(n),
	}, color)
}

// segments expands a point chain into start/end pairs.
func segments(pts []draft.Point, closed bool) [][2]draft.Point {
	out := make([][2]draft.Point, 0, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		out = append(out, [2]draft.Point{pts[i], pts[i+1]})
	}
	if closed && len(pts) > 2 {
		out = append(out, [2]draft.Point{pts[len(pts)-1], pts[0]})
	}
	return out
}

// dashed slices segments into an alternating on/off pattern, carrying the
// phase across segment boundaries so corners do not restart the pattern.
func dashed(segs [][2]draft.Point, pattern []float64) [][2]draft.Point {
	period := 0.0
	for _, d := range pattern {
		period += d
	}
	if period <= 0 {
		return segs
	}
	var out [][2]draft.Point
	phase := 0.0
	idx := 0 // index into pattern; even = on
	for _, s := range segs {
		a, b := s[0], s[1]
		length := a.Distance(b)
		pos := 0.0
		for pos < length {
			remain := pattern[idx] - phase
			step := math.Min(remain, length-pos)
			if idx%2 == 0 {
				p0 := a.Lerp(b, pos/length)
				p1 := a.Lerp(b, (pos+step)/length)
				out = append(out, [2]draft.Point{p0, p1})
			}
			pos += step
			phase += step
			if phase >= pattern[idx] {
				phase = 0
				idx = (idx + 1) % len(pattern)
			}
		}
	}
	return out
}

var _ Painter = (*Raster)(nil)
