package render

import "github.com/draftview/draft"

// OpKind names a recorded painter call.
type OpKind string

const (
	OpLines   OpKind = "lines"
	OpCircle  OpKind = "circle"
	OpArc     OpKind = "arc"
	OpPolygon OpKind = "polygon"
	OpDisc    OpKind = "disc"
	OpText    OpKind = "text"
)

// Op is one recorded painter call with its arguments.
type Op struct {
	Kind   OpKind
	Pts    []draft.Point
	Center draft.Point
	Radius float64
	Start  float64
	Sweep  float64
	Closed bool
	Style  Style
	Color  draft.RGBA
	Text   string
}

// Recorder is a Painter that records calls instead of painting. Tests use
// it to assert draw order, styles, and which entities reached the surface.
type Recorder struct {
	Ops []Op
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// OpsOf returns the recorded operations of one kind, in order.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) StrokeLines(pts []draft.Point, closed bool, style Style) {
	cp := make([]draft.Point, len(pts))
	copy(cp, pts)
	r.Ops = append(r.Ops, Op{Kind: OpLines, Pts: cp, Closed: closed, Style: style})
}

func (r *Recorder) StrokeCircle(center draft.Point, radius float64, style Style) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Center: center, Radius: radius, Style: style})
}

func (r *Recorder) StrokeArc(center draft.Point, radius, startRad, sweepRad float64, style Style) {
	r.Ops = append(r.Ops, Op{
		Kind: OpArc, Center: center, Radius: radius,
		Start: startRad, Sweep: sweepRad, Style: style,
	})
}

func (r *Recorder) FillPolygon(pts []draft.Point, color draft.RGBA) {
	cp := make([]draft.Point, len(pts))
	copy(cp, pts)
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Pts: cp, Color: color})
}

func (r *Recorder) FillCircle(center draft.Point, radius float64, color draft.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpDisc, Center: center, Radius: radius, Color: color})
}

func (r *Recorder) Text(pos draft.Point, s string, height, rotation float64, color draft.RGBA) {
	r.Ops = append(r.Ops, Op{
		Kind: OpText, Pts: []draft.Point{pos}, Text: s,
		Radius: height, Start: rotation, Color: color,
	})
}

var _ Painter = (*Recorder)(nil)
