package drawing

import (
	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
	"github.com/draftview/draft/scene"
)

// dupEpsilon is the world-unit distance below which a trailing point is
// considered a duplicate of its predecessor. Finish trims one such point
// so a terminating double-click does not register both a click and the
// terminator as vertices.
const dupEpsilon = 1e-6

// Snapper optionally corrects a world point before it is accumulated,
// e.g. to grid or object snap positions. A miss (ok=false) means "use the
// raw point". A nil Snapper disables snapping.
type Snapper interface {
	Snap(p draft.Point, scale float64) (draft.Point, bool)
}

// Option configures a Machine.
type Option func(*Machine)

// WithSnapper installs the snapping service.
func WithSnapper(s Snapper) Option {
	return func(m *Machine) { m.snapper = s }
}

// WithLayer sets the layer committed entities are placed on. Defaults to
// the scene's default layer.
func WithLayer(name string) Option {
	return func(m *Machine) { m.layer = name }
}

// WithColor sets the hex color stamped on committed entities. Empty means
// inherit the layer color.
func WithColor(hex string) Option {
	return func(m *Machine) { m.color = hex }
}

// Machine is the drawing state machine. It is a value: every transition
// returns a new Machine, and the caller supplies the current scene to the
// committing transitions, so no captured scene handle can go stale. The
// machine is the sole owner of point accumulation for the active tool
// run, and committing is its only write path into the scene.
type Machine struct {
	tool    Tool
	active  bool
	points  []draft.Point
	snapper Snapper
	layer   string
	color   string
}

// NewMachine returns an idle machine.
func NewMachine(opts ...Option) Machine {
	m := Machine{layer: entity.DefaultLayerName}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Tool returns the current tool.
func (m Machine) Tool() Tool { return m.tool }

// IsDrawing reports whether a drawing session is active.
func (m Machine) IsDrawing() bool { return m.active }

// Points returns a copy of the accumulated points.
func (m Machine) Points() []draft.Point {
	out := make([]draft.Point, len(m.points))
	copy(out, m.points)
	return out
}

// Start activates the given tool with an empty point list, from any prior
// state. Switching tools mid-draw explicitly discards the in-progress
// points; they are never merged into the new session. ToolNone
// deactivates drawing entirely.
func (m Machine) Start(tool Tool) Machine {
	if m.active && len(m.points) > 0 {
		draft.Logger().Debug("tool switch discarded in-progress points",
			"tool", m.tool, "points", len(m.points))
	}
	m.points = nil
	if !tool.valid() {
		m.tool = ToolNone
		m.active = false
		return m
	}
	m.tool = tool
	m.active = true
	return m
}

// Cancel discards the in-progress session and returns to idle, emitting
// no entity. The tool stays selected.
func (m Machine) Cancel() Machine {
	m.points = nil
	m.active = false
	return m
}

// AddPoint appends a clicked world point to the active session. For
// fixed-arity tools reaching their point count, the finished entity is
// committed into the scene and the machine returns to idle; otherwise the
// machine stays active. AddPoint while idle is a protocol violation that
// can legitimately arise from a stale event racing a tool switch, so it
// is a logged no-op rather than an error.
//
// The returned scene is the input scene unless a commit happened; the
// returned entity is non-nil only on commit. A commit that fails
// validation (e.g. a zero-radius circle) leaves both the scene and the
// session unchanged and surfaces the error.
func (m Machine) AddPoint(scn scene.Scene, p draft.Point, scale float64) (Machine, scene.Scene, entity.Entity, error) {
	if !m.active {
		draft.Logger().Debug("AddPoint while idle ignored", "tool", m.tool)
		return m, scn, nil, nil
	}
	p = m.snap(p, scale)

	points := make([]draft.Point, len(m.points), len(m.points)+1)
	copy(points, m.points)
	points = append(points, p)

	if arity := m.tool.arity(); arity > 0 && len(points) >= arity {
		e, err := m.build(points)
		if err != nil {
			return m, scn, nil, err
		}
		out, err := scn.AddEntity(e)
		if err != nil {
			return m, scn, nil, err
		}
		m.points = nil
		m.active = false
		return m, out, e, nil
	}

	m.points = points
	return m, scn, nil, nil
}

// Finish completes an open-arity session. With fewer than two points it
// is a no-op: no entity is emitted and the session stays active. A
// trailing point within dupEpsilon of its predecessor is trimmed first.
// On success the machine returns to idle and the committed entity is
// returned along with the new scene.
func (m Machine) Finish(scn scene.Scene) (Machine, scene.Scene, entity.Entity, error) {
	if !m.active || !m.tool.open() {
		return m, scn, nil, nil
	}
	points := m.trimmedPoints()
	if len(points) < 2 {
		return m, scn, nil, nil
	}
	e, err := m.build(points)
	if err != nil {
		return m, scn, nil, err
	}
	out, err := scn.AddEntity(e)
	if err != nil {
		return m, scn, nil, err
	}
	m.points = nil
	m.active = false
	return m, out, e, nil
}

// Preview returns the rubber-band entity for the current session and
// mouse position, or nil when there is nothing to show. It reads the
// accumulated points without mutating them: repeated calls with the same
// mouse point return equal previews and never change the session.
func (m Machine) Preview(mouse draft.Point, scale float64) entity.Entity {
	if !m.active || len(m.points) == 0 {
		return nil
	}
	mouse = m.snap(mouse, scale)
	base := m.previewBase()

	switch m.tool {
	case ToolLine:
		return entity.Line{Base: base, Start: m.points[0], End: mouse}
	case ToolRectangle:
		return entity.Rectangle{Base: base, Corner1: m.points[0], Corner2: mouse}
	case ToolCircle:
		return entity.Circle{Base: base, Center: m.points[0], Radius: m.points[0].Distance(mouse)}
	case ToolPolyline, ToolPolygon:
		verts := make([]draft.Point, len(m.points), len(m.points)+1)
		copy(verts, m.points)
		verts = append(verts, mouse)
		return entity.Polyline{Base: base, Vertices: verts, Closed: m.tool == ToolPolygon}
	case ToolAngle:
		if len(m.points) == 1 {
			return entity.Line{Base: base, Start: m.points[0], End: mouse}
		}
		return entity.AngleMeasurement{
			Base: base, Vertex: m.points[0], Point1: m.points[1], Point2: mouse,
			Angle: entity.InteriorAngle(m.points[0], m.points[1], mouse),
		}
	}
	return nil
}

// build constructs the finished entity for the tool from its points.
func (m Machine) build(points []draft.Point) (entity.Entity, error) {
	base := entity.Base{
		ID:      entity.NewID(),
		Layer:   m.layer,
		Color:   m.color,
		Visible: true,
	}
	var e entity.Entity
	switch m.tool {
	case ToolLine:
		e = entity.Line{Base: base, Start: points[0], End: points[1]}
	case ToolRectangle:
		e = entity.Rectangle{Base: base, Corner1: points[0], Corner2: points[1]}
	case ToolCircle:
		e = entity.Circle{Base: base, Center: points[0], Radius: points[0].Distance(points[1])}
	case ToolPolyline:
		e = entity.Polyline{Base: base, Vertices: points}
	case ToolPolygon:
		e = entity.Polyline{Base: base, Vertices: points, Closed: true}
	case ToolAngle:
		e = entity.AngleMeasurement{
			Base: base, Vertex: points[0], Point1: points[1], Point2: points[2],
			Angle: entity.InteriorAngle(points[0], points[1], points[2]),
		}
	default:
		return nil, entity.ErrInvalidGeometry
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// trimmedPoints returns the accumulated points with one trailing
// near-duplicate removed.
func (m Machine) trimmedPoints() []draft.Point {
	n := len(m.points)
	if n >= 2 && m.points[n-1].Distance(m.points[n-2]) < dupEpsilon {
		n--
	}
	out := make([]draft.Point, n)
	copy(out, m.points[:n])
	return out
}

// previewBase is the shared Base for preview entities. The fixed id keeps
// previews out of any id-keyed bookkeeping.
func (m Machine) previewBase() entity.Base {
	return entity.Base{ID: "__preview__", Layer: m.layer, Color: m.color, Visible: true}
}

// snap applies the snapping service, falling back to the raw point when
// no snapper is installed or it reports a miss.
func (m Machine) snap(p draft.Point, scale float64) draft.Point {
	if m.snapper == nil {
		return p
	}
	if snapped, ok := m.snapper.Snap(p, scale); ok {
		return snapped
	}
	return p
}
