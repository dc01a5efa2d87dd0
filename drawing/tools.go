// Package drawing implements the multi-step tool state machine: it
// accumulates clicked points for the active tool, produces rubber-band
// preview entities, and commits exactly one finished entity per completed
// interaction.
package drawing

// Tool identifies a drawing tool. Fixed-arity tools auto-commit when
// their point count is reached; open-arity tools accumulate until an
// explicit Finish or Cancel.
type Tool string

const (
	ToolNone      Tool = ""
	ToolLine      Tool = "line"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolPolyline  Tool = "polyline"
	ToolPolygon   Tool = "polygon"
	ToolAngle     Tool = "angle"
)

// arity returns the number of points that completes the tool, or 0 for
// open-arity tools.
func (t Tool) arity() int {
	switch t {
	case ToolLine, ToolRectangle, ToolCircle:
		return 2
	case ToolAngle:
		return 3
	default:
		return 0
	}
}

// open reports whether the tool accumulates points until an explicit
// Finish.
func (t Tool) open() bool {
	return t == ToolPolyline || t == ToolPolygon
}

// valid reports whether the tool is one this machine can draw with.
func (t Tool) valid() bool {
	switch t {
	case ToolLine, ToolRectangle, ToolCircle, ToolPolyline, ToolPolygon, ToolAngle:
		return true
	}
	return false
}
