// Package render draws a scene onto a 2D paint surface and answers
// geometric queries about entities: per-kind rendering, hit-testing, and
// grip geometry are dispatched through one strategy table keyed by the
// entity kind discriminant.
//
// Rendering is a pure function of (Scene, ViewTransform, Viewport,
// selection, Config): there is no hidden render state, and a Config value
// scopes flags like decoration markers to a single pass.
package render

import "github.com/draftview/draft"

// Style describes how a primitive is stroked or filled.
type Style struct {
	Color draft.RGBA

	// Width is the stroke width in screen pixels.
	Width float64

	// Dash is an on/off pattern in screen pixels; nil strokes solid.
	Dash []float64
}

// Painter is the 2D paint surface contract. All coordinates are screen
// pixels; the frame pipeline applies the view transform before calling in.
// Angles are in radians measured counterclockwise in world orientation
// (the painter accounts for the screen's flipped Y axis).
//
// The host supplies the real surface; Raster is the reference software
// implementation and Recorder captures calls for tests.
type Painter interface {
	// StrokeLines strokes the open polyline through pts; closed adds the
	// closing edge.
	StrokeLines(pts []draft.Point, closed bool, style Style)

	// StrokeCircle strokes a full circle.
	StrokeCircle(center draft.Point, radius float64, style Style)

	// StrokeArc strokes a circular arc from startRad sweeping ccw by
	// sweepRad (both radians, world orientation).
	StrokeArc(center draft.Point, radius, startRad, sweepRad float64, style Style)

	// FillPolygon fills the polygon through pts.
	FillPolygon(pts []draft.Point, color draft.RGBA)

	// FillCircle fills a disc, used for round grip and marker dots.
	FillCircle(center draft.Point, radius float64, color draft.RGBA)

	// Text draws a label anchored at pos (baseline-left), with height in
	// screen pixels and rotation in radians.
	Text(pos draft.Point, s string, height, rotation float64, color draft.RGBA)
}
