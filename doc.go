// Package draft is the core of a 2D vector drawing surface: an engine for
// visualizing and editing a scene of geometric entities (lines, polylines,
// circles, arcs, rectangles, text, angle measurements) organized into layers.
//
// The root package holds the shared geometry primitives and the view
// transform that maps between world space (the model's own Y-up coordinate
// system) and screen space (Y-down viewport pixels) under pan and zoom.
// Everything else lives in subpackages:
//
//   - entity: the closed set of entity variants and layer definitions
//   - scene: the immutable scene value and its pure update operations
//   - render: per-kind render/hit-test dispatch and the frame pipeline
//   - pick: point and marquee selection
//   - drawing: the multi-step tool state machine
//   - grip: direct-manipulation grip editing
//
// The engine is single-threaded and event-driven. The host owns the
// authoritative Scene reference; every mutation here produces a new Scene
// value, so the host can detect change by reference comparison and readers
// never observe a half-updated scene.
//
// By default the package produces no log output. Call SetLogger to enable
// diagnostics.
package draft
