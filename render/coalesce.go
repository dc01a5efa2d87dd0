package render

import "github.com/draftview/draft"

// Coalescer serializes render passes for one view. The engine is
// single-threaded and event-driven: only one pass may be in flight, and a
// re-render request arriving mid-frame collapses into exactly one trailing
// pass rather than stacking.
//
// Usage:
//
//	if view.coalescer.Request() {
//		renderOnce()
//		for view.coalescer.Finish() {
//			renderOnce()
//		}
//	}
type Coalescer struct {
	inFlight bool
	pending  bool
}

// Request records a render request. It returns true when the caller
// should start a pass now; false means a pass is already in flight and
// the request has been coalesced into the trailing pass.
func (c *Coalescer) Request() bool {
	if c.inFlight {
		c.pending = true
		return false
	}
	c.inFlight = true
	return true
}

// Finish marks the current pass complete. It returns true when a
// coalesced request arrived mid-frame, in which case the caller runs
// exactly one more pass (and calls Finish again after it).
func (c *Coalescer) Finish() bool {
	if c.pending {
		c.pending = false
		return true
	}
	c.inFlight = false
	return false
}

// MoveThrottle rate-limits pointer-move handling for hover and snap
// recomputation: a move is accepted only after the pointer has travelled
// at least MinDelta screen pixels since the last accepted move. This is a
// cost bound on large scenes, not a correctness rule.
type MoveThrottle struct {
	// MinDelta is the minimum screen-pixel travel between accepted
	// moves. Zero accepts every move.
	MinDelta float64

	last    draft.Point
	primed  bool
}

// Allow reports whether the move to the given screen position should be
// processed, and records it when accepted. The first move is always
// accepted.
func (t *MoveThrottle) Allow(p draft.Point) bool {
	if t.primed && p.Distance(t.last) < t.MinDelta {
		return false
	}
	t.last = p
	t.primed = true
	return true
}

// Reset forgets the last accepted position, so the next move is always
// accepted. Call on tool or view changes.
func (t *MoveThrottle) Reset() {
	t.primed = false
}
