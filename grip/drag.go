package grip

import (
	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
)

// MoveFunc applies a grip displacement to an entity, returning the edited
// entity. It must touch only the geometry fields owned by the grip (a
// line's start grip updates only Start). ok=false means the entity kind
// does not support the grip, leaving the entity unchanged.
//
// The per-kind implementation lives in the render package's dispatch table;
// it is injected here so the drag session stays free of kind switches.
type MoveFunc func(e entity.Entity, g Grip, p draft.Point) (entity.Entity, bool)

// Drag is one grip drag gesture: Begin on grab, Update per pointer move,
// then Commit or Cancel on release. Update returns a live preview entity;
// nothing is written to the scene until the caller commits the single
// entity returned by Commit, so undo history captures one step per
// gesture rather than one per pointer move.
type Drag struct {
	original entity.Entity
	current  entity.Entity
	grip     Grip
	move     MoveFunc
	active   bool
	dirty    bool
}

// Begin starts a drag of the given grip on the given entity.
func Begin(e entity.Entity, g Grip, move MoveFunc) *Drag {
	g.State = Hot
	return &Drag{
		original: e,
		current:  e,
		grip:     g,
		move:     move,
		active:   true,
	}
}

// Active reports whether the gesture is still in progress.
func (d *Drag) Active() bool { return d.active }

// Grip returns the grabbed grip, tracking the dragged position.
func (d *Drag) Grip() Grip { return d.grip }

// Update moves the grip to the given world point and returns the edited
// entity for rubber-band preview. Repeated calls with the same point are
// idempotent. After Commit or Cancel, Update returns the settled entity
// unchanged.
func (d *Drag) Update(p draft.Point) entity.Entity {
	if !d.active {
		return d.current
	}
	edited, ok := d.move(d.original, d.grip, p)
	if !ok {
		return d.current
	}
	d.current = edited
	d.grip.Position = p
	d.dirty = true
	return d.current
}

// Commit ends the gesture and returns the final edited entity, exactly
// once per gesture. ok=false when nothing changed (no Update calls, or the
// drag was already settled); the caller then skips the scene write.
func (d *Drag) Commit() (entity.Entity, bool) {
	if !d.active {
		return d.current, false
	}
	d.active = false
	d.grip.State = Cold
	return d.current, d.dirty
}

// Cancel ends the gesture and returns the original entity untouched.
func (d *Drag) Cancel() entity.Entity {
	d.active = false
	d.grip.State = Cold
	d.current = d.original
	return d.original
}
