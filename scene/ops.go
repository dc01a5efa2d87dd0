package scene

import (
	"fmt"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
)

// AddEntity appends an entity to the end of the paint order. It fails with
// ErrDuplicateID if the id is already present and with
// entity.ErrInvalidGeometry if the geometry does not validate; in both
// cases the input scene is returned unchanged. An unresolvable layer
// reference is recovered by reassigning the entity to the default layer.
func (s Scene) AddEntity(e entity.Entity) (Scene, error) {
	b := e.Common()
	if b.ID == "" {
		return s, fmt.Errorf("entity without id: %w", entity.ErrInvalidGeometry)
	}
	if _, exists := s.Find(b.ID); exists {
		return s, fmt.Errorf("entity %s: %w", b.ID, ErrDuplicateID)
	}
	if err := e.Validate(); err != nil {
		return s, err
	}
	if b.Layer != "" {
		if _, ok := s.Layers[b.Layer]; !ok {
			draft.Logger().Warn("entity references unknown layer, reassigned to default",
				"entity", b.ID, "layer", b.Layer)
			b.Layer = entity.DefaultLayerName
			e = e.WithCommon(b)
		}
	}
	out := s
	out.Entities = append(s.cloneEntities(), e)
	return out, nil
}

// Update applies patch to the entity with the given id and returns the new
// scene. An absent id is a no-op: the unchanged scene and ok=false. A patch
// that changes the id or produces invalid geometry fails with the scene
// unchanged.
func (s Scene) Update(id string, patch func(entity.Entity) entity.Entity) (Scene, bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false, nil
	}
	patched := patch(s.Entities[i])
	if patched == nil {
		return s, false, fmt.Errorf("entity %s: patch returned nil: %w",
			id, entity.ErrInvalidGeometry)
	}
	if patched.Common().ID != id {
		return s, false, fmt.Errorf("entity %s: patch changed id to %s: %w",
			id, patched.Common().ID, ErrDuplicateID)
	}
	if err := patched.Validate(); err != nil {
		return s, false, err
	}
	out := s
	out.Entities = s.cloneEntities()
	out.Entities[i] = patched
	return out, true, nil
}

// Replace swaps the stored entity carrying the same id as e. It is the
// commit path for grip drags: one call, one atomic entity update.
func (s Scene) Replace(e entity.Entity) (Scene, bool, error) {
	return s.Update(e.Common().ID, func(entity.Entity) entity.Entity { return e })
}

// Remove deletes the entity with the given id, reporting whether anything
// was removed.
func (s Scene) Remove(id string) (Scene, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}
	out := s
	out.Entities = make([]entity.Entity, 0, len(s.Entities)-1)
	out.Entities = append(out.Entities, s.Entities[:i]...)
	out.Entities = append(out.Entities, s.Entities[i+1:]...)
	return out, true
}

// BringToFront moves the entity to the end of the paint order (topmost).
func (s Scene) BringToFront(id string) (Scene, bool) {
	return s.reorder(id, true)
}

// SendToBack moves the entity to the start of the paint order (bottommost).
func (s Scene) SendToBack(id string) (Scene, bool) {
	return s.reorder(id, false)
}

func (s Scene) reorder(id string, front bool) (Scene, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}
	e := s.Entities[i]
	rest := make([]entity.Entity, 0, len(s.Entities))
	rest = append(rest, s.Entities[:i]...)
	rest = append(rest, s.Entities[i+1:]...)
	out := s
	if front {
		out.Entities = append(rest, e)
	} else {
		out.Entities = append([]entity.Entity{e}, rest...)
	}
	return out, true
}
