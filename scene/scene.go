// Package scene holds the immutable scene value: the ordered entity list,
// the layer table, and the cached bounds.
//
// A Scene is never mutated in place. Every operation returns a new Scene
// value that shares unchanged backing storage with its input, so the host
// state container can detect change by reference comparison and concurrent
// readers within one event turn never observe a half-updated scene.
package scene

import (
	"fmt"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
)

// Scene is the complete drawing model. Entity order is paint order
// (z-order): later entities paint on top.
type Scene struct {
	Entities []entity.Entity
	Layers   map[string]entity.Layer
	Bounds   draft.Rect
	Units    entity.Units
	Metadata map[string]string
}

// New returns an empty scene with the default layer and the given units.
func New(units entity.Units) Scene {
	return Scene{
		Layers: map[string]entity.Layer{
			entity.DefaultLayerName: entity.DefaultLayer(),
		},
		Units: units,
	}
}

// FromParts assembles a scene from imported entities and layers, the entry
// point for the host's import source. Entity ids must be unique and
// geometry must validate; entities on unknown layers are reassigned to the
// default layer. Bounds are computed here so the cached value starts valid.
func FromParts(entities []entity.Entity, layers []entity.Layer, units entity.Units) (Scene, error) {
	s := New(units)
	for _, l := range layers {
		if l.Name == "" {
			return Scene{}, fmt.Errorf("layer with empty name: %w", ErrUnknownLayer)
		}
		s.Layers[l.Name] = l
	}
	for _, e := range entities {
		var err error
		s, err = s.AddEntity(e)
		if err != nil {
			return Scene{}, fmt.Errorf("import entity %s: %w", e.Common().ID, err)
		}
	}
	return s.RecomputeBounds(), nil
}

// Find returns the entity with the given id.
func (s Scene) Find(id string) (entity.Entity, bool) {
	for _, e := range s.Entities {
		if e.Common().ID == id {
			return e, true
		}
	}
	return nil, false
}

// indexOf returns the position of the entity with the given id, or -1.
func (s Scene) indexOf(id string) int {
	for i, e := range s.Entities {
		if e.Common().ID == id {
			return i
		}
	}
	return -1
}

// LayerOf resolves an entity's layer, falling back to the default layer
// for empty or unknown references so a dangling reference never fails a
// paint or pick pass.
func (s Scene) LayerOf(e entity.Entity) entity.Layer {
	name := e.Common().Layer
	if name == "" {
		name = entity.DefaultLayerName
	}
	if l, ok := s.Layers[name]; ok {
		return l
	}
	draft.Logger().Warn("entity on unknown layer, using default",
		"entity", e.Common().ID, "layer", name)
	if l, ok := s.Layers[entity.DefaultLayerName]; ok {
		return l
	}
	return entity.DefaultLayer()
}

// IsVisible reports whether an entity should be painted and picked:
// the entity itself and its layer must both be visible.
func (s Scene) IsVisible(e entity.Entity) bool {
	return e.Common().Visible && s.LayerOf(e).Visible
}

// IsLocked reports whether an entity's layer is locked. Locked entities
// remain visible and pickable; the host gates editing on this flag.
func (s Scene) IsLocked(e entity.Entity) bool {
	return s.LayerOf(e).Locked
}

// EntitiesOnLayer returns the entities referencing the given layer, in
// paint order.
func (s Scene) EntitiesOnLayer(name string) []entity.Entity {
	var out []entity.Entity
	for _, e := range s.Entities {
		if e.Common().Layer == name {
			out = append(out, e)
		}
	}
	return out
}

// cloneEntities copies the entity slice for copy-on-write updates.
func (s Scene) cloneEntities() []entity.Entity {
	out := make([]entity.Entity, len(s.Entities))
	copy(out, s.Entities)
	return out
}

// cloneLayers copies the layer table for copy-on-write updates.
func (s Scene) cloneLayers() map[string]entity.Layer {
	out := make(map[string]entity.Layer, len(s.Layers))
	for k, v := range s.Layers {
		out[k] = v
	}
	return out
}
