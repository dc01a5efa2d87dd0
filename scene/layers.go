package scene

import (
	"fmt"

	"github.com/draftview/draft/entity"
)

// AddLayer adds a new layer definition. The name must be unique.
func (s Scene) AddLayer(l entity.Layer) (Scene, error) {
	if l.Name == "" {
		return s, fmt.Errorf("empty layer name: %w", ErrUnknownLayer)
	}
	if _, exists := s.Layers[l.Name]; exists {
		return s, fmt.Errorf("layer %q: %w", l.Name, ErrLayerExists)
	}
	out := s
	out.Layers = s.cloneLayers()
	out.Layers[l.Name] = l
	return out, nil
}

// RenameLayer changes a layer's name and rewrites every entity referencing
// the old name in the same update, so no entity is ever left pointing at a
// layer that no longer exists. Renaming onto an existing layer fails; use
// MergeLayers for that.
func (s Scene) RenameLayer(oldName, newName string) (Scene, error) {
	if oldName == entity.DefaultLayerName {
		return s, ErrDefaultLayer
	}
	l, ok := s.Layers[oldName]
	if !ok {
		return s, fmt.Errorf("layer %q: %w", oldName, ErrUnknownLayer)
	}
	if newName == "" {
		return s, fmt.Errorf("empty layer name: %w", ErrUnknownLayer)
	}
	if _, exists := s.Layers[newName]; exists {
		return s, fmt.Errorf("layer %q: %w", newName, ErrLayerExists)
	}
	out := s
	out.Layers = s.cloneLayers()
	delete(out.Layers, oldName)
	l.Name = newName
	out.Layers[newName] = l
	out.Entities = s.reassignEntities(oldName, newName)
	return out, nil
}

// MergeLayers moves every entity from src onto dst and removes src, as one
// atomic update. The dst layer's settings win.
func (s Scene) MergeLayers(src, dst string) (Scene, error) {
	if src == entity.DefaultLayerName {
		return s, ErrDefaultLayer
	}
	if _, ok := s.Layers[src]; !ok {
		return s, fmt.Errorf("layer %q: %w", src, ErrUnknownLayer)
	}
	if _, ok := s.Layers[dst]; !ok {
		return s, fmt.Errorf("layer %q: %w", dst, ErrUnknownLayer)
	}
	if src == dst {
		return s, nil
	}
	out := s
	out.Layers = s.cloneLayers()
	delete(out.Layers, src)
	out.Entities = s.reassignEntities(src, dst)
	return out, nil
}

// DeleteLayer removes a layer, reassigning its entities to the default
// layer in the same update. The default layer cannot be deleted.
func (s Scene) DeleteLayer(name string) (Scene, error) {
	if name == entity.DefaultLayerName {
		return s, ErrDefaultLayer
	}
	if _, ok := s.Layers[name]; !ok {
		return s, fmt.Errorf("layer %q: %w", name, ErrUnknownLayer)
	}
	out := s
	out.Layers = s.cloneLayers()
	delete(out.Layers, name)
	out.Entities = s.reassignEntities(name, entity.DefaultLayerName)
	return out, nil
}

// SetLayerVisible toggles a layer's visibility, reporting whether the
// layer exists.
func (s Scene) SetLayerVisible(name string, visible bool) (Scene, bool) {
	l, ok := s.Layers[name]
	if !ok {
		return s, false
	}
	l.Visible = visible
	out := s
	out.Layers = s.cloneLayers()
	out.Layers[name] = l
	return out, true
}

// SetLayerLocked toggles a layer's lock state, reporting whether the layer
// exists.
func (s Scene) SetLayerLocked(name string, locked bool) (Scene, bool) {
	l, ok := s.Layers[name]
	if !ok {
		return s, false
	}
	l.Locked = locked
	out := s
	out.Layers = s.cloneLayers()
	out.Layers[name] = l
	return out, true
}

// reassignEntities returns a new entity slice with every entity on layer
// from moved to layer to. Entities on other layers keep their values.
func (s Scene) reassignEntities(from, to string) []entity.Entity {
	out := s.cloneEntities()
	for i, e := range out {
		if e.Common().Layer == from {
			b := e.Common()
			b.Layer = to
			out[i] = e.WithCommon(b)
		}
	}
	return out
}
