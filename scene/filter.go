package scene

import "github.com/draftview/draft/entity"

// FilterOptions selects a subset of a scene's entities, the contract used
// by export and host-side queries. Zero-value fields mean "no constraint".
type FilterOptions struct {
	// VisibleOnly keeps only entities whose entity and layer visibility
	// are both set.
	VisibleOnly bool

	// IncludeLocked keeps entities on locked layers; when false together
	// with VisibleOnly, locked layers are excluded.
	IncludeLocked bool

	// Layers restricts to the named layers when non-empty.
	Layers []string

	// IDs restricts to the given entity ids when non-empty.
	IDs []string
}

// Filter returns a scene containing only the entities matching the
// options, in their original paint order. The layer table and units carry
// over unchanged; bounds are recomputed for the subset.
func (s Scene) Filter(opts FilterOptions) Scene {
	layerSet := toSet(opts.Layers)
	idSet := toSet(opts.IDs)

	var kept []entity.Entity
	for _, e := range s.Entities {
		b := e.Common()
		if opts.VisibleOnly && !s.IsVisible(e) {
			continue
		}
		if opts.VisibleOnly && !opts.IncludeLocked && s.IsLocked(e) {
			continue
		}
		if layerSet != nil && !layerSet[b.Layer] {
			continue
		}
		if idSet != nil && !idSet[b.ID] {
			continue
		}
		kept = append(kept, e)
	}
	out := s
	out.Entities = kept
	return out.RecomputeBounds()
}

func toSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
