// Package pick resolves screen gestures to entity ids: point picking,
// marquee region picking with window/crossing modes, and the selection set
// algebra.
package pick

import "sort"

// Set is a selection set of entity ids. Like the scene, it is treated as
// a value: operations return a new set so the host can detect change by
// reference and renderers never observe a half-updated selection.
type Set map[string]bool

// NewSet returns a selection set containing the given ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Contains reports membership. It satisfies the render package's
// Selection contract.
func (s Set) Contains(id string) bool { return s[id] }

// Len returns the number of selected entities.
func (s Set) Len() int { return len(s) }

// IDs returns the members in sorted order, for deterministic iteration.
func (s Set) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s Set) clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = true
	}
	return out
}

// Add returns the set with the ids included.
func (s Set) Add(ids ...string) Set {
	out := s.clone()
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// Remove returns the set with the ids excluded.
func (s Set) Remove(ids ...string) Set {
	out := s.clone()
	for _, id := range ids {
		delete(out, id)
	}
	return out
}

// Toggle returns the set with each id's membership flipped (XOR), the
// modifier-click behavior.
func (s Set) Toggle(ids ...string) Set {
	out := s.clone()
	for _, id := range ids {
		if out[id] {
			delete(out, id)
		} else {
			out[id] = true
		}
	}
	return out
}

// Click applies single-click selection semantics. A plain click replaces
// the selection with the hit entity, or clears it on a miss (empty id).
// With the modifier held, the hit toggles in and out and a miss leaves
// the selection alone.
func (s Set) Click(hitID string, modifier bool) Set {
	if modifier {
		if hitID == "" {
			return s
		}
		return s.Toggle(hitID)
	}
	if hitID == "" {
		return NewSet()
	}
	return NewSet(hitID)
}
