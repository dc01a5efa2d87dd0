package scene

import (
	"errors"
	"testing"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
)

func line(id, layer string) entity.Line {
	return entity.Line{
		Base:  entity.Base{ID: id, Layer: layer, Visible: true},
		Start: draft.Pt(0, 0), End: draft.Pt(10, 10),
	}
}

func mustAdd(t *testing.T, s Scene, e entity.Entity) Scene {
	t.Helper()
	out, err := s.AddEntity(e)
	if err != nil {
		t.Fatalf("AddEntity(%s): %v", e.Common().ID, err)
	}
	return out
}

func TestAddEntity(t *testing.T) {
	s := New(entity.Millimeters)

	s2 := mustAdd(t, s, line("a", ""))
	if len(s.Entities) != 0 {
		t.Error("input scene mutated by AddEntity")
	}
	if len(s2.Entities) != 1 {
		t.Fatalf("entity count = %d, want 1", len(s2.Entities))
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := s2.AddEntity(line("a", ""))
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("err = %v, want ErrDuplicateID", err)
		}
	})

	t.Run("invalid geometry rejected", func(t *testing.T) {
		bad := entity.Circle{Base: entity.Base{ID: "c"}, Radius: -1}
		out, err := s2.AddEntity(bad)
		if !errors.Is(err, entity.ErrInvalidGeometry) {
			t.Errorf("err = %v, want ErrInvalidGeometry", err)
		}
		if len(out.Entities) != len(s2.Entities) {
			t.Error("scene changed on failed add")
		}
	})

	t.Run("missing id rejected", func(t *testing.T) {
		_, err := s2.AddEntity(line("", ""))
		if err == nil {
			t.Error("entity without id accepted")
		}
	})

	t.Run("unknown layer falls back to default", func(t *testing.T) {
		out := mustAdd(t, s2, line("b", "no-such-layer"))
		e, _ := out.Find("b")
		if e.Common().Layer != entity.DefaultLayerName {
			t.Errorf("layer = %q, want default", e.Common().Layer)
		}
	})
}

func TestUpdate(t *testing.T) {
	s := mustAdd(t, New(entity.Millimeters), line("a", ""))

	t.Run("patches geometry", func(t *testing.T) {
		out, ok, err := s.Update("a", func(e entity.Entity) entity.Entity {
			l := e.(entity.Line)
			l.End = draft.Pt(99, 99)
			return l
		})
		if err != nil || !ok {
			t.Fatalf("Update: ok=%v err=%v", ok, err)
		}
		got, _ := out.Find("a")
		if got.(entity.Line).End != draft.Pt(99, 99) {
			t.Error("patch not applied")
		}
		orig, _ := s.Find("a")
		if orig.(entity.Line).End == draft.Pt(99, 99) {
			t.Error("input scene mutated")
		}
	})

	t.Run("absent id is a reported no-op", func(t *testing.T) {
		out, ok, err := s.Update("ghost", func(e entity.Entity) entity.Entity { return e })
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if ok {
			t.Error("ok=true for absent id")
		}
		if len(out.Entities) != len(s.Entities) {
			t.Error("scene changed for absent id")
		}
	})

	t.Run("id change rejected", func(t *testing.T) {
		_, _, err := s.Update("a", func(e entity.Entity) entity.Entity {
			b := e.Common()
			b.ID = "renamed"
			return e.WithCommon(b)
		})
		if err == nil {
			t.Error("patch changing id accepted")
		}
	})

	t.Run("invalid patch rejected", func(t *testing.T) {
		_, _, err := s.Update("a", func(e entity.Entity) entity.Entity {
			l := e.(entity.Line)
			l.Start = draft.Pt(0, 0)
			l.End = l.Start
			return entity.Circle{Base: l.Base, Center: l.Start, Radius: 0}
		})
		if !errors.Is(err, entity.ErrInvalidGeometry) {
			t.Errorf("err = %v, want ErrInvalidGeometry", err)
		}
	})
}

func TestRemove(t *testing.T) {
	s := mustAdd(t, New(entity.Millimeters), line("a", ""))
	s = mustAdd(t, s, line("b", ""))

	out, ok := s.Remove("a")
	if !ok || len(out.Entities) != 1 || out.Entities[0].Common().ID != "b" {
		t.Errorf("Remove(a): ok=%v entities=%d", ok, len(out.Entities))
	}
	if _, ok := s.Find("a"); !ok {
		t.Error("input scene mutated by Remove")
	}
	if _, ok := out.Remove("ghost"); ok {
		t.Error("Remove of absent id reported ok")
	}
}

func TestIDUniquenessInvariant(t *testing.T) {
	// Any sequence of operations keeps ids unique and layers resolvable.
	s := New(entity.Meters)
	s = mustAdd(t, s, line("a", ""))
	s, _ = s.AddLayer(entity.Layer{Name: "walls", Visible: true})
	s = mustAdd(t, s, line("b", "walls"))
	s, _, _ = s.Update("a", func(e entity.Entity) entity.Entity { return e })
	s, _ = s.Remove("b")
	s = mustAdd(t, s, line("b", "walls"))
	s, _ = s.RenameLayer("walls", "partitions")
	s, _ = s.Remove("a")
	s = mustAdd(t, s, line("a", "partitions"))

	seen := map[string]bool{}
	for _, e := range s.Entities {
		id := e.Common().ID
		if seen[id] {
			t.Fatalf("duplicate id %q after op sequence", id)
		}
		seen[id] = true
		layer := e.Common().Layer
		if layer != "" {
			if _, ok := s.Layers[layer]; !ok {
				t.Fatalf("entity %q references missing layer %q", id, layer)
			}
		}
	}
}

func TestReorder(t *testing.T) {
	s := mustAdd(t, New(entity.Millimeters), line("a", ""))
	s = mustAdd(t, s, line("b", ""))
	s = mustAdd(t, s, line("c", ""))

	out, ok := s.BringToFront("a")
	if !ok || out.Entities[2].Common().ID != "a" {
		t.Error("BringToFront did not move entity to top")
	}
	out, ok = s.SendToBack("c")
	if !ok || out.Entities[0].Common().ID != "c" {
		t.Error("SendToBack did not move entity to bottom")
	}
}

func TestFromParts(t *testing.T) {
	entities := []entity.Entity{line("a", "walls"), line("b", "")}
	layers := []entity.Layer{{Name: "walls", Visible: true}}
	s, err := FromParts(entities, layers, entity.Inches)
	if err != nil {
		t.Fatalf("FromParts: %v", err)
	}
	if len(s.Entities) != 2 || len(s.Layers) != 2 {
		t.Errorf("entities=%d layers=%d, want 2 and 2", len(s.Entities), len(s.Layers))
	}
	if s.Bounds.IsEmpty() {
		t.Error("bounds not computed")
	}

	_, err = FromParts([]entity.Entity{line("x", ""), line("x", "")}, nil, entity.Inches)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate import err = %v, want ErrDuplicateID", err)
	}
}

func TestVisibility(t *testing.T) {
	s := New(entity.Millimeters)
	s, _ = s.AddLayer(entity.Layer{Name: "hidden", Visible: false})
	s = mustAdd(t, s, line("a", "hidden"))
	s = mustAdd(t, s, line("b", ""))

	a, _ := s.Find("a")
	b, _ := s.Find("b")
	if s.IsVisible(a) {
		t.Error("entity on hidden layer reported visible")
	}
	if !s.IsVisible(b) {
		t.Error("entity on default layer reported hidden")
	}

	invisible := line("c", "")
	invisible.Visible = false
	s = mustAdd(t, s, invisible)
	c, _ := s.Find("c")
	if s.IsVisible(c) {
		t.Error("invisible entity reported visible")
	}
}
