package scene

import (
	"errors"
	"testing"

	"github.com/draftview/draft/entity"
)

func sceneWithLayers(t *testing.T) Scene {
	t.Helper()
	s := New(entity.Millimeters)
	var err error
	s, err = s.AddLayer(entity.Layer{Name: "walls", Visible: true})
	if err != nil {
		t.Fatal(err)
	}
	s, err = s.AddLayer(entity.Layer{Name: "doors", Visible: true})
	if err != nil {
		t.Fatal(err)
	}
	s = mustAdd(t, s, line("w1", "walls"))
	s = mustAdd(t, s, line("w2", "walls"))
	s = mustAdd(t, s, line("d1", "doors"))
	return s
}

// layersResolve fails the test if any entity references a missing layer.
func layersResolve(t *testing.T, s Scene) {
	t.Helper()
	for _, e := range s.Entities {
		name := e.Common().Layer
		if name == "" {
			continue
		}
		if _, ok := s.Layers[name]; !ok {
			t.Fatalf("entity %q references missing layer %q", e.Common().ID, name)
		}
	}
}

func TestRenameLayerCascades(t *testing.T) {
	s := sceneWithLayers(t)
	out, err := s.RenameLayer("walls", "partitions")
	if err != nil {
		t.Fatalf("RenameLayer: %v", err)
	}
	layersResolve(t, out)
	if _, ok := out.Layers["walls"]; ok {
		t.Error("old layer still present")
	}
	if out.Layers["partitions"].Name != "partitions" {
		t.Error("renamed layer's Name field not updated")
	}
	if got := len(out.EntitiesOnLayer("partitions")); got != 2 {
		t.Errorf("entities on renamed layer = %d, want 2", got)
	}
	// Input scene untouched.
	layersResolve(t, s)
	if got := len(s.EntitiesOnLayer("walls")); got != 2 {
		t.Error("input scene mutated by rename")
	}
}

func TestRenameLayerErrors(t *testing.T) {
	s := sceneWithLayers(t)
	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{"missing source", "ghost", "x", ErrUnknownLayer},
		{"existing target", "walls", "doors", ErrLayerExists},
		{"default layer", entity.DefaultLayerName, "x", ErrDefaultLayer},
		{"empty target", "walls", "", ErrUnknownLayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.RenameLayer(tt.from, tt.to)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMergeLayers(t *testing.T) {
	s := sceneWithLayers(t)
	out, err := s.MergeLayers("doors", "walls")
	if err != nil {
		t.Fatalf("MergeLayers: %v", err)
	}
	layersResolve(t, out)
	if _, ok := out.Layers["doors"]; ok {
		t.Error("source layer still present after merge")
	}
	if got := len(out.EntitiesOnLayer("walls")); got != 3 {
		t.Errorf("entities on target = %d, want 3", got)
	}
}

func TestDeleteLayerReassignsToDefault(t *testing.T) {
	s := sceneWithLayers(t)
	out, err := s.DeleteLayer("walls")
	if err != nil {
		t.Fatalf("DeleteLayer: %v", err)
	}
	layersResolve(t, out)
	if got := len(out.EntitiesOnLayer(entity.DefaultLayerName)); got != 2 {
		t.Errorf("entities on default layer = %d, want 2", got)
	}

	if _, err := s.DeleteLayer(entity.DefaultLayerName); !errors.Is(err, ErrDefaultLayer) {
		t.Errorf("deleting default layer: err = %v, want ErrDefaultLayer", err)
	}
}

func TestSetLayerFlags(t *testing.T) {
	s := sceneWithLayers(t)

	out, ok := s.SetLayerVisible("walls", false)
	if !ok || out.Layers["walls"].Visible {
		t.Error("SetLayerVisible(false) not applied")
	}
	if !s.Layers["walls"].Visible {
		t.Error("input scene mutated")
	}

	out, ok = s.SetLayerLocked("doors", true)
	if !ok || !out.Layers["doors"].Locked {
		t.Error("SetLayerLocked(true) not applied")
	}
	d1, _ := out.Find("d1")
	if !out.IsLocked(d1) {
		t.Error("entity on locked layer not reported locked")
	}

	if _, ok := s.SetLayerVisible("ghost", true); ok {
		t.Error("unknown layer reported ok")
	}
}
