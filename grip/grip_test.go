package grip

import (
	"testing"

	"github.com/draftview/draft"
)

func TestHit(t *testing.T) {
	grips := []Grip{
		{EntityID: "e", Type: Vertex, Index: 0, Position: draft.Pt(0, 0)},
		{EntityID: "e", Type: Vertex, Index: 1, Position: draft.Pt(10, 0)},
		{EntityID: "e", Type: Midpoint, Index: 0, Position: draft.Pt(5, 0)},
	}
	tests := []struct {
		name     string
		pointer  draft.Point
		aperture float64
		want     int
	}{
		{"exact", draft.Pt(10, 0), 1, 1},
		{"within aperture", draft.Pt(0.5, 0.5), 1, 0},
		{"nearest wins", draft.Pt(6, 0), 8, 2},
		{"boundary inclusive", draft.Pt(11, 0), 1, 1},
		{"miss", draft.Pt(20, 20), 1, -1},
		{"empty set", draft.Pt(0, 0), 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := grips
			if tt.name == "empty set" {
				in = nil
			}
			if got := Hit(in, tt.pointer, tt.aperture); got != tt.want {
				t.Errorf("Hit(%v, %v) = %d, want %d", tt.pointer, tt.aperture, got, tt.want)
			}
		})
	}
}

func TestUpdateStates(t *testing.T) {
	grips := []Grip{
		{Position: draft.Pt(0, 0)},
		{Position: draft.Pt(10, 0)},
		{Position: draft.Pt(20, 0)},
	}

	t.Run("nearest warms", func(t *testing.T) {
		out := UpdateStates(grips, draft.Pt(10.5, 0), 2, -1)
		if out[1].State != Warm {
			t.Errorf("grip 1 state = %v, want Warm", out[1].State)
		}
		if out[0].State != Cold || out[2].State != Cold {
			t.Error("non-nearest grips should stay Cold")
		}
	})

	t.Run("hot suppresses warm", func(t *testing.T) {
		out := UpdateStates(grips, draft.Pt(10.5, 0), 2, 0)
		if out[0].State != Hot {
			t.Errorf("grip 0 state = %v, want Hot", out[0].State)
		}
		if out[1].State != Cold {
			t.Errorf("grip 1 state = %v, want Cold while another grip is hot", out[1].State)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		UpdateStates(grips, draft.Pt(0, 0), 2, -1)
		for i, g := range grips {
			if g.State != Cold {
				t.Errorf("input grip %d mutated to %v", i, g.State)
			}
		}
	})
}
