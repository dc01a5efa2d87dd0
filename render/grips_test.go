package render

import (
	"testing"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
	"github.com/draftview/draft/grip"
)

func countGrips(grips []grip.Grip, typ grip.Type) int {
	n := 0
	for _, g := range grips {
		if g.Type == typ {
			n++
		}
	}
	return n
}

func TestGripSets(t *testing.T) {
	base := entity.Base{ID: "e", Visible: true}
	tests := []struct {
		name string
		e    entity.Entity
		want map[grip.Type]int
	}{
		{
			"line",
			entity.Line{Base: base, Start: draft.Pt(0, 0), End: draft.Pt(10, 0)},
			map[grip.Type]int{grip.Vertex: 2, grip.Midpoint: 1},
		},
		{
			"open polyline",
			entity.Polyline{Base: base, Vertices: []draft.Point{{}, {X: 5}, {X: 5, Y: 5}}},
			map[grip.Type]int{grip.Vertex: 3, grip.Midpoint: 2},
		},
		{
			"closed polyline",
			entity.Polyline{Base: base, Vertices: []draft.Point{{}, {X: 5}, {X: 5, Y: 5}}, Closed: true},
			map[grip.Type]int{grip.Vertex: 3, grip.Midpoint: 3},
		},
		{
			"circle",
			entity.Circle{Base: base, Center: draft.Pt(0, 0), Radius: 5},
			map[grip.Type]int{grip.Center: 1, grip.Quadrant: 4},
		},
		{
			"arc",
			entity.Arc{Base: base, Radius: 5, StartAngle: 0, EndAngle: 90},
			map[grip.Type]int{grip.Center: 1, grip.Vertex: 2, grip.Midpoint: 1},
		},
		{
			"rectangle",
			entity.Rectangle{Base: base, Corner1: draft.Pt(0, 0), Corner2: draft.Pt(4, 4)},
			map[grip.Type]int{grip.Vertex: 4, grip.Midpoint: 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grips := Grips(tt.e)
			for typ, want := range tt.want {
				if got := countGrips(grips, typ); got != want {
					t.Errorf("%s grips = %d, want %d", typ, got, want)
				}
			}
			for _, g := range grips {
				if g.EntityID != "e" {
					t.Errorf("grip entity id = %q", g.EntityID)
				}
				if g.State != grip.Cold {
					t.Errorf("fresh grip state = %v, want Cold", g.State)
				}
			}
		})
	}
}

func TestMoveLineGripTouchesOwnedFieldOnly(t *testing.T) {
	l := entity.Line{Base: entity.Base{ID: "l"}, Start: draft.Pt(0, 0), End: draft.Pt(10, 0)}

	t.Run("start grip", func(t *testing.T) {
		got, ok := MoveGrip(l, grip.Grip{Type: grip.Vertex, Index: 0}, draft.Pt(-5, 5))
		if !ok {
			t.Fatal("move rejected")
		}
		moved := got.(entity.Line)
		if moved.Start != draft.Pt(-5, 5) {
			t.Errorf("Start = %v", moved.Start)
		}
		if moved.End != l.End {
			t.Errorf("End changed to %v; start grip owns only Start", moved.End)
		}
	})

	t.Run("midpoint grip translates both", func(t *testing.T) {
		got, ok := MoveGrip(l, grip.Grip{Type: grip.Midpoint, Index: 0}, draft.Pt(10, 5))
		if !ok {
			t.Fatal("move rejected")
		}
		moved := got.(entity.Line)
		if moved.Start != draft.Pt(5, 5) || moved.End != draft.Pt(15, 5) {
			t.Errorf("translated to %v-%v", moved.Start, moved.End)
		}
	})
}

func TestMovePolylineVertexCopiesSlice(t *testing.T) {
	p := entity.Polyline{
		Base:     entity.Base{ID: "p"},
		Vertices: []draft.Point{{}, {X: 5}, {X: 5, Y: 5}},
	}
	got, ok := MoveGrip(p, grip.Grip{Type: grip.Vertex, Index: 1}, draft.Pt(7, 1))
	if !ok {
		t.Fatal("move rejected")
	}
	if p.Vertices[1] != draft.Pt(5, 0) {
		t.Error("original polyline mutated")
	}
	if got.(entity.Polyline).Vertices[1] != draft.Pt(7, 1) {
		t.Error("vertex not moved")
	}
}

func TestMoveCircleGrips(t *testing.T) {
	c := entity.Circle{Base: entity.Base{ID: "c"}, Center: draft.Pt(0, 0), Radius: 5}

	got, _ := MoveGrip(c, grip.Grip{Type: grip.Center}, draft.Pt(3, 3))
	if moved := got.(entity.Circle); moved.Center != draft.Pt(3, 3) || moved.Radius != 5 {
		t.Errorf("center move: %+v", moved)
	}

	got, _ = MoveGrip(c, grip.Grip{Type: grip.Quadrant, Index: 0}, draft.Pt(8, 0))
	if moved := got.(entity.Circle); moved.Radius != 8 || moved.Center != c.Center {
		t.Errorf("quadrant move: %+v", moved)
	}

	if _, ok := MoveGrip(c, grip.Grip{Type: grip.Quadrant}, c.Center); ok {
		t.Error("zero radius accepted")
	}
}

func TestMoveArcEndpointReaims(t *testing.T) {
	a := entity.Arc{
		Base: entity.Base{ID: "a"}, Center: draft.Pt(0, 0),
		Radius: 10, StartAngle: 0, EndAngle: 90,
	}
	got, ok := MoveGrip(a, grip.Grip{Type: grip.Vertex, Index: 1}, draft.Pt(-7, 0))
	if !ok {
		t.Fatal("move rejected")
	}
	moved := got.(entity.Arc)
	if moved.EndAngle != 180 {
		t.Errorf("EndAngle = %v, want 180", moved.EndAngle)
	}
	if moved.Radius != 10 {
		t.Errorf("Radius = %v; endpoint grip must not resize", moved.Radius)
	}
}

func TestMoveRectangleCorner(t *testing.T) {
	r := entity.Rectangle{
		Base: entity.Base{ID: "r"}, Corner1: draft.Pt(0, 0), Corner2: draft.Pt(10, 10),
	}
	got, ok := MoveGrip(r, grip.Grip{Type: grip.Vertex, Index: 2}, draft.Pt(12, 14))
	if !ok {
		t.Fatal("move rejected")
	}
	moved := got.(entity.Rectangle)
	if moved.Corner1 != draft.Pt(0, 0) || moved.Corner2 != draft.Pt(12, 14) {
		t.Errorf("corners %v %v", moved.Corner1, moved.Corner2)
	}

	got, ok = MoveGrip(r, grip.Grip{Type: grip.Midpoint, Index: 1}, draft.Pt(15, 5))
	if !ok {
		t.Fatal("edge move rejected")
	}
	moved = got.(entity.Rectangle)
	if moved.Corner2.X != 15 || moved.Corner2.Y != 10 {
		t.Errorf("right edge move changed wrong fields: %v", moved.Corner2)
	}
}
