package render

import (
	"testing"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
	"github.com/draftview/draft/scene"
)

type sel map[string]bool

func (s sel) Contains(id string) bool { return s[id] }

// alienKind reports an unregistered kind discriminant while keeping valid
// line geometry underneath.
type alienKind struct{ entity.Line }

func (alienKind) Kind() entity.Kind { return "spline" }

func testFrame(t *testing.T, entities ...entity.Entity) Frame {
	t.Helper()
	s := scene.New(entity.Millimeters)
	var err error
	for _, e := range entities {
		s, err = s.AddEntity(e)
		if err != nil {
			t.Fatalf("AddEntity(%s): %v", e.Common().ID, err)
		}
	}
	cfg := DefaultConfig()
	cfg.ShowMeasurements = false
	return Frame{
		Scene:    s,
		View:     draft.IdentityView(),
		Viewport: draft.Viewport{Width: 800, Height: 600},
		Config:   cfg,
	}
}

func testLine(id string, y float64) entity.Line {
	return entity.Line{
		Base:  entity.Base{ID: id, Visible: true},
		Start: draft.Pt(0, y), End: draft.Pt(10, y),
	}
}

func TestRenderPaintOrder(t *testing.T) {
	f := testFrame(t, testLine("plain", 0), testLine("sel", 1), testLine("hov", 2))
	f.Selection = sel{"sel": true}
	f.Hover = "hov"
	f.Preview = entity.Line{
		Base:  entity.Base{ID: "__preview__", Visible: true},
		Start: draft.Pt(0, 3), End: draft.Pt(10, 3),
	}
	f.Marquee = &Marquee{Start: draft.Pt(0, 0), End: draft.Pt(50, 50)}

	var rec Recorder
	Render(&rec, f)

	pal := f.Config.Palette
	var gotColors []draft.RGBA
	gripAt := -1
	for i, op := range rec.Ops {
		switch op.Kind {
		case OpLines:
			gotColors = append(gotColors, op.Style.Color)
		case OpPolygon:
			if gripAt < 0 {
				gripAt = i
			}
		}
	}

	want := []draft.RGBA{pal.Default, pal.Preview, pal.Selected, pal.Hover, pal.Marquee}
	if len(gotColors) != len(want) {
		t.Fatalf("stroke ops = %d, want %d", len(gotColors), len(want))
	}
	for i, c := range want {
		if gotColors[i] != c {
			t.Errorf("stroke %d color = %+v, want %+v", i, gotColors[i], c)
		}
	}
	if gripAt < 0 {
		t.Fatal("no grips painted for selected entity")
	}

	// Grips paint after the selected entity and before the hovered one.
	selIdx, hovIdx := -1, -1
	for i, op := range rec.Ops {
		if op.Kind != OpLines {
			continue
		}
		switch op.Style.Color {
		case pal.Selected:
			selIdx = i
		case pal.Hover:
			hovIdx = i
		}
	}
	if !(selIdx < gripAt && gripAt < hovIdx) {
		t.Errorf("grip op at %d, selected at %d, hovered at %d", gripAt, selIdx, hovIdx)
	}
}

func TestRenderPreviewDashed(t *testing.T) {
	f := testFrame(t)
	f.Preview = entity.Line{
		Base:  entity.Base{ID: "__preview__", Visible: true},
		Start: draft.Pt(0, 0), End: draft.Pt(10, 0),
	}
	var rec Recorder
	Render(&rec, f)
	ops := rec.OpsOf(OpLines)
	if len(ops) != 1 {
		t.Fatalf("stroke ops = %d, want 1", len(ops))
	}
	if len(ops[0].Style.Dash) == 0 {
		t.Error("preview painted solid, want dashed")
	}
}

func TestRenderSelectedHoverCombined(t *testing.T) {
	f := testFrame(t, testLine("a", 0))
	f.Selection = sel{"a": true}
	f.Hover = "a"
	var rec Recorder
	Render(&rec, f)
	ops := rec.OpsOf(OpLines)
	if len(ops) != 1 {
		t.Fatalf("stroke ops = %d, want 1", len(ops))
	}
	if ops[0].Style.Color != f.Config.Palette.SelectedHover {
		t.Errorf("color = %+v, want combined selected+hover", ops[0].Style.Color)
	}
}

func TestRenderSkipsInvisible(t *testing.T) {
	hidden := testLine("h", 0)
	hidden.Visible = false
	f := testFrame(t, hidden, testLine("v", 1))
	var rec Recorder
	Render(&rec, f)
	if got := len(rec.OpsOf(OpLines)); got != 1 {
		t.Errorf("stroke ops = %d, want 1 (invisible entity painted)", got)
	}
}

func TestRenderMarqueeDirection(t *testing.T) {
	t.Run("window solid", func(t *testing.T) {
		f := testFrame(t)
		f.Marquee = &Marquee{Start: draft.Pt(0, 0), End: draft.Pt(50, 50)}
		var rec Recorder
		Render(&rec, f)
		ops := rec.OpsOf(OpLines)
		if len(ops) != 1 || len(ops[0].Style.Dash) != 0 {
			t.Error("left-to-right marquee should paint solid")
		}
	})
	t.Run("crossing dashed", func(t *testing.T) {
		f := testFrame(t)
		f.Marquee = &Marquee{Start: draft.Pt(50, 0), End: draft.Pt(0, 50)}
		var rec Recorder
		Render(&rec, f)
		ops := rec.OpsOf(OpLines)
		if len(ops) != 1 || len(ops[0].Style.Dash) == 0 {
			t.Error("right-to-left marquee should paint dashed")
		}
	})
}

func TestRenderUnknownKindNeverAborts(t *testing.T) {
	alien := alienKind{testLine("alien", 0)}
	f := testFrame(t, alien, testLine("known", 1))
	f.Selection = sel{"alien": true}

	var rec Recorder
	Render(&rec, f) // must not panic

	if got := len(rec.OpsOf(OpLines)); got != 1 {
		t.Errorf("stroke ops = %d, want 1 (only the known entity)", got)
	}
	if HitTest(alien, draft.Pt(5, 0), 100) {
		t.Error("unregistered kind reported a hit")
	}
	if grips := Grips(alien); len(grips) != 0 {
		t.Errorf("unregistered kind produced %d grips", len(grips))
	}
	if _, ok := MoveGrip(alien, Grips(testLine("x", 0))[0], draft.Pt(1, 1)); ok {
		t.Error("unregistered kind accepted a grip move")
	}
}

func TestRenderMeasurementGating(t *testing.T) {
	f := testFrame(t, testLine("a", 0))

	var rec Recorder
	Render(&rec, f)
	if got := len(rec.OpsOf(OpText)); got != 0 {
		t.Errorf("text ops with measurements off = %d, want 0", got)
	}

	f.Config.ShowMeasurements = true
	rec.Reset()
	Render(&rec, f)
	if got := len(rec.OpsOf(OpText)); got == 0 {
		t.Error("no annotation painted with measurements on")
	}
}
