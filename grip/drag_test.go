package grip

import (
	"testing"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
)

// moveLineEnd is the MoveFunc used by the drag tests: vertex index 1 moves
// the line's End, everything else is unsupported.
func moveLineEnd(e entity.Entity, g Grip, p draft.Point) (entity.Entity, bool) {
	l, ok := e.(entity.Line)
	if !ok || g.Type != Vertex || g.Index != 1 {
		return e, false
	}
	l.End = p
	return l, true
}

func dragFixture() (entity.Line, Grip) {
	l := entity.Line{
		Base:  entity.Base{ID: "l", Visible: true},
		Start: draft.Pt(0, 0), End: draft.Pt(10, 0),
	}
	return l, Grip{EntityID: "l", Type: Vertex, Index: 1, Position: l.End}
}

func TestDragCommit(t *testing.T) {
	l, g := dragFixture()
	d := Begin(l, g, moveLineEnd)

	if !d.Active() {
		t.Fatal("drag not active after Begin")
	}
	if d.Grip().State != Hot {
		t.Error("grabbed grip should be Hot")
	}

	preview := d.Update(draft.Pt(10, 5))
	if preview.(entity.Line).End != draft.Pt(10, 5) {
		t.Error("Update did not return edited preview")
	}
	d.Update(draft.Pt(10, 8))

	final, ok := d.Commit()
	if !ok {
		t.Fatal("Commit reported no change after Updates")
	}
	if final.(entity.Line).End != draft.Pt(10, 8) {
		t.Errorf("final End = %v, want last update position", final.(entity.Line).End)
	}
	if d.Active() {
		t.Error("drag still active after Commit")
	}
	if _, ok := d.Commit(); ok {
		t.Error("second Commit reported a change")
	}
}

func TestDragCommitWithoutUpdateIsNoop(t *testing.T) {
	l, g := dragFixture()
	d := Begin(l, g, moveLineEnd)
	if _, ok := d.Commit(); ok {
		t.Error("Commit without Update should report no change")
	}
}

func TestDragCancel(t *testing.T) {
	l, g := dragFixture()
	d := Begin(l, g, moveLineEnd)
	d.Update(draft.Pt(50, 50))

	got := d.Cancel()
	if got.(entity.Line).End != l.End {
		t.Error("Cancel did not restore the original entity")
	}
	if d.Active() {
		t.Error("drag still active after Cancel")
	}
	// Updates after the gesture settles are ignored.
	after := d.Update(draft.Pt(99, 99))
	if after.(entity.Line).End != l.End {
		t.Error("Update after Cancel edited the entity")
	}
}

func TestDragUpdateIdempotent(t *testing.T) {
	l, g := dragFixture()
	d := Begin(l, g, moveLineEnd)
	a := d.Update(draft.Pt(10, 5))
	b := d.Update(draft.Pt(10, 5))
	if a.(entity.Line) != b.(entity.Line) {
		t.Error("repeated Update with the same point changed the result")
	}
}

func TestDragUnsupportedGrip(t *testing.T) {
	l, _ := dragFixture()
	d := Begin(l, Grip{EntityID: "l", Type: Center}, moveLineEnd)
	got := d.Update(draft.Pt(5, 5))
	if got.(entity.Line) != l {
		t.Error("unsupported grip edited the entity")
	}
	if _, ok := d.Commit(); ok {
		t.Error("unsupported grip reported a change on Commit")
	}
}
