package render

import (
	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
	"github.com/draftview/draft/grip"
	"github.com/draftview/draft/scene"
)

// Selection is the read contract the frame needs from a selection set.
// pick.Set implements it.
type Selection interface {
	Contains(id string) bool
}

// Marquee is the in-progress drag-selection rectangle in screen
// coordinates. Drag direction selects the visual: left-to-right paints a
// solid outline (window mode), right-to-left a dashed one (crossing mode).
type Marquee struct {
	Start, End draft.Point
}

// Crossing reports whether the marquee was dragged right-to-left.
func (m Marquee) Crossing() bool { return m.End.X < m.Start.X }

// Frame is everything one render pass reads. It is assembled fresh per
// frame; rendering is a pure function of this value and paints through the
// given Painter.
type Frame struct {
	Scene    scene.Scene
	View     draft.ViewTransform
	Viewport draft.Viewport
	Config   Config

	// Selection and Hover drive the interaction tiers. Hover may name a
	// selected entity; it then paints in the combined style.
	Selection Selection
	Hover     string

	// Preview is the rubber-band entity while a drawing tool is active.
	Preview entity.Entity

	// Marquee is the in-progress drag-selection overlay.
	Marquee *Marquee

	// Pointer is the pointer position in world coordinates, and
	// GripAperture the world-unit distance within which a grip warms.
	Pointer      draft.Point
	GripAperture float64

	// HotGrip identifies the grip currently being dragged, if any.
	HotGrip *grip.Grip
}

// Render paints one frame. Paint order is load-bearing:
//
//  1. unselected, unhovered entities in authentic style
//  2. the preview entity, dashed
//  3. selected entities (combined style if also hovered), then their grips
//  4. the hovered entity when not already selected
//  5. the marquee overlay
//
// so grips and hover feedback always paint above plain geometry. The four
// draw lists are disjoint and computed once by a single partition of the
// entity list.
func Render(p Painter, f Frame) {
	f.View = f.View.Normalize()

	var plain, selected, hovered []entity.Entity
	for _, e := range f.Scene.Entities {
		if !f.Scene.IsVisible(e) {
			continue
		}
		id := e.Common().ID
		switch {
		case f.Selection != nil && f.Selection.Contains(id):
			selected = append(selected, e)
		case id == f.Hover:
			hovered = append(hovered, e)
		default:
			plain = append(plain, e)
		}
	}

	env := Env{
		Painter:  p,
		View:     f.View,
		Viewport: f.Viewport,
		Scene:    f.Scene,
		Config:   f.Config,
	}

	for _, e := range plain {
		env.Style = authenticStyle(f, e)
		opsFor(e).Render(env, e)
	}

	if f.Preview != nil {
		env.Style = Style{Color: f.Config.Palette.Preview, Width: 1, Dash: previewDash}
		opsFor(f.Preview).Render(env, f.Preview)
	}

	for _, e := range selected {
		color := f.Config.Palette.Selected
		if e.Common().ID == f.Hover {
			color = f.Config.Palette.SelectedHover
		}
		env.Style = Style{Color: color, Width: lineweight(e) + 1}
		opsFor(e).Render(env, e)
	}
	if f.Config.ShowGrips {
		for _, e := range selected {
			drawGrips(env, f, e)
		}
	}

	for _, e := range hovered {
		env.Style = Style{Color: f.Config.Palette.Hover, Width: lineweight(e) + 1}
		opsFor(e).Render(env, e)
	}

	if f.Marquee != nil {
		drawMarquee(env, *f.Marquee)
	}
}

// authenticStyle resolves an entity's own style: its color, falling back
// to its layer's color, falling back to the palette default.
func authenticStyle(f Frame, e entity.Entity) Style {
	layer := f.Scene.LayerOf(e)
	color := draft.HexOr(e.Common().Color, draft.HexOr(layer.Color, f.Config.Palette.Default))
	return Style{Color: color, Width: lineweight(e)}
}

func lineweight(e entity.Entity) float64 {
	if w := e.Common().Lineweight; w > 0 {
		return w
	}
	return 1
}

// drawGrips recomputes the entity's grips, refreshes their tiered states
// against the pointer, and paints them. Grips are derived per pass and
// never persisted.
func drawGrips(env Env, f Frame, e entity.Entity) {
	grips := opsFor(e).Grips(e)
	if len(grips) == 0 {
		return
	}
	hot := -1
	if f.HotGrip != nil {
		for i, g := range grips {
			if g.EntityID == f.HotGrip.EntityID &&
				g.Type == f.HotGrip.Type && g.Index == f.HotGrip.Index {
				hot = i
				break
			}
		}
	}
	grips = grip.UpdateStates(grips, f.Pointer, f.GripAperture, hot)
	for _, g := range grips {
		pos := env.pt(g.Position)
		if hot >= 0 && g.State == grip.Hot && f.HotGrip != nil {
			pos = env.pt(f.HotGrip.Position)
		}
		color := env.Config.Palette.GripCold
		size := env.Config.GripSize
		switch g.State {
		case grip.Warm:
			color = env.Config.Palette.GripWarm
			size *= 1.25
		case grip.Hot:
			color = env.Config.Palette.GripHot
			size *= 1.25
		}
		env.Painter.FillPolygon([]draft.Point{
			{X: pos.X - size, Y: pos.Y - size},
			{X: pos.X + size, Y: pos.Y - size},
			{X: pos.X + size, Y: pos.Y + size},
			{X: pos.X - size, Y: pos.Y + size},
		}, color)
	}
}

func drawMarquee(env Env, m Marquee) {
	style := Style{Color: env.Config.Palette.Marquee, Width: 1}
	if m.Crossing() {
		style.Dash = previewDash
	}
	box := draft.RectFromPoints(m.Start, m.End)
	corners := box.Corners()
	env.Painter.StrokeLines(corners[:], true, style)
}
