package render

import (
	"sync"

	"github.com/draftview/draft"
	"github.com/draftview/draft/entity"
	"github.com/draftview/draft/grip"
	"github.com/draftview/draft/scene"
)

// Env is the per-entity render environment: the paint surface, the view
// mapping, the scene (for layer style resolution), the pass config, and
// the style tier chosen by the frame pipeline.
type Env struct {
	Painter  Painter
	View     draft.ViewTransform
	Viewport draft.Viewport
	Scene    scene.Scene
	Config   Config
	Style    Style
}

// pt maps a world point to screen pixels.
func (env Env) pt(p draft.Point) draft.Point {
	return env.View.WorldToScreen(p, env.Viewport)
}

// pts maps a slice of world points to screen pixels.
func (env Env) pts(in []draft.Point) []draft.Point {
	out := make([]draft.Point, len(in))
	for i, p := range in {
		out[i] = env.pt(p)
	}
	return out
}

// px converts a world length to screen pixels.
func (env Env) px(worldLength float64) float64 {
	return worldLength * env.View.Normalize().Scale
}

// EntityOps bundles the per-kind strategies: painting, hit-testing, grip
// geometry, and grip application. One table entry per entity kind.
type EntityOps struct {
	// Render paints the entity in three phases: geometry, measurement
	// annotation (Config.ShowMeasurements), decorations
	// (Config.ShowDecorations).
	Render func(env Env, e entity.Entity)

	// HitTest reports whether the world point lies within tolerance of
	// the entity's geometry (tolerance inclusive, world units).
	HitTest func(e entity.Entity, p draft.Point, tolerance float64) bool

	// Grips returns the entity's grip set in Cold state.
	Grips func(e entity.Entity) []grip.Grip

	// MoveGrip applies a grip displacement, touching only the geometry
	// owned by that grip.
	MoveGrip grip.MoveFunc
}

// registry maps kind discriminants to their strategies. Populated in
// init; Register allows the host to extend or override entries.
var (
	registryMu sync.RWMutex
	registry   = map[entity.Kind]EntityOps{}

	warnedMu sync.Mutex
	warned   = map[entity.Kind]bool{}
)

// Register installs the strategies for a kind, replacing any existing
// entry.
func Register(kind entity.Kind, ops EntityOps) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = ops
}

// opsFor returns the strategies for an entity's kind, or the fallback for
// an unregistered kind. The miss is logged once per kind; the frame must
// keep painting.
func opsFor(e entity.Entity) EntityOps {
	registryMu.RLock()
	ops, ok := registry[e.Kind()]
	registryMu.RUnlock()
	if ok {
		return ops
	}
	warnOnce(e.Kind())
	return fallbackOps
}

func warnOnce(kind entity.Kind) {
	warnedMu.Lock()
	defer warnedMu.Unlock()
	if !warned[kind] {
		warned[kind] = true
		draft.Logger().Warn("no renderer registered for entity kind", "kind", kind)
	}
}

// fallbackOps is the recovery strategy for unknown kinds: nothing is
// painted, hit tests always miss (so such entities are never accidentally
// selectable), and no grips are produced.
var fallbackOps = EntityOps{
	Render:  func(Env, entity.Entity) {},
	HitTest: func(entity.Entity, draft.Point, float64) bool { return false },
	Grips:   func(entity.Entity) []grip.Grip { return nil },
	MoveGrip: func(e entity.Entity, _ grip.Grip, _ draft.Point) (entity.Entity, bool) {
		return e, false
	},
}

// HitTest dispatches a world-space hit test through the registry.
func HitTest(e entity.Entity, p draft.Point, tolerance float64) bool {
	return opsFor(e).HitTest(e, p, tolerance)
}

// Grips dispatches grip computation through the registry.
func Grips(e entity.Entity) []grip.Grip {
	return opsFor(e).Grips(e)
}

// MoveGrip dispatches grip application through the registry. It is the
// MoveFunc injected into grip.Drag sessions.
func MoveGrip(e entity.Entity, g grip.Grip, p draft.Point) (entity.Entity, bool) {
	return opsFor(e).MoveGrip(e, g, p)
}

func init() {
	Register(entity.KindLine, EntityOps{
		Render: renderLine, HitTest: hitLine, Grips: gripsLine, MoveGrip: moveLine,
	})
	Register(entity.KindPolyline, EntityOps{
		Render: renderPolyline, HitTest: hitPolyline, Grips: gripsPolyline, MoveGrip: movePolyline,
	})
	Register(entity.KindCircle, EntityOps{
		Render: renderCircle, HitTest: hitCircle, Grips: gripsCircle, MoveGrip: moveCircle,
	})
	Register(entity.KindArc, EntityOps{
		Render: renderArc, HitTest: hitArc, Grips: gripsArc, MoveGrip: moveArc,
	})
	Register(entity.KindRectangle, EntityOps{
		Render: renderRectangle, HitTest: hitRectangle, Grips: gripsRectangle, MoveGrip: moveRectangle,
	})
	Register(entity.KindText, EntityOps{
		Render: renderText, HitTest: hitText, Grips: gripsText, MoveGrip: moveText,
	})
	Register(entity.KindAngle, EntityOps{
		Render: renderAngle, HitTest: hitAngle, Grips: gripsAngle, MoveGrip: moveAngle,
	})
}
