package draft

// MinScale is the smallest zoom factor a ViewTransform will accept.
// Non-positive or smaller scales are clamped here so the transform never
// becomes singular or inverted.
const MinScale = 1e-6

// Viewport is the host-supplied drawing surface size in screen pixels.
// Device pixel ratio is applied at the paint-context level by the host and
// is never folded into a ViewTransform.
type Viewport struct {
	Width, Height float64
}

// Center returns the screen-space center of the viewport.
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// ViewTransform maps world coordinates to screen coordinates under pan and
// zoom. World space is Y-up; screen space is Y-down with the origin at the
// top-left of the viewport.
//
//	screen.x = width/2  + (world.x + OffsetX) * Scale
//	screen.y = height/2 - (world.y + OffsetY) * Scale
type ViewTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// IdentityView returns the default transform: scale 1, world origin at the
// viewport center.
func IdentityView() ViewTransform {
	return ViewTransform{Scale: 1}
}

// Normalize returns the transform with its scale clamped to MinScale.
// A non-positive scale would be singular or flip the view, so it is
// recovered rather than propagated. Clamping here is silent because the
// transform is normalized on every conversion; ZoomAt logs the clamp once
// at the point where a bad scale enters.
func (t ViewTransform) Normalize() ViewTransform {
	if t.Scale < MinScale {
		t.Scale = MinScale
	}
	return t
}

// WorldToScreen converts a world-space point to screen pixels.
func (t ViewTransform) WorldToScreen(p Point, vp Viewport) Point {
	t = t.Normalize()
	return Point{
		X: vp.Width/2 + (p.X+t.OffsetX)*t.Scale,
		Y: vp.Height/2 - (p.Y+t.OffsetY)*t.Scale,
	}
}

// ScreenToWorld converts a screen-space point back to world coordinates.
// It is the exact algebraic inverse of WorldToScreen.
func (t ViewTransform) ScreenToWorld(p Point, vp Viewport) Point {
	t = t.Normalize()
	return Point{
		X: (p.X-vp.Width/2)/t.Scale - t.OffsetX,
		Y: (vp.Height/2-p.Y)/t.Scale - t.OffsetY,
	}
}

// WorldLength converts a screen-pixel distance to world units, for
// scale-invariant tolerances (hit apertures, grip sizes).
func (t ViewTransform) WorldLength(screenPixels float64) float64 {
	return screenPixels / t.Normalize().Scale
}

// Pan returns the transform shifted by a screen-space delta.
func (t ViewTransform) Pan(dx, dy float64) ViewTransform {
	t = t.Normalize()
	t.OffsetX += dx / t.Scale
	t.OffsetY -= dy / t.Scale
	return t
}

// ZoomAt returns the transform with the given scale, adjusting the offset
// so that the world point under the screen anchor stays stationary
// (pivot-preserving zoom rather than viewport-center zoom).
func (t ViewTransform) ZoomAt(anchor Point, scale float64, vp Viewport) ViewTransform {
	t = t.Normalize()
	if scale < MinScale {
		Logger().Warn("zoom scale clamped", "scale", scale, "min", MinScale)
		scale = MinScale
	}
	pivot := t.ScreenToWorld(anchor, vp)
	return ViewTransform{
		Scale:   scale,
		OffsetX: (anchor.X-vp.Width/2)/scale - pivot.X,
		OffsetY: (vp.Height/2-anchor.Y)/scale - pivot.Y,
	}
}

// FitToBounds returns a transform that centers the given world bounds in
// the viewport with the given margin in screen pixels on every side.
// Degenerate bounds (empty scene, single point) fit at scale 1.
func FitToBounds(bounds Rect, vp Viewport, margin float64) ViewTransform {
	w := vp.Width - 2*margin
	h := vp.Height - 2*margin
	scale := 1.0
	if !bounds.IsEmpty() && bounds.Width() > 0 && bounds.Height() > 0 && w > 0 && h > 0 {
		sx := w / bounds.Width()
		sy := h / bounds.Height()
		scale = sx
		if sy < sx {
			scale = sy
		}
	}
	center := bounds.Center()
	if bounds.IsEmpty() {
		center = Point{}
	}
	return ViewTransform{
		Scale:   scale,
		OffsetX: -center.X,
		OffsetY: -center.Y,
	}.Normalize()
}
