package render

import "github.com/draftview/draft"

// Config carries the per-pass render flags and style palette. It is a
// plain value passed into each render call: one pass, one config, no
// ambient mutable state.
type Config struct {
	// ShowMeasurements draws measurement annotations (lengths, radii,
	// angles) next to entities.
	ShowMeasurements bool

	// ShowDecorations draws decoration markers (endpoint squares, center
	// crosses). A single flag gates the whole phase.
	ShowDecorations bool

	// ShowGrips draws grips on selected entities.
	ShowGrips bool

	// GripSize is the grip square's half-extent in screen pixels.
	GripSize float64

	// AnnotationHeight is the measurement text height in screen pixels.
	AnnotationHeight float64

	// Precision is the number of decimals for measurement annotations.
	Precision int

	Palette Palette
}

// Palette is the style palette for the interaction tiers.
type Palette struct {
	// Default is the fallback entity color when neither the entity nor
	// its layer defines one.
	Default draft.RGBA

	// Selected styles entities in the selection set.
	Selected draft.RGBA

	// Hover styles the hovered entity.
	Hover draft.RGBA

	// SelectedHover styles an entity that is both selected and hovered.
	SelectedHover draft.RGBA

	// Preview styles the rubber-band entity while a tool is drawing.
	Preview draft.RGBA

	// Annotation styles measurement text.
	Annotation draft.RGBA

	// GripCold, GripWarm, GripHot are the tiered grip fills.
	GripCold draft.RGBA
	GripWarm draft.RGBA
	GripHot  draft.RGBA

	// Marquee is the selection rectangle outline color.
	Marquee draft.RGBA
}

// DefaultConfig returns the standard editor configuration: measurements
// and grips on, decorations off.
func DefaultConfig() Config {
	return Config{
		ShowMeasurements: true,
		ShowGrips:        true,
		GripSize:         4,
		AnnotationHeight: 12,
		Precision:        2,
		Palette: Palette{
			Default:       draft.White,
			Selected:      draft.RGBA{R: 0.2, G: 0.55, B: 1, A: 1},
			Hover:         draft.RGBA{R: 0.4, G: 0.85, B: 1, A: 1},
			SelectedHover: draft.RGBA{R: 0.6, G: 0.75, B: 1, A: 1},
			Preview:       draft.RGBA{R: 0.7, G: 0.7, B: 0.7, A: 1},
			Annotation:    draft.RGBA{R: 0.85, G: 0.85, B: 0.6, A: 1},
			GripCold:      draft.RGBA{R: 0.1, G: 0.45, B: 0.9, A: 1},
			GripWarm:      draft.RGBA{R: 0.2, G: 0.8, B: 0.4, A: 1},
			GripHot:       draft.RGBA{R: 1, G: 0.3, B: 0.2, A: 1},
			Marquee:       draft.RGBA{R: 0.9, G: 0.9, B: 0.9, A: 1},
		},
	}
}

// previewDash is the dash pattern for rubber-band previews and crossing
// marquees, in screen pixels.
var previewDash = []float64{4, 4}
