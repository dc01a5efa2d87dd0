package entity

// DefaultLayerName is the layer every unresolvable layer reference falls
// back to. It always exists in a well-formed scene.
const DefaultLayerName = "0"

// Layer groups entities for shared visibility, lock state, and default
// styling. Name is the unique key entities reference.
type Layer struct {
	Name     string
	Color    string // hex; default color for entities without their own
	Visible  bool
	Locked   bool
	LineType string // e.g. "CONTINUOUS"; informational for export
}

// DefaultLayer returns the always-present fallback layer.
func DefaultLayer() Layer {
	return Layer{
		Name:     DefaultLayerName,
		Color:    "#ffffff",
		Visible:  true,
		LineType: "CONTINUOUS",
	}
}

// Units names the drawing unit for a scene. The values match the scene
// import/export contract.
type Units string

const (
	Unitless    Units = "unitless"
	Millimeters Units = "millimeters"
	Centimeters Units = "centimeters"
	Meters      Units = "meters"
	Kilometers  Units = "kilometers"
	Inches      Units = "inches"
	Feet        Units = "feet"
	Miles       Units = "miles"
)
