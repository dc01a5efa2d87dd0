package draft

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Entity and layer colors travel as
// hex strings ("#RRGGBB"); Hex converts them for painting.
type RGBA struct {
	R, G, B, A float64
}

// Common drawing colors.
var (
	Black  = RGBA{0, 0, 0, 1}
	White  = RGBA{1, 1, 1, 1}
	Red    = RGBA{1, 0, 0, 1}
	Green  = RGBA{0, 1, 0, 1}
	Blue   = RGBA{0, 0, 1, 1}
	Yellow = RGBA{1, 1, 0, 1}
	Cyan   = RGBA{0, 1, 1, 1}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input returns ok=false and the zero color.
func Hex(hex string) (RGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	parse := func(s string, short bool) (uint32, bool) {
		var v uint32
		for i := 0; i < len(s); i++ {
			d, good := hexDigit(s[i])
			if !good {
				return 0, false
			}
			v = v<<4 | d
		}
		if short {
			v *= 17
		}
		return v, true
	}

	switch len(hex) {
	case 3:
		r, ok = parse(hex[0:1], true)
		if ok {
			g, ok = parse(hex[1:2], true)
		}
		if ok {
			b, ok = parse(hex[2:3], true)
		}
	case 4:
		r, ok = parse(hex[0:1], true)
		if ok {
			g, ok = parse(hex[1:2], true)
		}
		if ok {
			b, ok = parse(hex[2:3], true)
		}
		if ok {
			a, ok = parse(hex[3:4], true)
		}
	case 6:
		r, ok = parse(hex[0:2], false)
		if ok {
			g, ok = parse(hex[2:4], false)
		}
		if ok {
			b, ok = parse(hex[4:6], false)
		}
	case 8:
		r, ok = parse(hex[0:2], false)
		if ok {
			g, ok = parse(hex[2:4], false)
		}
		if ok {
			b, ok = parse(hex[4:6], false)
		}
		if ok {
			a, ok = parse(hex[6:8], false)
		}
	default:
		ok = false
	}
	if !ok {
		return RGBA{}, false
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// HexOr parses a hex color string, returning fallback for empty or
// malformed input. Entity colors are optional, so this is the common path.
func HexOr(hex string, fallback RGBA) RGBA {
	if hex == "" {
		return fallback
	}
	c, ok := Hex(hex)
	if !ok {
		return fallback
	}
	return c
}

func hexDigit(b byte) (uint32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint32(b-'A') + 10, true
	}
	return 0, false
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
