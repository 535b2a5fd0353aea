package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds every color a frame is drawn with
type Palette struct {
	Wall      colorful.Color
	Passage   colorful.Color
	GridLine  colorful.Color
	Start     colorful.Color
	Goal      colorful.Color
	Visited   colorful.Color
	Head      colorful.Color // current carve or search position
	PathOuter colorful.Color
	PathInner colorful.Color
	Text      colorful.Color
	Failure   colorful.Color // status tint when a solve finds no route
}

// DefaultPalette is a dark theme tuned for 256-color and truecolor terminals
func DefaultPalette() Palette {
	return Palette{
		Wall:      hex("#1b1f2a"),
		Passage:   hex("#e6e1cf"),
		GridLine:  hex("#9aa5b1"),
		Start:     hex("#2ecc71"),
		Goal:      hex("#e74c3c"),
		Visited:   hex("#5dade2"),
		Head:      hex("#f5b041"),
		PathOuter: hex("#f39c12"),
		PathInner: hex("#fff5cc"),
		Text:      hex("#d0d0d0"),
		Failure:   hex("#c0392b"),
	}
}

// Blend mixes a toward b by t in Lab space, clamped to the sRGB gamut
func Blend(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendLab(b, t).Clamped()
}

// hex parses a palette literal; malformed literals fall back to black
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
