// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the colors used for the playfield and the HUD.
type Palette struct {
	Background  color.RGBA
	FreeCell    color.RGBA
	Blocked     color.RGBA
	Route       color.RGBA
	Text        color.RGBA
	TextDark    color.RGBA
	Hostile     color.RGBA
	Bomb        color.RGBA
	Fire        color.RGBA
	Laser       color.RGBA
	Build       color.RGBA
	Wave        color.RGBA
	Dead        color.RGBA
	Turrets     [8]color.RGBA // indexed by archetype
	StrokeWidth float32
}

// DefaultPalette is the stock look.
func DefaultPalette() Palette {
	return Palette{
		Background:  color.RGBA{R: 20, G: 24, B: 30, A: 255},
		FreeCell:    color.RGBA{R: 38, G: 46, B: 56, A: 255},
		Blocked:     color.RGBA{R: 86, G: 74, B: 58, A: 255},
		Route:       color.RGBA{R: 196, G: 170, B: 120, A: 255},
		Text:        color.RGBA{R: 230, G: 230, B: 230, A: 255},
		TextDark:    color.RGBA{R: 20, G: 20, B: 20, A: 255},
		Hostile:     color.RGBA{R: 255, G: 80, B: 80, A: 255},
		Bomb:        color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Fire:        color.RGBA{R: 255, G: 140, B: 30, A: 220},
		Laser:       color.RGBA{R: 255, G: 40, B: 40, A: 200},
		Build:       color.RGBA{R: 60, G: 160, B: 80, A: 255},
		Wave:        color.RGBA{R: 200, G: 70, B: 60, A: 255},
		Dead:        color.RGBA{R: 90, G: 90, B: 90, A: 255},
		StrokeWidth: 1,
		Turrets: [8]color.RGBA{
			{R: 90, G: 150, B: 230, A: 255},  // basic
			{R: 120, G: 220, B: 240, A: 255}, // slow
			{R: 150, G: 110, B: 70, A: 255},  // splash
			{R: 240, G: 230, B: 90, A: 255},  // zapper
			{R: 240, G: 120, B: 40, A: 255},  // flame
			{R: 220, G: 60, B: 60, A: 255},   // laser
			{R: 150, G: 150, B: 150, A: 255}, // wall
			{R: 90, G: 210, B: 120, A: 255},  // repair
		},
	}
}

// Turret returns the color for archetype index a, falling back to Text.
func (p Palette) Turret(a int) color.RGBA {
	if a < 0 || a >= len(p.Turrets) {
		return p.Text
	}
	return p.Turrets[a]
}

// ParseHex reads "#rrggbb", "#rrggbbaa" or the short "#rgb" form.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("render: bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// DarkenColor halves the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to every channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// TextOn returns Text or TextDark, whichever reads on bg.
func (p Palette) TextOn(bg color.RGBA) color.RGBA {
	if Brightness(bg) > 140 {
		return p.TextDark
	}
	return p.Text
}

// Brightness is the plain channel average.
func Brightness(c color.RGBA) int {
	return (int(c.R) + int(c.G) + int(c.B)) / 3
}
