package scene

import "fmt"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Mul scales every channel by k/255.
func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Add offsets each channel, clamping to [0, 255].
func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{clampChan(int(c.R) + dr), clampChan(int(c.G) + dg), clampChan(int(c.B) + db)}
}

// Hex renders the colour as an SVG hex literal.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clampChan(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Palette maps the five intensity levels to bar colours. Level 0 doubles
// as the floor tile colour.
var Palette = [5]RGB{
	{R: 235, G: 237, B: 240},
	{R: 155, G: 233, B: 168},
	{R: 64, G: 196, B: 99},
	{R: 48, G: 161, B: 78},
	{R: 33, G: 110, B: 57},
}

// Fixed brightness transforms for the three visible bar faces.

// Lit is the sun-facing side of a bar.
func Lit(c RGB) RGB { return c.Mul(205) }

// Shadow is the side facing away from the light.
func Shadow(c RGB) RGB { return c.Mul(150) }

// Top is the upward face.
func Top(c RGB) RGB { return c.Add(18, 18, 18) }

// Supporting scene colours.
var (
	Backdrop = RGB{R: 248, G: 250, B: 252}
	Creature = RGB{R: 255, G: 152, B: 0}
	Ink      = RGB{R: 36, G: 41, B: 47}
	InkSoft  = RGB{R: 110, G: 119, B: 129}
	Lantern  = RGB{R: 255, G: 196, B: 0}
	Cloud    = RGB{R: 222, G: 229, B: 236}
)
