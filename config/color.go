package config

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// Color is straight-alpha RGBA with components in [0,1], written in JSON as
// [r, g, b, a]. It satisfies image/color.Color.
type Color [4]float32

// UnmarshalJSON accepts exactly four components, each in [0,1].
func (c *Color) UnmarshalJSON(data []byte) error {
	var v []float32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != len(c) {
		return fmt.Errorf("color %s: want %d components [r, g, b, a], got %d", data, len(c), len(v))
	}
	for i, x := range v {
		if x < 0 || x > 1 {
			return fmt.Errorf("color %s: component %d is %g, outside [0, 1]", data, i, x)
		}
	}
	copy(c[:], v)
	return nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RGBA returns alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c[3])
	r = uint32(clamp01(c[0])*alpha*0xffff + 0.5)
	g = uint32(clamp01(c[1])*alpha*0xffff + 0.5)
	b = uint32(clamp01(c[2])*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return r, g, b, a
}

// RGB8 returns the 8-bit color channels, ignoring alpha. Terminals have no
// alpha.
func (c Color) RGB8() (r, g, b uint8) {
	to8 := func(v float32) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	return to8(c[0]), to8(c[1]), to8(c[2])
}

// Lerp blends c towards to by t in [0,1].
func (c Color) Lerp(to Color, t float32) Color {
	t = clamp01(t)
	var out Color
	for i := range c {
		out[i] = c[i] + (to[i]-c[i])*t
	}
	return out
}

var _ color.Color = Color{}

// SegmentColor is the color of body segment i (0 is the head) of an n segment
// snake. The body fades from SnakeFirstColor at the tail towards
// SnakeSecondColor at the neck.
func (c Config) SegmentColor(i, n int) Color {
	if i == 0 || n <= 0 {
		return c.SnakeHeadColor
	}
	return c.SnakeFirstColor.Lerp(c.SnakeSecondColor, float32(n-1-i)/float32(n))
}
