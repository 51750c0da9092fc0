package reviewlens

import (
	"fmt"
	"math"
)

// Two independent sequential palettes, warm for the positive class and cool
// for the negative class. Anchors approximate the matplotlib Reds and Blues
// colormaps, light to dark.
var (
	redRamp  = []rgb{{255, 245, 240}, {252, 146, 114}, {222, 45, 38}, {103, 0, 13}}
	blueRamp = []rgb{{247, 251, 255}, {158, 202, 225}, {49, 130, 189}, {8, 48, 107}}
)

type rgb struct {
	r, g, b uint8
}

// PositiveColor maps a positive importance score, linearly normalized over
// (0,1], to a hex color on the warm ramp. Stronger scores read darker.
func PositiveColor(score float64) string {
	return rampColor(redRamp, score)
}

// NegativeColor maps a negative importance score, linearly normalized over
// [-1,0), to a hex color on the cool ramp. Stronger magnitude reads darker.
func NegativeColor(score float64) string {
	return rampColor(blueRamp, math.Abs(score))
}

// rampColor interpolates piecewise-linearly between ramp anchors. t is
// clamped to [0,1].
func rampColor(ramp []rgb, t float64) string {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	segments := float64(len(ramp) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(ramp)-1 {
		i = len(ramp) - 2
	}
	frac := pos - float64(i)

	lo, hi := ramp[i], ramp[i+1]
	return fmt.Sprintf("#%02x%02x%02x",
		lerp(lo.r, hi.r, frac),
		lerp(lo.g, hi.g, frac),
		lerp(lo.b, hi.b, frac))
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// A ColorMap keys span labels to their ramp colors. Labels round scores to
// two decimals, so equal rounded scores of the same sign share a color.
type ColorMap map[string]string

// Add assigns score's label its ramp color and returns the label. Existing
// entries are left alone.
func (c ColorMap) Add(score float64) string {
	label := SpanLabel(score)
	if _, ok := c[label]; ok {
		return label
	}
	if score > 0 {
		c[label] = PositiveColor(score)
	} else {
		c[label] = NegativeColor(score)
	}
	return label
}
