package synth

import (
	"math"

	"github.com/chewxy/math32"
)

// Rand maps a seed to a repeatable pseudo random value in [0, 1).
// It runs in single precision so that the same seed always lands on the same value
// as the shader-style hash it comes from.
func Rand(seed float64) float64 {
	x, y := float32(seed), float32(0)
	dot := x*12.9898 + y*78.233
	full := float32(math.Sin(float64(dot))) * 43758.5453
	r := full - math32.Floor(full)
	// tiny negative values round up to exactly 1
	if r >= 1 {
		r = 0
	}
	return float64(r)
}
