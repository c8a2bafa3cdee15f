package synth

import (
	"fmt"
	"math"
)

// Curve maps a normalized position to a value.
// Implementations must be deterministic and free of side effects.
type Curve interface {
	Evaluate(x float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(x float64) float64

// Evaluate ...
func (f CurveFunc) Evaluate(x float64) float64 {
	return f(x)
}

// Constant returns a curve that always evaluates to v.
func Constant(v float64) Curve {
	return CurveFunc(func(float64) float64 { return v })
}

func evaluate(c Curve, x float64) float64 {
	if c == nil {
		return 0
	}
	return c.Evaluate(x)
}

// ----- Keyframe Curve ----- //

// Keyframe is a control point of a KeyframeCurve.
type Keyframe struct {
	Time  float64
	Value float64
}

// KeyframeCurve interpolates linearly between keyframes and holds the first and last
// values outside of the keyed range. The zero value evaluates to 0.
type KeyframeCurve struct {
	keys []Keyframe
}

// NewKeyframeCurve ...
func NewKeyframeCurve(keys ...Keyframe) (*KeyframeCurve, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no keyframes", ErrInvalidCurve)
	}
	for i, k := range keys {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) || math.IsNaN(k.Value) || math.IsInf(k.Value, 0) {
			return nil, fmt.Errorf("%w: keyframe %d is not finite", ErrInvalidCurve, i)
		}
		if i > 0 && k.Time < keys[i-1].Time {
			return nil, fmt.Errorf("%w: keyframe %d is out of order", ErrInvalidCurve, i)
		}
	}
	return &KeyframeCurve{keys: append([]Keyframe(nil), keys...)}, nil
}

// Linear is a straight ramp from `from` at 0 to `to` at 1.
func Linear(from, to float64) *KeyframeCurve {
	return &KeyframeCurve{keys: []Keyframe{{0, from}, {1, to}}}
}

// Keys returns a copy of the control points.
func (c *KeyframeCurve) Keys() []Keyframe {
	return append([]Keyframe(nil), c.keys...)
}

// Evaluate returns 0 for a curve without keys and the first value for NaN.
func (c *KeyframeCurve) Evaluate(x float64) float64 {
	keys := c.keys
	n := len(keys)
	if n == 0 {
		return 0
	}
	if !(x > keys[0].Time) || n == 1 {
		return keys[0].Value
	}
	if x >= keys[n-1].Time {
		return keys[n-1].Value
	}
	// first key strictly after x
	lo, hi := 1, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if keys[mid].Time > x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	i := lo
	k0, k1 := keys[i-1], keys[i]
	t := (x - k0.Time) / (k1.Time - k0.Time)
	return k0.Value + (k1.Value-k0.Value)*t
}
