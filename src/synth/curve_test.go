package synth

import (
	"errors"
	"math"
	"testing"
)

func TestKeyframeCurveInterpolates(t *testing.T) {
	c, err := NewKeyframeCurve(Keyframe{0, 0}, Keyframe{0.5, 1}, Keyframe{1, 0})
	expectNoError(t, err)
	expectNearlyEqual(t, c.Evaluate(0), 0)
	expectNearlyEqual(t, c.Evaluate(0.25), 0.5)
	expectNearlyEqual(t, c.Evaluate(0.5), 1)
	expectNearlyEqual(t, c.Evaluate(0.75), 0.5)
	expectNearlyEqual(t, c.Evaluate(1), 0)
}

func TestKeyframeCurveHoldsOutsideRange(t *testing.T) {
	c, err := NewKeyframeCurve(Keyframe{0.2, 3}, Keyframe{0.8, 5})
	expectNoError(t, err)
	expectEqual(t, c.Evaluate(-1), 3.0)
	expectEqual(t, c.Evaluate(0), 3.0)
	expectEqual(t, c.Evaluate(1), 5.0)
	expectEqual(t, c.Evaluate(2), 5.0)
}

func TestKeyframeCurveSingleKey(t *testing.T) {
	c, err := NewKeyframeCurve(Keyframe{0.5, 0.7})
	expectNoError(t, err)
	expectEqual(t, c.Evaluate(0), 0.7)
	expectEqual(t, c.Evaluate(1), 0.7)
}

func TestKeyframeCurveStep(t *testing.T) {
	c, err := NewKeyframeCurve(Keyframe{0, 0}, Keyframe{0.5, 0}, Keyframe{0.5, 1}, Keyframe{1, 1})
	expectNoError(t, err)
	expectEqual(t, c.Evaluate(0.49), 0.0)
	expectEqual(t, c.Evaluate(0.5), 1.0)
	expectEqual(t, c.Evaluate(0.51), 1.0)
}

func TestKeyframeCurveValidation(t *testing.T) {
	cases := []struct {
		name string
		keys []Keyframe
	}{
		{"empty", nil},
		{"unsorted", []Keyframe{{1, 0}, {0, 1}}},
		{"nan", []Keyframe{{0, math.NaN()}}},
		{"inf", []Keyframe{{math.Inf(1), 0}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewKeyframeCurve(c.keys...)
			if !errors.Is(err, ErrInvalidCurve) {
				t.Errorf("expected ErrInvalidCurve, but got: %v", err)
			}
		})
	}
}

func TestKeyframeCurveKeysAreCopied(t *testing.T) {
	keys := []Keyframe{{0, 0}, {1, 1}}
	c, err := NewKeyframeCurve(keys...)
	expectNoError(t, err)
	keys[1].Value = 9
	expectEqual(t, c.Evaluate(1), 1.0)
	c.Keys()[0].Value = 9
	expectEqual(t, c.Evaluate(0), 0.0)
}

func TestConstantAndLinear(t *testing.T) {
	expectEqual(t, Constant(0.3).Evaluate(0.9), 0.3)
	l := Linear(1, 0)
	expectNearlyEqual(t, l.Evaluate(0), 1)
	expectNearlyEqual(t, l.Evaluate(0.25), 0.75)
	expectNearlyEqual(t, l.Evaluate(1), 0)
}

func TestKeyframeCurveDoesNotAllocate(t *testing.T) {
	c := Linear(0, 1)
	allocs := testing.AllocsPerRun(100, func() {
		c.Evaluate(0.3)
	})
	expectEqual(t, allocs, 0.0)
}

func TestKeyframeCurveNaN(t *testing.T) {
	single, err := NewKeyframeCurve(Keyframe{0.5, 0.7})
	expectNoError(t, err)
	expectEqual(t, single.Evaluate(math.NaN()), 0.7)
	c, err := NewKeyframeCurve(Keyframe{0, 2}, Keyframe{1, 4})
	expectNoError(t, err)
	expectEqual(t, c.Evaluate(math.NaN()), 2.0)
}

func TestKeyframeCurveZeroValue(t *testing.T) {
	var c KeyframeCurve
	expectEqual(t, c.Evaluate(0.5), 0.0)
	expectEqual(t, len(c.Keys()), 0)
}
