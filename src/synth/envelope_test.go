package synth

import (
	"errors"
	"math"
	"testing"
)

func TestEnvelopeIsAtRestUntilTriggered(t *testing.T) {
	e, err := NewEnvelope(Linear(0, 1), 0.01)
	expectNoError(t, err)
	expectEqual(t, e.Done(1000), true)
	for i := 0; i < 5; i++ {
		expectEqual(t, e.Run(1000), 1.0)
	}
}

func TestEnvelopeFollowsCurveOnceAndHolds(t *testing.T) {
	e, err := NewEnvelope(Linear(0, 1), 0.01)
	expectNoError(t, err)
	e.Trigger()
	expectEqual(t, e.Done(1000), false)

	// 0.01 sec at 1000 Hz is ten samples
	prev := -1.0
	for i := 0; i < 10; i++ {
		v := e.Run(1000)
		expectNearlyEqual(t, v, float64(i)/10)
		if v <= prev {
			t.Fatalf("envelope did not rise at sample %d", i)
		}
		prev = v
	}
	expectEqual(t, e.Done(1000), true)
	for i := 0; i < 100; i++ {
		expectEqual(t, e.Run(1000), 1.0)
	}
}

func TestEnvelopeRetrigger(t *testing.T) {
	e, err := NewEnvelope(Linear(1, 0), 0.005)
	expectNoError(t, err)
	e.Trigger()
	for i := 0; i < 3; i++ {
		e.Run(1000)
	}
	e.Trigger()
	expectNearlyEqual(t, e.Run(1000), 1)
	expectNearlyEqual(t, e.Run(1000), 0.8)
}

func TestEnvelopeRejectsBadConfig(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewEnvelope(Linear(0, 1), d)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("duration %v: expected ErrInvalidDuration, but got: %v", d, err)
		}
	}
	_, err := NewEnvelope(nil, 1)
	if !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("expected ErrInvalidCurve, but got: %v", err)
	}

	e, err := NewEnvelope(Linear(0, 1), 1)
	expectNoError(t, err)
	if err := e.SetDuration(0); err == nil {
		t.Error("expected error for zero duration")
	}
	expectEqual(t, e.Duration(), 1.0)
}

func TestLongEnvelopeIsAtRestUntilTriggered(t *testing.T) {
	// 100000 sec is more samples than the position counter holds
	e, err := NewEnvelope(Linear(0, 1), 100000)
	expectNoError(t, err)
	expectEqual(t, e.Done(48000), true)
	expectEqual(t, e.Run(48000), 1.0)
	e.Trigger()
	expectEqual(t, e.Done(48000), false)
	expectEqual(t, e.Run(48000), 0.0)
}
