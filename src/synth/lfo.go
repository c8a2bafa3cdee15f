package synth

import (
	"fmt"
	"math"
)

// ----- LFO ----- //

// LFO loops over its curve every duration seconds.
type LFO struct {
	curve    Curve
	duration float64 // sec
	pos      uint32
}

// NewLFO ...
func NewLFO(curve Curve, duration float64) (*LFO, error) {
	l := &LFO{}
	if err := l.SetCurve(curve); err != nil {
		return nil, err
	}
	if err := l.SetDuration(duration); err != nil {
		return nil, err
	}
	return l, nil
}

// SetCurve ...
func (l *LFO) SetCurve(curve Curve) error {
	if curve == nil {
		return fmt.Errorf("%w: lfo curve is nil", ErrInvalidCurve)
	}
	l.curve = curve
	return nil
}

// SetDuration ...
func (l *LFO) SetDuration(duration float64) error {
	if err := checkDuration(duration); err != nil {
		return err
	}
	l.duration = duration
	return nil
}

// Duration ...
func (l *LFO) Duration() float64 { return l.duration }

// SetRandomPos moves the LFO to a position within its period picked by seed.
// The same seed always picks the same position.
func (l *LFO) SetRandomPos(sampleRate int, seed float64) {
	pos := math.RoundToEven(Rand(seed) * float64(sampleRate) * l.duration)
	// periods longer than 2^32 samples wrap like the counter does
	l.pos = uint32(math.Mod(pos, 1<<32))
}

// Run ...
func (l *LFO) Run(sampleRate int) float64 {
	curvePos := repeat(float64(l.pos)/(l.duration*float64(sampleRate)), 1)
	l.pos++
	return l.curve.Evaluate(curvePos)
}

// repeat wraps t into [0, length).
func repeat(t, length float64) float64 {
	return clamp(t-math.Floor(t/length)*length, 0, length)
}
