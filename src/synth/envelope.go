package synth

import (
	"fmt"
	"math"
)

// ----- Envelope ----- //

// atRest marks an envelope which has never been triggered. It reads as finished.
const atRest = math.MaxUint32

// Envelope follows its curve once per trigger and then holds the value at 1.
type Envelope struct {
	curve    Curve
	duration float64 // sec
	pos      uint32
}

// NewEnvelope ...
func NewEnvelope(curve Curve, duration float64) (*Envelope, error) {
	e := &Envelope{pos: atRest}
	if err := e.SetCurve(curve); err != nil {
		return nil, err
	}
	if err := e.SetDuration(duration); err != nil {
		return nil, err
	}
	return e, nil
}

// SetCurve ...
func (e *Envelope) SetCurve(curve Curve) error {
	if curve == nil {
		return fmt.Errorf("%w: envelope curve is nil", ErrInvalidCurve)
	}
	e.curve = curve
	return nil
}

// SetDuration ...
func (e *Envelope) SetDuration(duration float64) error {
	if err := checkDuration(duration); err != nil {
		return err
	}
	e.duration = duration
	return nil
}

// Duration ...
func (e *Envelope) Duration() float64 { return e.duration }

// Trigger restarts the envelope from the beginning of its curve.
func (e *Envelope) Trigger() {
	e.pos = 0
}

// Done reports whether the envelope is holding its end value.
func (e *Envelope) Done(sampleRate int) bool {
	return e.curvePos(sampleRate) >= 1
}

// Run ...
func (e *Envelope) Run(sampleRate int) float64 {
	curvePos := e.curvePos(sampleRate)
	if curvePos < 1 {
		e.pos++
		return e.curve.Evaluate(curvePos)
	}
	return e.curve.Evaluate(1)
}

func (e *Envelope) curvePos(sampleRate int) float64 {
	if e.pos == atRest {
		return 1
	}
	return float64(e.pos) / (e.duration * float64(sampleRate))
}

func checkDuration(duration float64) error {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	return nil
}
