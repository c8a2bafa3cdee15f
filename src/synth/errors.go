package synth

import "errors"

// Configuration errors. Run methods never return errors; these are reported by
// constructors and setters instead.
var (
	ErrInvalidDuration   = errors.New("synth: duration must be positive and finite")
	ErrInvalidDistortion = errors.New("synth: distortion must be in [0, 0.99]")
	ErrInvalidCurve      = errors.New("synth: invalid curve")
)
