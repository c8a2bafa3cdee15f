package synth

import (
	"fmt"
	"math"
)

// ----- Lowpass ----- //

// MaxDistortion keeps the waveshaper gain finite.
const MaxDistortion = 0.99

// Lowpass is a resonant 4-pole ladder style lowpass with a soft clipper in its
// feedback path.
type Lowpass struct {
	cutoff     float64 // 0 ~ 1
	resonance  float64 // 0 ~ 1
	distortion float64 // 0 ~ 0.99

	out1, out2, out3, out4 float64
	in1, in2, in3, in4     float64
}

// NewLowpass ...
func NewLowpass(cutoff, resonance, distortion float64) (*Lowpass, error) {
	l := &Lowpass{}
	l.SetCutoff(cutoff)
	l.SetResonance(resonance)
	if err := l.SetDistortion(distortion); err != nil {
		return nil, err
	}
	return l, nil
}

// SetCutoff clamps v into [0, 1].
func (l *Lowpass) SetCutoff(v float64) { l.cutoff = clamp(v, 0, 1) }

// SetResonance clamps v into [0, 1].
func (l *Lowpass) SetResonance(v float64) { l.resonance = clamp(v, 0, 1) }

// SetDistortion rejects values outside of [0, MaxDistortion].
func (l *Lowpass) SetDistortion(v float64) error {
	if !(v >= 0 && v <= MaxDistortion) {
		return fmt.Errorf("%w: got %v", ErrInvalidDistortion, v)
	}
	l.distortion = v
	return nil
}

// Cutoff ...
func (l *Lowpass) Cutoff() float64 { return l.cutoff }

// Resonance ...
func (l *Lowpass) Resonance() float64 { return l.resonance }

// Distortion ...
func (l *Lowpass) Distortion() float64 { return l.distortion }

// Run filters one sample.
func (l *Lowpass) Run(in float64) float64 {
	fc := clamp(l.cutoff, 0.0005, 1.0)
	res := clamp(l.resonance, 0, 1)
	f := fc * 1.16
	fb := res * (1.0 - 0.15*f*f)

	x := in - l.WaveShape(l.out4)*fb
	x *= 0.35013 * (f * f) * (f * f)

	l.out1 = x + 0.3*l.in1 + (1-f)*l.out1 // pole 1
	l.in1 = x
	l.out2 = l.out1 + 0.3*l.in2 + (1-f)*l.out2 // pole 2
	l.in2 = l.out1
	l.out3 = l.out2 + 0.3*l.in3 + (1-f)*l.out3 // pole 3
	l.in3 = l.out2
	l.out4 = l.out3 + 0.3*l.in4 + (1-f)*l.out4 // pole 4
	l.in4 = l.WaveShape(l.out3)
	return l.out4
}

// WaveShape soft clips x. Larger distortion bends the curve harder.
func (l *Lowpass) WaveShape(x float64) float64 {
	d := clamp(l.distortion, 0, MaxDistortion)
	k := 2 * d / (1 - d)
	return (1 + k) * x / (1 + k*math.Abs(x))
}
