package synth

import "math"

// ----- Morph OSC ----- //

// MorphOsc blends sine, triangle, saw and square waves. Each wave is weighted by its own
// curve evaluated at the morph position. The weights are not normalized.
//
// The phase is derived from a 32-bit sample counter which wraps around after 2^32 samples.
type MorphOsc struct {
	volume      float64 // 0 ~ 1
	morph       float64 // 0 ~ 1
	sineMorph   Curve
	triMorph    Curve
	sawMorph    Curve
	squareMorph Curve
	pos         uint32
}

// NewMorphOsc ...
func NewMorphOsc(volume, morph float64, sine, tri, saw, square Curve) *MorphOsc {
	o := &MorphOsc{
		sineMorph:   sine,
		triMorph:    tri,
		sawMorph:    saw,
		squareMorph: square,
	}
	o.SetVolume(volume)
	o.SetMorph(morph)
	return o
}

// SetVolume clamps v into [0, 1].
func (o *MorphOsc) SetVolume(v float64) { o.volume = clamp(v, 0, 1) }

// SetMorph clamps v into [0, 1].
func (o *MorphOsc) SetMorph(v float64) { o.morph = clamp(v, 0, 1) }

// SetCurves replaces the morph curves. A nil curve weights its wave by zero.
func (o *MorphOsc) SetCurves(sine, tri, saw, square Curve) {
	o.sineMorph = sine
	o.triMorph = tri
	o.sawMorph = saw
	o.squareMorph = square
}

// Volume ...
func (o *MorphOsc) Volume() float64 { return o.volume }

// Morph ...
func (o *MorphOsc) Morph() float64 { return o.morph }

// Pos returns the number of samples produced since the last wrap.
func (o *MorphOsc) Pos() uint32 { return o.pos }

// Run produces one sample of the given table index.
func (o *MorphOsc) Run(note int, sampleRate int) float64 {
	freq := NoteToPitch(note)
	rate := float64(sampleRate)
	pos := float64(o.pos)

	sine := sineAt(pos, freq, rate)
	tri := triAt(pos, freq, rate)
	saw := sawAt(pos, freq, rate)
	square := squareAt(pos, freq, rate)

	o.pos++

	return (sine*evaluate(o.sineMorph, o.morph) +
		tri*evaluate(o.triMorph, o.morph) +
		saw*evaluate(o.sawMorph, o.morph) +
		square*evaluate(o.squareMorph, o.morph)) * o.volume
}

func sineAt(pos, freq, rate float64) float64 {
	return math.Sin((2 * math.Pi * pos * freq) / rate)
}

func triAt(pos, freq, rate float64) float64 {
	return math.Abs(math.Mod(pos*freq/rate, 4)-2) - 1
}

func sawAt(pos, freq, rate float64) float64 {
	return math.Mod(pos*(2*freq/rate), 2) - 1
}

func squareAt(pos, freq, rate float64) float64 {
	if sawAt(pos, freq, rate) >= 0 {
		return 1
	}
	return -1
}

// clamp maps NaN to min.
func clamp(v, min, max float64) float64 {
	if !(v >= min) {
		return min
	}
	if v > max {
		return max
	}
	return v
}
