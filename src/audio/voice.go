package audio

import (
	"log"

	"github.com/jinjor/morph-synth/src/synth"
)

// ----- Voice ----- //

// voice owns one instance of every primitive so that voices never share state.
type voice struct {
	note       int // pitch table index
	midiNote   int
	released   bool
	osc        *synth.MorphOsc
	noise      *synth.NoiseOsc
	envelope   *synth.Envelope
	release    *synth.Envelope
	lfo        *synth.LFO
	lowpass    *synth.Lowpass
	modulation *modulation
}

func newVoice() *voice {
	p := newParams()
	envelope, err := synth.NewEnvelope(p.envelope.curve, p.envelope.duration)
	if err != nil {
		panic(err)
	}
	release, err := synth.NewEnvelope(p.release.curve, p.release.duration)
	if err != nil {
		panic(err)
	}
	lfo, err := synth.NewLFO(p.lfo.curve, p.lfo.duration)
	if err != nil {
		panic(err)
	}
	lowpass, err := synth.NewLowpass(p.lowpass.cutoff, p.lowpass.resonance, p.lowpass.distortion)
	if err != nil {
		panic(err)
	}
	return &voice{
		osc:        synth.NewMorphOsc(p.osc.volume, p.osc.morph, p.osc.sineMorph, p.osc.triMorph, p.osc.sawMorph, p.osc.squareMorph),
		noise:      synth.NewNoiseOsc(p.noise.volume),
		envelope:   envelope,
		release:    release,
		lfo:        lfo,
		lowpass:    lowpass,
		modulation: &modulation{},
	}
}

// applyParams copies validated params into the primitives.
func (v *voice) applyParams(p *params) {
	v.osc.SetVolume(p.osc.volume)
	v.osc.SetCurves(p.osc.sineMorph, p.osc.triMorph, p.osc.sawMorph, p.osc.squareMorph)
	v.noise.SetVolume(p.noise.volume)
	warnIf(v.envelope.SetCurve(p.envelope.curve))
	warnIf(v.envelope.SetDuration(p.envelope.duration))
	warnIf(v.release.SetCurve(p.release.curve))
	warnIf(v.release.SetDuration(p.release.duration))
	warnIf(v.lfo.SetCurve(p.lfo.curve))
	warnIf(v.lfo.SetDuration(p.lfo.duration))
	warnIf(v.lowpass.SetDistortion(p.lowpass.distortion))
}

func warnIf(err error) {
	if err != nil {
		log.Printf("[WARN] %v\n", err)
	}
}

func (v *voice) noteOn(midiNote int, p *params, seed float64) {
	v.midiNote = midiNote
	v.note = midiNoteToIndex(midiNote)
	v.released = false
	// a fresh filter in place forgets the previous note
	*v.lowpass = synth.Lowpass{}
	v.lowpass.SetCutoff(p.lowpass.cutoff)
	v.lowpass.SetResonance(p.lowpass.resonance)
	warnIf(v.lowpass.SetDistortion(p.lowpass.distortion))
	v.envelope.Trigger()
	if p.lfo.randomPhase {
		v.lfo.SetRandomPos(sampleRate, seed)
	}
}

func (v *voice) noteOff() {
	if v.released {
		return
	}
	v.released = true
	v.release.Trigger()
}

func (v *voice) done() bool {
	return v.released && v.release.Done(sampleRate)
}

func (v *voice) step(p *params) float64 {
	m := v.modulation
	m.init()
	m.apply(p.lfo.destination, v.lfo.Run(sampleRate), p.lfo.amount)

	v.osc.SetMorph(p.osc.morph + m.morphShift)
	// noise is 0 ~ volume, center it
	value := v.osc.Run(v.note, sampleRate) + 2*v.noise.Run() - p.noise.volume
	value *= v.envelope.Run(sampleRate)
	if v.released {
		value *= v.release.Run(sampleRate)
	}
	value *= m.volumeRatio
	if p.lowpass.enabled {
		v.lowpass.SetCutoff(p.lowpass.cutoff + m.cutoffShift)
		v.lowpass.SetResonance(p.lowpass.resonance + m.resonanceShift)
		value = v.lowpass.Run(value)
	}
	return value
}
