package audio

import (
	"fmt"
	"log"
	"strconv"
	"sync"
)

// ----- Engine ----- //

type engine struct {
	sync.Mutex
	events   [][]*midiEvent // length: samplesPerCycle * 2
	params   *params
	presets  *presetManager
	voices   *polyOsc
	gain     *transitiveValue
	pos      int64
	out      []float64 // length: fftSize
	block    []float64 // length: samplesPerCycle
	lastRead float64
}

func newEngine(presetDir string) *engine {
	p := newParams()
	gain := newTransitiveValue()
	gain.init(p.volume)
	e := &engine{
		events: make([][]*midiEvent, samplesPerCycle*2),
		params: p,
		voices: newPolyOsc(),
		gain:   gain,
		out:    make([]float64, fftSize),
		block:  make([]float64, samplesPerCycle),
	}
	if presetDir != "" {
		e.presets = newPresetManager(presetDir)
	}
	return e
}

// read fills buf with as many whole frames as fit, up to one cycle.
func (e *engine) read(buf []byte) int {
	e.Lock()
	defer e.Unlock()
	timestamp := now()
	n := len(buf) / bytesPerSample
	if n > samplesPerCycle {
		n = samplesPerCycle
	}
	out := e.block[:n]
	e.process(out)
	writeBuffer(out, buf, 0)
	writeBuffer(out, buf, 1)
	e.lastRead = timestamp
	return n * bytesPerSample
}

// process renders len(out) samples and consumes their events.
func (e *engine) process(out []float64) {
	e.voices.applyParams(e.params)
	for i := range out {
		value := e.voices.step(e.events[i], e.params)
		e.gain.step()
		value *= e.gain.value
		out[i] = value
		e.out[(e.pos+int64(i))%fftSize] = value
	}
	e.pos += int64(len(out))
	copy(e.events, e.events[len(out):])
	for i := len(e.events) - len(out); i < len(e.events); i++ {
		e.events[i] = nil
	}
}

// snapshot copies the last fftSize samples in time order.
func (e *engine) snapshot(dst []float64) {
	e.Lock()
	defer e.Unlock()
	// out:       | 4 | 1 | 2 | 3 |
	// offset:        ^
	// dst:       | 1 | 2 | 3 | 4 |
	offset := e.pos % fftSize
	copy(dst, e.out[offset:])
	copy(dst[fftSize-offset:], e.out[:offset])
}

func (e *engine) addMidiEvent(event interface{}) {
	offset := now() - e.lastRead
	index := int(offset / secPerSample)
	if index < 0 {
		log.Println("[WARN] index < 0")
		index = 0
	}
	if index >= len(e.events) {
		log.Println("[WARN] index >= event length")
		index = len(e.events) - 1
	}
	e.events[index] = append(e.events[index], &midiEvent{offset: offset, event: event})
}

func (e *engine) update(command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("empty command")
	}
	e.Lock()
	defer e.Unlock()

	switch command[0] {
	case "set":
		return e.set(command[1:])
	case "note_on", "note_off":
		if len(command) != 2 {
			return fmt.Errorf("%s takes a note number", command[0])
		}
		note, err := strconv.ParseInt(command[1], 10, 32)
		if err != nil {
			return err
		}
		if command[0] == "note_on" {
			e.addMidiEvent(&noteOn{note: int(note)})
		} else {
			e.addMidiEvent(&noteOff{note: int(note)})
		}
	case "all_off":
		e.addMidiEvent(&allNotesOff{})
	case "preset":
		if len(command) != 2 {
			return fmt.Errorf("preset takes a name")
		}
		if e.presets == nil {
			return fmt.Errorf("no preset directory")
		}
		if err := e.presets.applyToParams(command[1], e.params); err != nil {
			return err
		}
		e.gain.exponential(20, e.params.volume, 0.001)
	default:
		return fmt.Errorf("unknown command %v", command[0])
	}
	return nil
}

func (e *engine) set(command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("set takes a section")
	}
	if command[0] == "volume" {
		if len(command) != 2 {
			return fmt.Errorf("invalid value %v", command)
		}
		value, err := strconv.ParseFloat(command[1], 64)
		if err != nil {
			return err
		}
		if err := e.params.setVolume(value); err != nil {
			return err
		}
		e.gain.linear(20, e.params.volume)
		return nil
	}
	if len(command) != 3 {
		return fmt.Errorf("invalid key-value pair %v", command[1:])
	}
	section, key, value := command[0], command[1], command[2]
	switch section {
	case "osc":
		return e.params.osc.set(key, value)
	case "noise":
		return e.params.noise.set(key, value)
	case "envelope":
		return e.params.envelope.set(key, value)
	case "release":
		return e.params.release.set(key, value)
	case "lfo":
		return e.params.lfo.set(key, value)
	case "lowpass":
		return e.params.lowpass.set(key, value)
	}
	return fmt.Errorf("unknown section %v", section)
}

// ----- Offline Rendering ----- //

// Render plays notes (MIDI numbers) one after another through a fresh engine loaded with
// the given preset and returns the mono signal. Each note is held for noteLength seconds and
// tail seconds are rendered after the last note.
func Render(presetDir, preset string, notes []int, noteLength, tail float64) ([]float64, error) {
	if noteLength <= 0 || tail < 0 {
		return nil, fmt.Errorf("invalid lengths: note=%v tail=%v", noteLength, tail)
	}
	e := newEngine(presetDir)
	if preset != "" {
		if err := e.update([]string{"preset", preset}); err != nil {
			return nil, err
		}
	}
	e.gain.init(e.params.volume)
	noteSamples := int(noteLength * sampleRate)
	if noteSamples == 0 {
		return nil, fmt.Errorf("note length %v is shorter than a sample", noteLength)
	}
	total := noteSamples*len(notes) + int(tail*sampleRate)
	out := make([]float64, total)
	e.voices.applyParams(e.params)
	for i := range out {
		var events []*midiEvent
		if k := i / noteSamples; i%noteSamples == 0 && k <= len(notes) {
			if k > 0 {
				events = append(events, &midiEvent{event: &noteOff{note: notes[k-1]}})
			}
			if k < len(notes) {
				events = append(events, &midiEvent{event: &noteOn{note: notes[k]}})
			}
		}
		e.gain.step()
		out[i] = e.voices.step(events, e.params) * e.gain.value
	}
	return out, nil
}
