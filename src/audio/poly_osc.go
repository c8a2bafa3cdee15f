package audio

import "log"

// ----- Poly OSC ----- //

type polyOsc struct {
	// pooled + active = maxPoly
	pooled  []*voice
	active  []*voice
	noteOns float64 // seeds the LFO phase of each new note
}

func newPolyOsc() *polyOsc {
	pooled := make([]*voice, maxPoly)
	for i := 0; i < len(pooled); i++ {
		pooled[i] = newVoice()
	}
	return &polyOsc{
		pooled: pooled,
		active: make([]*voice, 0, maxPoly),
	}
}

func (p *polyOsc) applyParams(params *params) {
	for _, v := range p.pooled {
		v.applyParams(params)
	}
	for _, v := range p.active {
		v.applyParams(params)
	}
}

func (p *polyOsc) noteOn(note int, params *params) {
	p.noteOns++
	for _, v := range p.active {
		if v.midiNote == note && !v.released {
			v.noteOn(note, params, p.noteOns)
			return
		}
	}
	lenPooled := len(p.pooled)
	if lenPooled == 0 {
		log.Println("maxPoly exceeded")
		return
	}
	v := p.pooled[lenPooled-1]
	p.pooled = p.pooled[:lenPooled-1]
	p.active = append(p.active, v)
	v.noteOn(note, params, p.noteOns)
}

func (p *polyOsc) noteOff(note int) {
	for _, v := range p.active {
		if v.midiNote == note {
			v.noteOff()
		}
	}
}

func (p *polyOsc) allNotesOff() {
	for _, v := range p.active {
		v.noteOff()
	}
}

func (p *polyOsc) step(events []*midiEvent, params *params) float64 {
	for _, e := range events {
		switch data := e.event.(type) {
		case *noteOn:
			p.noteOn(data.note, params)
		case *noteOff:
			p.noteOff(data.note)
		case *allNotesOff:
			p.allNotesOff()
		}
	}
	value := 0.0
	for _, v := range p.active {
		value += v.step(params)
	}
	for j := len(p.active) - 1; j >= 0; j-- {
		v := p.active[j]
		if v.done() {
			p.active = append(p.active[:j], p.active[j+1:]...)
			p.pooled = append(p.pooled, v)
		}
	}
	return value
}
