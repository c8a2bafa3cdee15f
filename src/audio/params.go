package audio

import (
	"encoding/json"
	"fmt"
)

// ----- Params ----- //

type params struct {
	volume   float64 // 0 ~ 1
	osc      *oscParams
	noise    *noiseParams
	envelope *envelopeParams
	release  *envelopeParams
	lfo      *lfoParams
	lowpass  *lowpassParams
}

func newParams() *params {
	return &params{
		volume:   0.8,
		osc:      newOscParams(),
		noise:    &noiseParams{volume: 0},
		envelope: newEnvelopeParams(),
		release:  newReleaseParams(),
		lfo:      newLfoParams(),
		lowpass:  newLowpassParams(),
	}
}

func (p *params) clone() *params {
	osc := *p.osc
	noise := *p.noise
	envelope := *p.envelope
	release := *p.release
	lfo := *p.lfo
	lowpass := *p.lowpass
	return &params{
		volume:   p.volume,
		osc:      &osc,
		noise:    &noise,
		envelope: &envelope,
		release:  &release,
		lfo:      &lfo,
		lowpass:  &lowpass,
	}
}

func (p *params) setVolume(v float64) error {
	if err := checkUnit("volume", v); err != nil {
		return err
	}
	p.volume = v
	return nil
}

type paramsJSON struct {
	Volume   *float64        `json:"volume"`
	Osc      json.RawMessage `json:"osc"`
	Noise    json.RawMessage `json:"noise"`
	Envelope json.RawMessage `json:"envelope"`
	Release  json.RawMessage `json:"release"`
	Lfo      json.RawMessage `json:"lfo"`
	Lowpass  json.RawMessage `json:"lowpass"`
}

// applyJSON replaces every section present in data. Nothing changes when any part
// of data is invalid.
func (p *params) applyJSON(data json.RawMessage) error {
	var j paramsJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to params: %w", err)
	}
	next := p.clone()
	if j.Volume != nil {
		if err := next.setVolume(*j.Volume); err != nil {
			return err
		}
	}
	sections := []struct {
		name  string
		data  json.RawMessage
		apply func(json.RawMessage) error
	}{
		{"osc", j.Osc, next.osc.applyJSON},
		{"noise", j.Noise, next.noise.applyJSON},
		{"envelope", j.Envelope, next.envelope.applyJSON},
		{"release", j.Release, next.release.applyJSON},
		{"lfo", j.Lfo, next.lfo.applyJSON},
		{"lowpass", j.Lowpass, next.lowpass.applyJSON},
	}
	for _, s := range sections {
		if s.data == nil {
			continue
		}
		if err := s.apply(s.data); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	*p = *next
	return nil
}

func (p *params) toJSON() json.RawMessage {
	volume := p.volume
	return toRawMessage(&paramsJSON{
		Volume:   &volume,
		Osc:      p.osc.toJSON(),
		Noise:    p.noise.toJSON(),
		Envelope: p.envelope.toJSON(),
		Release:  p.release.toJSON(),
		Lfo:      p.lfo.toJSON(),
		Lowpass:  p.lowpass.toJSON(),
	})
}

func toRawMessage(v interface{}) json.RawMessage {
	bytes, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return json.RawMessage(bytes)
}
