package audio

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jinjor/morph-synth/src/synth"
)

// ----- Lowpass Params ----- //

type lowpassParams struct {
	enabled    bool
	cutoff     float64 // 0 ~ 1
	resonance  float64 // 0 ~ 1
	distortion float64 // 0 ~ 0.99
}
type lowpassJSON struct {
	Enabled    bool    `json:"enabled"`
	Cutoff     float64 `json:"cutoff"`
	Resonance  float64 `json:"resonance"`
	Distortion float64 `json:"distortion"`
}

func newLowpassParams() *lowpassParams {
	return &lowpassParams{
		enabled:    true,
		cutoff:     0.3,
		resonance:  0.5,
		distortion: 0.25,
	}
}

func (f *lowpassParams) applyJSON(data json.RawMessage) error {
	var j lowpassJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to lowpassParams: %w", err)
	}
	if err := checkUnit("cutoff", j.Cutoff); err != nil {
		return err
	}
	if err := checkUnit("resonance", j.Resonance); err != nil {
		return err
	}
	if err := checkDistortion(j.Distortion); err != nil {
		return err
	}
	f.enabled = j.Enabled
	f.cutoff = j.Cutoff
	f.resonance = j.Resonance
	f.distortion = j.Distortion
	return nil
}
func (f *lowpassParams) toJSON() json.RawMessage {
	return toRawMessage(&lowpassJSON{
		Enabled:    f.enabled,
		Cutoff:     f.cutoff,
		Resonance:  f.resonance,
		Distortion: f.distortion,
	})
}
func (f *lowpassParams) set(key string, value string) error {
	switch key {
	case "enabled":
		f.enabled = value == "true"
	case "cutoff", "resonance":
		v, err := parseUnit(key, value)
		if err != nil {
			return err
		}
		if key == "cutoff" {
			f.cutoff = v
		} else {
			f.resonance = v
		}
	case "distortion":
		value, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		if err := checkDistortion(value); err != nil {
			return err
		}
		f.distortion = value
	default:
		return fmt.Errorf("unknown lowpass key %v", key)
	}
	return nil
}

func checkDistortion(d float64) error {
	if !(d >= 0 && d <= synth.MaxDistortion) {
		return fmt.Errorf("%w: got %v", synth.ErrInvalidDistortion, d)
	}
	return nil
}
