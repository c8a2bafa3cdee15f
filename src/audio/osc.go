package audio

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jinjor/morph-synth/src/synth"
)

// ----- OSC Params ----- //

type oscParams struct {
	volume      float64 // 0 ~ 1
	morph       float64 // 0 ~ 1
	sineMorph   *synth.KeyframeCurve
	triMorph    *synth.KeyframeCurve
	sawMorph    *synth.KeyframeCurve
	squareMorph *synth.KeyframeCurve
}
type oscJSON struct {
	Volume      float64        `json:"volume"`
	Morph       float64        `json:"morph"`
	SineMorph   []keyframeJSON `json:"sineMorph"`
	TriMorph    []keyframeJSON `json:"triMorph"`
	SawMorph    []keyframeJSON `json:"sawMorph"`
	SquareMorph []keyframeJSON `json:"squareMorph"`
}

// newOscParams cross-fades sine -> triangle -> saw -> square as morph goes 0 -> 1.
func newOscParams() *oscParams {
	return &oscParams{
		volume:      0.5,
		morph:       0,
		sineMorph:   mustCurve(synth.Keyframe{Time: 0, Value: 1}, synth.Keyframe{Time: 1.0 / 3, Value: 0}),
		triMorph:    mustCurve(synth.Keyframe{Time: 0, Value: 0}, synth.Keyframe{Time: 1.0 / 3, Value: 1}, synth.Keyframe{Time: 2.0 / 3, Value: 0}),
		sawMorph:    mustCurve(synth.Keyframe{Time: 1.0 / 3, Value: 0}, synth.Keyframe{Time: 2.0 / 3, Value: 1}, synth.Keyframe{Time: 1, Value: 0}),
		squareMorph: mustCurve(synth.Keyframe{Time: 2.0 / 3, Value: 0}, synth.Keyframe{Time: 1, Value: 1}),
	}
}

func (o *oscParams) applyJSON(data json.RawMessage) error {
	var j oscJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to oscParams: %w", err)
	}
	next := *o
	var err error
	if next.sineMorph, err = optionalCurve(j.SineMorph, o.sineMorph); err != nil {
		return fmt.Errorf("sineMorph: %w", err)
	}
	if next.triMorph, err = optionalCurve(j.TriMorph, o.triMorph); err != nil {
		return fmt.Errorf("triMorph: %w", err)
	}
	if next.sawMorph, err = optionalCurve(j.SawMorph, o.sawMorph); err != nil {
		return fmt.Errorf("sawMorph: %w", err)
	}
	if next.squareMorph, err = optionalCurve(j.SquareMorph, o.squareMorph); err != nil {
		return fmt.Errorf("squareMorph: %w", err)
	}
	if err := checkUnit("volume", j.Volume); err != nil {
		return err
	}
	if err := checkUnit("morph", j.Morph); err != nil {
		return err
	}
	next.volume = j.Volume
	next.morph = j.Morph
	*o = next
	return nil
}
func (o *oscParams) toJSON() json.RawMessage {
	return toRawMessage(&oscJSON{
		Volume:      o.volume,
		Morph:       o.morph,
		SineMorph:   curveToJSON(o.sineMorph),
		TriMorph:    curveToJSON(o.triMorph),
		SawMorph:    curveToJSON(o.sawMorph),
		SquareMorph: curveToJSON(o.squareMorph),
	})
}
func (o *oscParams) set(key string, value string) error {
	switch key {
	case "volume", "morph":
		v, err := parseUnit(key, value)
		if err != nil {
			return err
		}
		if key == "volume" {
			o.volume = v
		} else {
			o.morph = v
		}
	case "sine_morph", "tri_morph", "saw_morph", "square_morph":
		c, err := parseCurve(value)
		if err != nil {
			return err
		}
		switch key {
		case "sine_morph":
			o.sineMorph = c
		case "tri_morph":
			o.triMorph = c
		case "saw_morph":
			o.sawMorph = c
		case "square_morph":
			o.squareMorph = c
		}
	default:
		return fmt.Errorf("unknown osc key %v", key)
	}
	return nil
}

// ----- Noise Params ----- //

type noiseParams struct {
	volume float64 // 0 ~ 1
}
type noiseJSON struct {
	Volume float64 `json:"volume"`
}

func (n *noiseParams) applyJSON(data json.RawMessage) error {
	var j noiseJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to noiseParams: %w", err)
	}
	if err := checkUnit("volume", j.Volume); err != nil {
		return err
	}
	n.volume = j.Volume
	return nil
}
func (n *noiseParams) toJSON() json.RawMessage {
	return toRawMessage(&noiseJSON{Volume: n.volume})
}
func (n *noiseParams) set(key string, value string) error {
	switch key {
	case "volume":
		v, err := parseUnit(key, value)
		if err != nil {
			return err
		}
		n.volume = v
	default:
		return fmt.Errorf("unknown noise key %v", key)
	}
	return nil
}

// ----- Helpers ----- //

func mustCurve(keys ...synth.Keyframe) *synth.KeyframeCurve {
	c, err := synth.NewKeyframeCurve(keys...)
	if err != nil {
		panic(err)
	}
	return c
}

func checkUnit(key string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%s should be in [0, 1], got %v", key, v)
	}
	return nil
}

func parseUnit(key string, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if err := checkUnit(key, v); err != nil {
		return 0, err
	}
	return v, nil
}
