package audio

import (
	"encoding/json"
	"fmt"

	"github.com/jinjor/morph-synth/src/synth"
)

// ----- Curve JSON ----- //

type keyframeJSON struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

func curveFromJSON(keys []keyframeJSON) (*synth.KeyframeCurve, error) {
	frames := make([]synth.Keyframe, len(keys))
	for i, k := range keys {
		frames[i] = synth.Keyframe{Time: k.Time, Value: k.Value}
	}
	return synth.NewKeyframeCurve(frames...)
}

func curveToJSON(c *synth.KeyframeCurve) []keyframeJSON {
	keys := c.Keys()
	out := make([]keyframeJSON, len(keys))
	for i, k := range keys {
		out[i] = keyframeJSON{Time: k.Time, Value: k.Value}
	}
	return out
}

// parseCurve reads a curve given as a command value, e.g. [{"time":0,"value":1}].
func parseCurve(value string) (*synth.KeyframeCurve, error) {
	var keys []keyframeJSON
	if err := json.Unmarshal([]byte(value), &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", synth.ErrInvalidCurve, err)
	}
	return curveFromJSON(keys)
}

// optionalCurve keeps current when the JSON field is absent.
func optionalCurve(keys []keyframeJSON, current *synth.KeyframeCurve) (*synth.KeyframeCurve, error) {
	if keys == nil {
		return current, nil
	}
	return curveFromJSON(keys)
}
