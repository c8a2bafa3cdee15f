package audio

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/jinjor/morph-synth/src/synth"
)

// ----- Envelope Params ----- //

/*
  [envelope]                 [release]
  1 +   ,--.                 1 +--.
    |  /    `-----------       |   `.
    | /                        |     `.
  0 +/-----+----------->     0 +-------`----->
    |duration|  hold           |duration|

  The envelope starts on note-on and holds its last value.
  The release starts on note-off and multiplies the envelope.
*/

type envelopeParams struct {
	curve    *synth.KeyframeCurve
	duration float64 // sec
}
type envelopeJSON struct {
	Curve    []keyframeJSON `json:"curve"`
	Duration float64        `json:"duration"`
}

func newEnvelopeParams() *envelopeParams {
	return &envelopeParams{
		curve:    mustCurve(synth.Keyframe{Time: 0, Value: 0}, synth.Keyframe{Time: 0.02, Value: 1}, synth.Keyframe{Time: 1, Value: 0.7}),
		duration: 0.5,
	}
}

func newReleaseParams() *envelopeParams {
	return &envelopeParams{
		curve:    synth.Linear(1, 0),
		duration: 0.3,
	}
}

func (e *envelopeParams) applyJSON(data json.RawMessage) error {
	var j envelopeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to envelopeParams: %w", err)
	}
	c, err := optionalCurve(j.Curve, e.curve)
	if err != nil {
		return fmt.Errorf("curve: %w", err)
	}
	if err := checkDuration(j.Duration); err != nil {
		return err
	}
	e.curve = c
	e.duration = j.Duration
	return nil
}
func (e *envelopeParams) toJSON() json.RawMessage {
	return toRawMessage(&envelopeJSON{
		Curve:    curveToJSON(e.curve),
		Duration: e.duration,
	})
}
func (e *envelopeParams) set(key string, value string) error {
	switch key {
	case "curve":
		c, err := parseCurve(value)
		if err != nil {
			return err
		}
		e.curve = c
	case "duration":
		value, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		if err := checkDuration(value); err != nil {
			return err
		}
		e.duration = value
	default:
		return fmt.Errorf("unknown envelope key %v", key)
	}
	return nil
}

func checkDuration(d float64) error {
	if !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: got %v", synth.ErrInvalidDuration, d)
	}
	return nil
}
