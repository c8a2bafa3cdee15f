package audio

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/jinjor/morph-synth/src/synth"
)

// ----- LFO Params ----- //

type lfoParams struct {
	curve       *synth.KeyframeCurve
	duration    float64 // sec
	destination int
	amount      float64
	randomPhase bool
}

type lfoJSON struct {
	Curve       []keyframeJSON `json:"curve"`
	Duration    float64        `json:"duration"`
	Destination string         `json:"destination"`
	Amount      float64        `json:"amount"`
	RandomPhase bool           `json:"randomPhase"`
}

func newLfoParams() *lfoParams {
	return &lfoParams{
		curve: mustCurve(
			synth.Keyframe{Time: 0, Value: 0.5},
			synth.Keyframe{Time: 0.25, Value: 1},
			synth.Keyframe{Time: 0.75, Value: 0},
			synth.Keyframe{Time: 1, Value: 0.5},
		),
		duration:    4,
		destination: destNone,
		amount:      0,
		randomPhase: true,
	}
}

func (l *lfoParams) applyJSON(data json.RawMessage) error {
	var j lfoJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to apply JSON to lfoParams: %w", err)
	}
	c, err := optionalCurve(j.Curve, l.curve)
	if err != nil {
		return fmt.Errorf("curve: %w", err)
	}
	if err := checkDuration(j.Duration); err != nil {
		return err
	}
	if err := checkAmount(j.Amount); err != nil {
		return err
	}
	dest := destNone
	if j.Destination != "" {
		if dest, err = destinationFromString(j.Destination); err != nil {
			return err
		}
	}
	l.curve = c
	l.duration = j.Duration
	l.destination = dest
	l.amount = j.Amount
	l.randomPhase = j.RandomPhase
	return nil
}
func (l *lfoParams) toJSON() json.RawMessage {
	return toRawMessage(&lfoJSON{
		Curve:       curveToJSON(l.curve),
		Duration:    l.duration,
		Destination: destinationToString(l.destination),
		Amount:      l.amount,
		RandomPhase: l.randomPhase,
	})
}

func (l *lfoParams) set(key string, value string) error {
	switch key {
	case "curve":
		c, err := parseCurve(value)
		if err != nil {
			return err
		}
		l.curve = c
	case "duration":
		value, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		if err := checkDuration(value); err != nil {
			return err
		}
		l.duration = value
	case "destination":
		dest, err := destinationFromString(value)
		if err != nil {
			return err
		}
		l.destination = dest
	case "amount":
		value, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		if err := checkAmount(value); err != nil {
			return err
		}
		l.amount = value
	case "random_phase":
		l.randomPhase = value == "true"
	default:
		return fmt.Errorf("unknown lfo key %v", key)
	}
	return nil
}

func checkAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("amount should be finite, got %v", amount)
	}
	return nil
}
