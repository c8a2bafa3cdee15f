package audio

import "math"

// ----- Transition Kind ----- //

const (
	transitionNone = iota
	transitionLinear
	transitionExponential
)

// ----- Transitive Value ----- //

// transitiveValue glides towards a target so that parameter jumps do not click.
type transitiveValue struct {
	kind         int
	duration     float64 // ms
	endThreshold float64
	from         float64
	target       float64
	value        float64
	pos          int
}

func newTransitiveValue() *transitiveValue {
	return &transitiveValue{}
}

// init jumps to value immediately.
func (tv *transitiveValue) init(value float64) {
	*tv = transitiveValue{value: value, target: value}
}

func (tv *transitiveValue) linear(duration float64, target float64) {
	tv.start(transitionLinear, duration, target, 0)
}

// exponential reaches 63% of the way after duration and ends within endThreshold.
func (tv *transitiveValue) exponential(duration float64, target float64, endThreshold float64) {
	tv.start(transitionExponential, duration, target, endThreshold)
}

func (tv *transitiveValue) start(kind int, duration, target, endThreshold float64) {
	if duration <= 0 {
		tv.init(target)
		return
	}
	tv.kind = kind
	tv.duration = duration
	tv.endThreshold = endThreshold
	tv.from = tv.value
	tv.target = target
	tv.pos = 0
}

// step advances one sample and reports whether the transition ended.
func (tv *transitiveValue) step() bool {
	if tv.kind == transitionNone {
		return false
	}
	t := float64(tv.pos) * secPerSample * 1000 / tv.duration
	switch tv.kind {
	case transitionLinear:
		if t >= 1 {
			tv.init(tv.target)
			return true
		}
		tv.value = t*tv.target + (1-t)*tv.from
	case transitionExponential:
		tv.value = tv.target + (tv.from-tv.target)*math.Exp(-t)
		if math.Abs(tv.value-tv.target) < tv.endThreshold {
			tv.init(tv.target)
			return true
		}
	}
	tv.pos++
	return false
}
