package audio

// ----- Modulation ----- //

// modulation collects what the LFO does to a voice during one sample.
type modulation struct {
	volumeRatio    float64
	morphShift     float64
	cutoffShift    float64
	resonanceShift float64
}

func (m *modulation) init() {
	m.volumeRatio = 1.0
	m.morphShift = 0.0
	m.cutoffShift = 0.0
	m.resonanceShift = 0.0
}

// apply adds an LFO value (usually 0 ~ 1) scaled by amount to the destination.
func (m *modulation) apply(destination int, value float64, amount float64) {
	switch destination {
	case destVolume:
		// amount=1 follows the LFO fully, amount=0 leaves the volume alone
		m.volumeRatio *= 1 - amount + amount*value
	case destMorph:
		m.morphShift += value * amount
	case destCutoff:
		m.cutoffShift += value * amount
	case destResonance:
		m.resonanceShift += value * amount
	}
}
