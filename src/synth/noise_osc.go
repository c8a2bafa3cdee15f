package synth

// NoiseOsc is a white noise source built on Rand.
type NoiseOsc struct {
	volume float64
	pos    uint32
}

// NewNoiseOsc ...
func NewNoiseOsc(volume float64) *NoiseOsc {
	return &NoiseOsc{volume: clamp(volume, 0, 1)}
}

// SetVolume clamps v into [0, 1].
func (n *NoiseOsc) SetVolume(v float64) { n.volume = clamp(v, 0, 1) }

// Run returns the next noise sample scaled by volume. Values lie in [0, volume).
func (n *NoiseOsc) Run() float64 {
	n.pos++
	return Rand(float64(n.pos)) * n.volume
}
