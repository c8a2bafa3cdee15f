package synth

import (
	"errors"
	"math"
	"testing"
)

func TestLowpassPassesDC(t *testing.T) {
	lp, err := NewLowpass(1, 0, 0)
	expectNoError(t, err)
	const c = 0.5
	var prev, out float64
	for i := 0; i < 200; i++ {
		prev = out
		out = lp.Run(c)
	}
	if math.Abs(out-prev) > 1e-12 {
		t.Errorf("output did not settle: %v -> %v", prev, out)
	}
	// the cascade has unity gain at DC
	if math.Abs(out-c) > 0.001 {
		t.Errorf("expected about %v, but got: %v", c, out)
	}
}

func TestLowpassStartsFromSilence(t *testing.T) {
	lp, err := NewLowpass(0.5, 0.9, 0.5)
	expectNoError(t, err)
	expectEqual(t, lp.Run(0), 0.0)
}

func TestLowpassFirstSample(t *testing.T) {
	lp, err := NewLowpass(0.5, 0.8, 0.25)
	expectNoError(t, err)
	f := 0.5 * 1.16
	x := 1.0 * 0.35013 * (f * f) * (f * f)
	out1 := x
	out2 := out1
	out3 := out2
	out4 := out3
	expectNearlyEqual(t, lp.Run(1), out4)
	expectNearlyEqual(t, lp.in4, lp.WaveShape(out3))
}

func TestLowpassIsStable(t *testing.T) {
	inputs := map[string]func(i int) float64{
		"square": func(i int) float64 {
			if (i/37)%2 == 0 {
				return 1
			}
			return -1
		},
		"nyquist": func(i int) float64 {
			if i%2 == 0 {
				return 1
			}
			return -1
		},
		"noise": func(i int) float64 { return Rand(float64(i))*2 - 1 },
		"impulse": func(i int) float64 {
			if i == 0 {
				return 1
			}
			return 0
		},
	}
	for name, input := range inputs {
		for _, cutoff := range []float64{0, 0.01, 0.1, 0.5, 1} {
			for _, res := range []float64{0, 0.5, 1} {
				for _, dist := range []float64{0, 0.25, 0.5, MaxDistortion} {
					lp, err := NewLowpass(cutoff, res, dist)
					expectNoError(t, err)
					for i := 0; i < 10000; i++ {
						v := lp.Run(input(i))
						if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1000 {
							t.Fatalf("%s cutoff=%v res=%v dist=%v: unstable output %v at %d", name, cutoff, res, dist, v, i)
						}
					}
				}
			}
		}
	}
}

func TestLowpassAttenuatesHighFrequencies(t *testing.T) {
	lp, err := NewLowpass(0.05, 0, 0)
	expectNoError(t, err)
	var peak float64
	for i := 0; i < 2000; i++ {
		in := 1.0
		if i%2 == 1 {
			in = -1
		}
		v := lp.Run(in)
		if i > 1000 {
			peak = math.Max(peak, math.Abs(v))
		}
	}
	if peak > 0.01 {
		t.Errorf("expected nyquist to be attenuated, peak was %v", peak)
	}
}

func TestWaveShape(t *testing.T) {
	lp, err := NewLowpass(0.5, 0, 0)
	expectNoError(t, err)
	expectEqual(t, lp.WaveShape(0.3), 0.3)

	expectNoError(t, lp.SetDistortion(0.5))
	// k = 2
	expectNearlyEqual(t, lp.WaveShape(0.5), 3*0.5/(1+2*0.5))
	expectNearlyEqual(t, lp.WaveShape(-0.5), -3*0.5/(1+2*0.5))
	expectNearlyEqual(t, lp.WaveShape(1), 1)

	expectNoError(t, lp.SetDistortion(MaxDistortion))
	expectFinite(t, lp.WaveShape(1e6))
}

func TestLowpassConfig(t *testing.T) {
	for _, d := range []float64{1, 1.5, -0.1, math.NaN()} {
		_, err := NewLowpass(0.5, 0.5, d)
		if !errors.Is(err, ErrInvalidDistortion) {
			t.Errorf("distortion %v: expected ErrInvalidDistortion, but got: %v", d, err)
		}
	}
	lp, err := NewLowpass(2, -1, 0.99)
	expectNoError(t, err)
	expectEqual(t, lp.Cutoff(), 1.0)
	expectEqual(t, lp.Resonance(), 0.0)
	expectEqual(t, lp.Distortion(), 0.99)
	if err := lp.SetDistortion(1); err == nil {
		t.Error("expected error for distortion 1")
	}
	expectEqual(t, lp.Distortion(), 0.99)
}

func BenchmarkLowpass(b *testing.B) {
	lp, err := NewLowpass(0.1, 0.8, 0.25)
	if err != nil {
		b.Fatal(err)
	}
	x := 1.0
	for i := 0; i < b.N; i++ {
		x = lp.Run(x)
	}
}

func TestLowpassIgnoresNaNSettings(t *testing.T) {
	lp, err := NewLowpass(0.5, 0.5, 0.5)
	expectNoError(t, err)
	lp.SetCutoff(math.NaN())
	lp.SetResonance(math.NaN())
	expectEqual(t, lp.Cutoff(), 0.0)
	expectEqual(t, lp.Resonance(), 0.0)
	expectFinite(t, lp.Run(1))
	lp.SetCutoff(0.5)
	for i := 0; i < 100; i++ {
		expectFinite(t, lp.Run(1))
	}
}
