package audio

import (
	"math"
	"testing"
)

func expectEqual(t *testing.T, actual, expected interface{}) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func expectNearlyEqual(t *testing.T, actual, expected float64) {
	t.Helper()
	if math.Abs(actual-expected) > 0.0001 {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func TestFFT(t *testing.T) {
	fft := NewFFT(8)
	x := []float64{0, 0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25}
	fft.CalcAbs(x)
	expectNearlyEqual(t, x[0], 4)
	expectNearlyEqual(t, x[1], 1+math.Sqrt(2)/2)
	expectNearlyEqual(t, x[2], 0)
	expectNearlyEqual(t, x[3], 1-math.Sqrt(2)/2)
	expectNearlyEqual(t, x[4], 0)
	expectNearlyEqual(t, x[5], 1-math.Sqrt(2)/2)
	expectNearlyEqual(t, x[6], 0)
	expectNearlyEqual(t, x[7], 1+math.Sqrt(2)/2)
}

func TestFFTAbs(t *testing.T) {
	fft := NewFFT(8)
	x := make([]float64, 8)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}
	fft.CalcAbs(x)
	expectNearlyEqual(t, x[0], 0)
	expectNearlyEqual(t, x[1], 4)
	expectNearlyEqual(t, x[2], 0)
	expectNearlyEqual(t, x[7], 4)

	// the work buffer must not leak between calls
	y := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	fft.CalcAbs(y)
	expectNearlyEqual(t, y[0], 8)
	expectNearlyEqual(t, y[1], 0)
}

func TestFFTLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for length 12")
		}
	}()
	NewFFT(12)
}

func TestHan(t *testing.T) {
	x := []float64{1, 1, 1, 1}
	Han(x)
	expectNearlyEqual(t, x[0], 0)
	expectNearlyEqual(t, x[1], 0.5)
	expectNearlyEqual(t, x[2], 1)
	expectNearlyEqual(t, x[3], 0.5)
}
