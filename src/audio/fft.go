package audio

import (
	"math/cmplx"

	"github.com/ktye/fft"
)

// ----- FFT ----- //

// FFT keeps precomputed tables and a work buffer, so an instance must not be shared
// between goroutines.
type FFT struct {
	fft  fft.FFT
	work []complex128
}

// NewFFT ... length must be a power of two.
func NewFFT(length int) *FFT {
	if length <= 0 || length&(length-1) != 0 {
		panic("FFT length should be a power of two")
	}
	f, err := fft.New(length)
	if err != nil {
		panic(err)
	}
	return &FFT{
		fft:  f,
		work: make([]complex128, length),
	}
}

func (f *FFT) load(x []float64) []complex128 {
	if len(x) != len(f.work) {
		panic("unexpected FFT input length")
	}
	for i, v := range x {
		f.work[i] = complex(v, 0)
	}
	f.work = f.fft.Transform(f.work)
	return f.work
}

// CalcAbs replaces x with the magnitude of its transform.
func (f *FFT) CalcAbs(x []float64) {
	for i, c := range f.load(x) {
		x[i] = cmplx.Abs(c)
	}
}
