package synth

import (
	"math"
	"testing"
)

func TestRandRange(t *testing.T) {
	for i := -5000; i < 5000; i++ {
		seed := float64(i) * 0.37
		r := Rand(seed)
		if r < 0 || r >= 1 {
			t.Fatalf("Rand(%v) = %v is out of [0, 1)", seed, r)
		}
	}
}

func TestRandIsRepeatable(t *testing.T) {
	for _, seed := range []float64{0, 1, 2.5, -3, 12345, 1 << 20} {
		a := Rand(seed)
		b := Rand(seed)
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Errorf("Rand(%v) differs between calls: %v, %v", seed, a, b)
		}
	}
}

func TestRandZeroSeed(t *testing.T) {
	expectEqual(t, Rand(0), 0.0)
}

func TestRandSpreads(t *testing.T) {
	// rough uniformity over ten buckets
	buckets := make([]int, 10)
	n := 10000
	for i := 1; i <= n; i++ {
		buckets[int(Rand(float64(i))*10)]++
	}
	for i, c := range buckets {
		if c < n/20 || c > n/5 {
			t.Errorf("bucket %d has %d samples", i, c)
		}
	}
}
