package genetic

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// NewRand creates a deterministic ChaCha8-backed generator from a 64-bit seed.
// The seed fills the first 8 bytes of the key (little endian), the rest is zero,
// so seed 0 matches a zeroed ChaCha8 key.
func NewRand(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

// uniformSigned draws a value uniformly from [-1, 1) using a single Float32 draw.
func uniformSigned(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}

// sum32 accumulates values strictly left to right in float32.
func sum32(values []float32) float32 {
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum
}

// widen converts float32 values to float64 for the gonum helpers.
func widen(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// isValidFitness reports whether f can be used as a roulette-wheel weight.
func isValidFitness(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
