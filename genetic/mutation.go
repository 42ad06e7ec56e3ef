package genetic

import (
	"fmt"
	"math/rand/v2"
)

// MutationMethod perturbs a chromosome in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, child Chromosome)
}

// GaussianMutation adds a random offset to genes.
// The offset is drawn uniformly from [-Coefficient, Coefficient].
type GaussianMutation struct {
	// Chance is the probability that a single gene gets mutated, in [0, 1].
	Chance float32
	// Coefficient scales the offset added to a mutated gene.
	Coefficient float32
}

// NewGaussianMutation validates chance and returns the operator.
func NewGaussianMutation(chance, coefficient float32) (GaussianMutation, error) {
	if !(chance >= 0 && chance <= 1) {
		return GaussianMutation{}, fmt.Errorf("mutation chance must be between 0 and 1, got %v", chance)
	}
	return GaussianMutation{Chance: chance, Coefficient: coefficient}, nil
}

// Mutate consumes one draw per untouched gene and two per mutated gene.
func (m GaussianMutation) Mutate(rng *rand.Rand, child Chromosome) {
	for i := range child {
		if rng.Float32() < m.Chance {
			// The conversion rounds the product so it is never fused into the add.
			child[i] += float32(uniformSigned(rng) * m.Coefficient)
		}
	}
}
