package genetic

import (
	"fmt"
	"math/rand/v2"
)

// CrossoverMethod combines two parent chromosomes into a new child chromosome.
// Implementations must not alias the parents' storage.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB Chromosome) (Chromosome, error)
}

// UniformCrossover takes each gene from parent A or parent B with equal probability.
type UniformCrossover struct{}

// Crossover draws one fair coin per gene position, in position order.
func (UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB Chromosome) (Chromosome, error) {
	if parentA.Len() != parentB.Len() {
		return nil, fmt.Errorf("parents have %d and %d genes: %w", parentA.Len(), parentB.Len(), ErrLengthMismatch)
	}

	child := make(Chromosome, parentA.Len())
	for i := range child {
		if rng.IntN(2) == 0 {
			child[i] = parentA[i]
		} else {
			child[i] = parentB[i]
		}
	}
	return child, nil
}
