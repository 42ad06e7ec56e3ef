package genetic

import (
	"fmt"
	"math/rand/v2"
)

// SelectionMethod picks one parent from a scored population.
type SelectionMethod[I Individual] interface {
	Select(rng *rand.Rand, population []I) (I, error)
}

// RouletteWheelSelection draws an individual with probability proportional to its fitness.
// When every fitness is zero it falls back to a uniform draw.
type RouletteWheelSelection[I Individual] struct{}

// NewRouletteWheelSelection returns a roulette-wheel selector for individuals of type I.
func NewRouletteWheelSelection[I Individual]() RouletteWheelSelection[I] {
	return RouletteWheelSelection[I]{}
}

// Select consumes exactly one value from rng.
func (RouletteWheelSelection[I]) Select(rng *rand.Rand, population []I) (I, error) {
	var zero I
	if len(population) == 0 {
		return zero, ErrEmptyPopulation
	}

	total := 0.0
	for i, ind := range population {
		f := ind.Fitness()
		if !isValidFitness(f) {
			return zero, fmt.Errorf("individual %d has fitness %v: %w", i, f, ErrInvalidFitness)
		}
		total += float64(f)
	}

	if total == 0 {
		return population[rng.IntN(len(population))], nil
	}

	spin := rng.Float64() * total
	acc := 0.0
	last := 0
	for i, ind := range population {
		f := float64(ind.Fitness())
		if f == 0 {
			continue
		}
		acc += f
		last = i
		if spin < acc {
			return ind, nil
		}
	}
	// Rounding can leave spin just above the accumulated total.
	return population[last], nil
}
