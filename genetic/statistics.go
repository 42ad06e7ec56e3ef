package genetic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes the fitness distribution of a population.
// It is computed once and never changes afterwards.
type Statistics struct {
	minFitness    float32
	maxFitness    float32
	avgFitness    float32
	stdDevFitness float32
	size          int
}

// NewStatistics computes statistics over the fitness of a non-empty population.
func NewStatistics[I Individual](population []I) (Statistics, error) {
	if len(population) == 0 {
		return Statistics{}, ErrEmptyPopulation
	}
	return statisticsOf(fitnesses(population))
}

func statisticsOf(values []float32) (Statistics, error) {
	if len(values) == 0 {
		return Statistics{}, ErrEmptyPopulation
	}
	for i, v := range values {
		if !isValidFitness(v) {
			return Statistics{}, fmt.Errorf("individual %d has fitness %v: %w", i, v, ErrInvalidFitness)
		}
	}

	wide := widen(values)
	s := Statistics{
		minFitness: float32(floats.Min(wide)),
		maxFitness: float32(floats.Max(wide)),
		avgFitness: sum32(values) / float32(len(values)),
		size:       len(values),
	}
	if len(values) > 1 {
		s.stdDevFitness = float32(stat.StdDev(wide, nil))
	}
	return s, nil
}

// MinFitness returns the lowest fitness.
func (s Statistics) MinFitness() float32 { return s.minFitness }

// MaxFitness returns the highest fitness.
func (s Statistics) MaxFitness() float32 { return s.maxFitness }

// AvgFitness returns the arithmetic mean, summed in population order.
func (s Statistics) AvgFitness() float32 { return s.avgFitness }

// StdDevFitness returns the sample standard deviation (0 for a single individual).
func (s Statistics) StdDevFitness() float32 { return s.stdDevFitness }

// Len returns the size of the population the statistics were computed from.
func (s Statistics) Len() int { return s.size }

func (s Statistics) String() string {
	return fmt.Sprintf("min=%.2f, max=%.2f, avg=%.2f", s.minFitness, s.maxFitness, s.avgFitness)
}
