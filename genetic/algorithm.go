package genetic

import (
	"fmt"
	"math/rand/v2"
)

// GeneticAlgorithm produces successive generations from scored populations.
// It owns one strategy per role and is stateless between Evolve calls.
type GeneticAlgorithm[I Individual] struct {
	selection SelectionMethod[I]
	crossover CrossoverMethod
	mutation  MutationMethod
	create    CreateFunc[I]
}

// NewGeneticAlgorithm wires the three strategies together with the constructor used for offspring.
func NewGeneticAlgorithm[I Individual](
	selection SelectionMethod[I],
	crossover CrossoverMethod,
	mutation MutationMethod,
	create CreateFunc[I],
) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
		create:    create,
	}
}

// Evolve builds a new population of the same size and returns it together with
// statistics over the input population.
//
// For each output slot, in order, it selects parent A, selects parent B (possibly the
// same individual), crosses them over and mutates the child before handing it to the
// create function. The rng is consumed in exactly that order, so a given seed and
// population always yield the same result. Any error aborts the whole generation.
//
// Every member must carry the same, non-zero number of genes.
func (ga *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, Statistics, error) {
	if len(population) == 0 {
		return nil, Statistics{}, ErrEmptyPopulation
	}
	if err := checkGenomes(population); err != nil {
		return nil, Statistics{}, err
	}

	newPopulation := make([]I, len(population))
	for slot := range newPopulation {
		parentA, err := ga.selection.Select(rng, population)
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("selecting first parent for slot %d: %w", slot, err)
		}
		parentB, err := ga.selection.Select(rng, population)
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("selecting second parent for slot %d: %w", slot, err)
		}

		child, err := ga.crossover.Crossover(rng, parentA.Chromosome(), parentB.Chromosome())
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("crossover for slot %d: %w", slot, err)
		}
		ga.mutation.Mutate(rng, child)

		newPopulation[slot] = ga.create(child)
	}

	stats, err := NewStatistics(population)
	if err != nil {
		return nil, Statistics{}, fmt.Errorf("computing statistics: %w", err)
	}
	return newPopulation, stats, nil
}

// checkGenomes verifies that every member carries the same, non-zero number of genes.
func checkGenomes[I Individual](population []I) error {
	genes := population[0].Chromosome().Len()
	if genes == 0 {
		return fmt.Errorf("individual 0: %w", ErrEmptyChromosome)
	}
	for i, ind := range population[1:] {
		if n := ind.Chromosome().Len(); n != genes {
			return fmt.Errorf("individual %d has %d genes, individual 0 has %d: %w", i+1, n, genes, ErrLengthMismatch)
		}
	}
	return nil
}
