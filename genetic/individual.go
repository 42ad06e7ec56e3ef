package genetic

import "errors"

var (
	// ErrEmptyPopulation is returned when an operation needs at least one individual.
	ErrEmptyPopulation = errors.New("population is empty")
	// ErrLengthMismatch is returned when chromosomes of one population differ in length.
	ErrLengthMismatch = errors.New("chromosome length mismatch")
	// ErrEmptyChromosome is returned when an individual carries no genes.
	ErrEmptyChromosome = errors.New("chromosome has no genes")
	// ErrInvalidFitness is returned for negative, NaN or infinite fitness values.
	ErrInvalidFitness = errors.New("invalid fitness")
)

// Individual is a scored candidate solution supplied by the caller.
// The algorithm only reads its chromosome and fitness; how fitness is computed
// (for example by decoding the chromosome into an nn.Network) is up to the implementation.
type Individual interface {
	Chromosome() Chromosome
	Fitness() float32
}

// CreateFunc builds a new, not yet evaluated individual from a child chromosome.
type CreateFunc[I Individual] func(Chromosome) I

// fitnesses collects the fitness of every member in population order.
func fitnesses[I Individual](population []I) []float32 {
	out := make([]float32, len(population))
	for i, ind := range population {
		out[i] = ind.Fitness()
	}
	return out
}
