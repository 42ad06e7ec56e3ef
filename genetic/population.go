package genetic

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// FitnessFunc is provided by the caller to evaluate a generation.
// It receives the current members and returns them scored, in the same order.
type FitnessFunc[I Individual] func(members []I) ([]I, error)

// Champion is the best individual seen so far, kept by genetic content only.
type Champion struct {
	Generation int
	Fitness    float32
	Chromosome Chromosome
}

// Population holds the state of an evolution run across generations.
type Population[I Individual] struct {
	Members    []I
	Generation int
	Best       *Champion          // Best individual found so far
	History    []GenerationRecord // One record per completed generation

	logger *slog.Logger
}

// NewPopulation creates a population tracker over an initial, non-empty set of members.
// A nil logger falls back to slog.Default().
func NewPopulation[I Individual](members []I, logger *slog.Logger) (*Population[I], error) {
	if len(members) == 0 {
		return nil, ErrEmptyPopulation
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Population[I]{
		Members: members,
		logger:  logger,
	}, nil
}

// RandomMembers creates n individuals with genes drawn uniformly from [-1, 1).
// Draws happen member by member, gene by gene.
func RandomMembers[I Individual](rng *rand.Rand, n, genes int, create CreateFunc[I]) []I {
	members := make([]I, n)
	for i := range members {
		c := make(Chromosome, genes)
		for j := range c {
			c[j] = uniformSigned(rng)
		}
		members[i] = create(c)
	}
	return members
}

// RunGeneration evaluates the current members and then advances to the next generation.
func (p *Population[I]) RunGeneration(rng *rand.Rand, ga *GeneticAlgorithm[I], evaluate FitnessFunc[I]) (Statistics, error) {
	scored, err := evaluate(p.Members)
	if err != nil {
		return Statistics{}, fmt.Errorf("fitness evaluation failed in generation %d: %w", p.Generation+1, err)
	}
	if len(scored) != len(p.Members) {
		return Statistics{}, fmt.Errorf("fitness evaluation returned %d individuals, expected %d", len(scored), len(p.Members))
	}
	p.Members = scored
	return p.Advance(rng, ga)
}

// Advance evolves members that already carry their fitness.
// On error the population is left untouched.
func (p *Population[I]) Advance(rng *rand.Rand, ga *GeneticAlgorithm[I]) (Statistics, error) {
	start := time.Now()
	generation := p.Generation + 1

	next, stats, err := ga.Evolve(rng, p.Members)
	if err != nil {
		return Statistics{}, fmt.Errorf("evolution failed in generation %d: %w", generation, err)
	}

	p.trackBest(p.Members, generation)
	p.Members = next
	p.Generation = generation
	p.History = append(p.History, NewGenerationRecord(generation, stats))

	p.logger.Info("generation finished",
		slog.Int("generation", generation),
		slog.Float64("min_fitness", float64(stats.MinFitness())),
		slog.Float64("max_fitness", float64(stats.MaxFitness())),
		slog.Float64("avg_fitness", float64(stats.AvgFitness())),
		slog.Duration("duration", time.Since(start)),
	)
	return stats, nil
}

// trackBest records the fittest of the scored members if it beats the best seen so far.
func (p *Population[I]) trackBest(scored []I, generation int) {
	var best I
	found := false
	for _, m := range scored {
		if !found || m.Fitness() > best.Fitness() {
			best = m
			found = true
		}
	}
	if !found {
		return
	}
	if p.Best == nil || best.Fitness() > p.Best.Fitness {
		p.Best = &Champion{
			Generation: generation,
			Fitness:    best.Fitness(),
			Chromosome: best.Chromosome().Clone(),
		}
		p.logger.Debug("new best individual",
			slog.Int("generation", generation),
			slog.Float64("fitness", float64(p.Best.Fitness)),
		)
	}
}
