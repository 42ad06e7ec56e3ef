package genetic

import (
	"io"
	"log/slog"
)

// testIndividual scores itself by the sum of its genes, floored at zero so it
// stays a valid roulette-wheel weight.
type testIndividual struct {
	chromosome Chromosome
	fitness    float32
}

func newTestIndividual(c Chromosome) *testIndividual {
	return &testIndividual{chromosome: c, fitness: max(0, sum32(c))}
}

func scored(fitness float32, genes ...float32) *testIndividual {
	return &testIndividual{chromosome: NewChromosome(genes...), fitness: fitness}
}

func (t *testIndividual) Chromosome() Chromosome { return t.chromosome }
func (t *testIndividual) Fitness() float32       { return t.fitness }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
