package genetic

import (
	"iter"
	"math"
	"slices"
)

// Chromosome is an ordered sequence of real-valued genes.
// It is the unit crossover and mutation operate on. Any float32 value is a legal gene.
type Chromosome []float32

// NewChromosome creates a chromosome holding a copy of the given genes.
func NewChromosome(genes ...float32) Chromosome {
	return slices.Clone(Chromosome(genes))
}

// ChromosomeFromSeq collects every value yielded by seq, in order.
func ChromosomeFromSeq(seq iter.Seq[float32]) Chromosome {
	return Chromosome(slices.Collect(seq))
}

// Len returns the number of genes.
func (c Chromosome) Len() int {
	return len(c)
}

// Gene returns the gene at position i.
func (c Chromosome) Gene(i int) float32 {
	return c[i]
}

// All iterates over (position, gene) pairs.
func (c Chromosome) All() iter.Seq2[int, float32] {
	return slices.All(c)
}

// Values iterates over the genes in order. Used to flatten a chromosome into network weights.
func (c Chromosome) Values() iter.Seq[float32] {
	return slices.Values(c)
}

// Clone returns an independent copy.
func (c Chromosome) Clone() Chromosome {
	return slices.Clone(c)
}

// Equal reports whether both chromosomes hold bit-identical genes.
func (c Chromosome) Equal(other Chromosome) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if math.Float32bits(c[i]) != math.Float32bits(other[i]) {
			return false
		}
	}
	return true
}

// EqualApprox reports whether both chromosomes have the same length and every
// pair of genes differs by at most tol.
func (c Chromosome) EqualApprox(other Chromosome, tol float32) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if abs32(c[i]-other[i]) > tol {
			return false
		}
	}
	return true
}
