package nn

import (
	"fmt"

	"github.com/baldhumanity/shorelark-go/genetic"
)

// FromChromosome decodes a network from a chromosome's genes.
// Unlike NetworkFromWeights the chromosome must hold exactly ParamCount(sizes) genes.
func FromChromosome(sizes []int, c genetic.Chromosome) (*Network, error) {
	if want := ParamCount(sizes); c.Len() != want {
		return nil, fmt.Errorf("chromosome has %d genes, topology %v needs %d: %w", c.Len(), sizes, want, ErrTopology)
	}
	return NetworkFromWeights(sizes, NewSliceStream(c))
}

// Chromosome encodes the network's parameters as a chromosome.
func (n *Network) Chromosome() genetic.Chromosome {
	return genetic.ChromosomeFromSeq(n.All())
}
