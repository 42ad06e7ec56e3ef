package simulation

import "github.com/baldhumanity/shorelark-go/genetic"

// AnimalIndividual is the genetic view of an animal: its brain's genes and how much it ate.
type AnimalIndividual struct {
	fitness    float32
	chromosome genetic.Chromosome
}

// IndividualFromAnimal scores an animal by its satiation.
func IndividualFromAnimal(a *Animal) *AnimalIndividual {
	return &AnimalIndividual{
		fitness:    float32(a.Satiation),
		chromosome: a.Brain.Chromosome(),
	}
}

// NewAnimalIndividual wraps a child chromosome that has not been evaluated yet.
// It is the genetic.CreateFunc used by the simulation.
func NewAnimalIndividual(c genetic.Chromosome) *AnimalIndividual {
	return &AnimalIndividual{chromosome: c}
}

// Chromosome returns the brain genes.
func (i *AnimalIndividual) Chromosome() genetic.Chromosome {
	return i.chromosome
}

// Fitness returns the food eaten during the evaluated generation.
func (i *AnimalIndividual) Fitness() float32 {
	return i.fitness
}
