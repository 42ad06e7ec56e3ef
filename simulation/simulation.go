// Package simulation is a small 2D world in which animals with neural-network brains
// look for food. It drives the genetic package: each generation's satiation becomes
// fitness, and evolved chromosomes are decoded into the next generation's brains.
package simulation

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/baldhumanity/shorelark-go/genetic"
)

// Simulation advances a World step by step and evolves its animals at the end of each generation.
type Simulation struct {
	config     *Config
	world      *World
	ga         *genetic.GeneticAlgorithm[*AnimalIndividual]
	population *genetic.Population[*AnimalIndividual]
	age        int
	logger     *slog.Logger
}

// New creates a simulation with a random world. A nil logger falls back to slog.Default().
func New(rng *rand.Rand, config *Config, logger *slog.Logger) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	world, err := RandomWorld(rng, config)
	if err != nil {
		return nil, err
	}
	return newSimulation(config, world, 0, nil, logger)
}

// Restore resumes a simulation from a population loaded with genetic.LoadCheckpoint.
// Animals are rebuilt from the population's chromosomes in a fresh world.
func Restore(rng *rand.Rand, config *Config, population *genetic.Population[*AnimalIndividual], logger *slog.Logger) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	world := &World{Foods: make([]Food, config.World.Foods)}
	for _, m := range population.Members {
		a, err := AnimalFromChromosome(rng, m.Chromosome(), config)
		if err != nil {
			return nil, fmt.Errorf("restoring animal: %w", err)
		}
		world.Animals = append(world.Animals, a)
	}
	world.scatterFood(rng)
	return newSimulation(config, world, 0, population, logger)
}

func newSimulation(config *Config, world *World, age int, population *genetic.Population[*AnimalIndividual], logger *slog.Logger) (*Simulation, error) {
	if logger == nil {
		logger = slog.Default()
	}

	mutation, err := config.GA.NewMutation()
	if err != nil {
		return nil, err
	}
	ga := genetic.NewGeneticAlgorithm[*AnimalIndividual](
		genetic.NewRouletteWheelSelection[*AnimalIndividual](),
		genetic.UniformCrossover{},
		mutation,
		NewAnimalIndividual,
	)

	if population == nil {
		population, err = genetic.NewPopulation(individuals(world), logger)
		if err != nil {
			return nil, err
		}
	}

	return &Simulation{
		config:     config,
		world:      world,
		ga:         ga,
		population: population,
		age:        age,
		logger:     logger,
	}, nil
}

// World returns the current world.
func (s *Simulation) World() *World {
	return s.world
}

// Generation returns how many generations have been evolved.
func (s *Simulation) Generation() int {
	return s.population.Generation
}

// Age returns the number of steps taken in the current generation.
func (s *Simulation) Age() int {
	return s.age
}

// Population returns the population tracker holding history and the best brain so far.
func (s *Simulation) Population() *genetic.Population[*AnimalIndividual] {
	return s.population
}

// Step performs one tick: eating, thinking, moving. When the generation is over it
// evolves the animals and returns the statistics of the generation that just ended.
func (s *Simulation) Step(rng *rand.Rand) (*genetic.Statistics, error) {
	s.world.processCollisions(rng, s.config.World.EatRadius)
	if err := s.world.processBrains(s.config.World); err != nil {
		return nil, err
	}
	s.world.processMovements()

	s.age++
	if s.age > s.config.World.GenerationLength {
		stats, err := s.evolve(rng)
		if err != nil {
			return nil, err
		}
		return &stats, nil
	}
	return nil, nil
}

// Train steps until the current generation ends.
func (s *Simulation) Train(rng *rand.Rand) (genetic.Statistics, error) {
	for {
		stats, err := s.Step(rng)
		if err != nil {
			return genetic.Statistics{}, err
		}
		if stats != nil {
			return *stats, nil
		}
	}
}

// Reset replaces the world with a random one and forgets all evolution history.
func (s *Simulation) Reset(rng *rand.Rand) error {
	world, err := RandomWorld(rng, s.config)
	if err != nil {
		return err
	}
	population, err := genetic.NewPopulation(individuals(world), s.logger)
	if err != nil {
		return err
	}
	s.world = world
	s.population = population
	s.age = 0
	return nil
}

// evolve scores the animals, runs one generation of the genetic algorithm and
// rebuilds the world around the offspring.
func (s *Simulation) evolve(rng *rand.Rand) (genetic.Statistics, error) {
	s.age = 0

	s.population.Members = individuals(s.world)
	stats, err := s.population.Advance(rng, s.ga)
	if err != nil {
		return genetic.Statistics{}, err
	}

	animals := make([]*Animal, len(s.population.Members))
	for i, m := range s.population.Members {
		a, err := AnimalFromChromosome(rng, m.Chromosome(), s.config)
		if err != nil {
			return genetic.Statistics{}, fmt.Errorf("building offspring %d: %w", i, err)
		}
		animals[i] = a
	}
	s.world.Animals = animals
	s.world.scatterFood(rng)

	return stats, nil
}

// individuals scores every animal in the world.
func individuals(world *World) []*AnimalIndividual {
	out := make([]*AnimalIndividual, len(world.Animals))
	for i, a := range world.Animals {
		out[i] = IndividualFromAnimal(a)
	}
	return out
}
