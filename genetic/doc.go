// Package genetic provides a generic genetic algorithm over float32 chromosomes.
//
// Callers supply an Individual implementation that scores a chromosome. Each call to
// GeneticAlgorithm.Evolve selects parents with a SelectionMethod, combines them with a
// CrossoverMethod and perturbs the child with a MutationMethod. All randomness comes from
// a caller-owned *rand.Rand, so a seed from NewRand reproduces a run exactly.
//
// The nn subpackage holds the feed-forward networks whose weights are usually evolved.
//
// Basic usage:
//
//	// Load configuration
//	config, err := genetic.LoadConfig("path/to/config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	mutation, err := config.NewMutation()
//	if err != nil {
//		log.Fatalf("Error creating mutation: %v", err)
//	}
//	ga := genetic.NewGeneticAlgorithm(
//		genetic.NewRouletteWheelSelection[*myIndividual](),
//		genetic.UniformCrossover{},
//		mutation,
//		newMyIndividual,
//	)
//
//	// Create a population of random individuals
//	rng := genetic.NewRand(config.Evolution.Seed)
//	members := genetic.RandomMembers(rng, config.Evolution.PopulationSize, genes, newMyIndividual)
//	pop, err := genetic.NewPopulation(members, nil)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	// Run generations with your fitness function
//	for i := 0; i < config.Evolution.Generations; i++ {
//		stats, err := pop.RunGeneration(rng, ga, evalIndividuals)
//		if err != nil {
//			log.Fatalf("Error running generation: %v", err)
//		}
//		if config.Solved(stats) {
//			fmt.Println("Solution found!")
//			break
//		}
//	}
package genetic
