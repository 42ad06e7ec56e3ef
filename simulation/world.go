package simulation

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// World is the unit square with its animals and food.
type World struct {
	Animals []*Animal
	Foods   []Food
}

// RandomWorld creates PopulationSize random animals followed by Foods random food items.
func RandomWorld(rng *rand.Rand, cfg *Config) (*World, error) {
	animals := make([]*Animal, cfg.GA.Evolution.PopulationSize)
	for i := range animals {
		a, err := RandomAnimal(rng, cfg)
		if err != nil {
			return nil, err
		}
		animals[i] = a
	}

	foods := make([]Food, cfg.World.Foods)
	for i := range foods {
		foods[i] = RandomFood(rng)
	}
	return &World{Animals: animals, Foods: foods}, nil
}

// scatterFood moves every food item to a new random position.
func (w *World) scatterFood(rng *rand.Rand) {
	for i := range w.Foods {
		w.Foods[i] = RandomFood(rng)
	}
}

// processCollisions lets animals eat food within radius. Eaten food reappears elsewhere.
// Animals are checked in order, so when two reach the same food the first one eats it.
func (w *World) processCollisions(rng *rand.Rand, radius float64) {
	for _, a := range w.Animals {
		for i := range w.Foods {
			if r2.Norm(r2.Sub(a.Position, w.Foods[i].Position)) <= radius {
				a.Satiation++
				w.Foods[i] = RandomFood(rng)
			}
		}
	}
}

func (w *World) processBrains(cfg WorldConfig) error {
	for _, a := range w.Animals {
		if err := a.Think(w.Foods, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) processMovements() {
	for _, a := range w.Animals {
		a.Move()
	}
}
