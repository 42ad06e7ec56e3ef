package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/baldhumanity/shorelark-go/genetic"
	"gonum.org/v1/gonum/spatial/r2"
)

// Animal is a bird-like agent steering towards food.
type Animal struct {
	Position  r2.Vec
	Rotation  float64 // Radians, 0 points along +X
	Speed     float64
	Eye       Eye
	Brain     *Brain
	Satiation int // Food eaten during the current generation
}

// RandomAnimal places an animal at a random position and rotation with a random brain.
// Draws: x, y, rotation, then the brain weights.
func RandomAnimal(rng *rand.Rand, cfg *Config) (*Animal, error) {
	eye := NewEye(cfg.Eye)
	position, rotation := randomPose(rng)
	brain, err := RandomBrain(rng, eye)
	if err != nil {
		return nil, err
	}
	return newAnimal(position, rotation, eye, brain, cfg), nil
}

// AnimalFromChromosome places an animal at a random position with a brain decoded from c.
func AnimalFromChromosome(rng *rand.Rand, c genetic.Chromosome, cfg *Config) (*Animal, error) {
	eye := NewEye(cfg.Eye)
	position, rotation := randomPose(rng)
	brain, err := BrainFromChromosome(c, eye)
	if err != nil {
		return nil, err
	}
	return newAnimal(position, rotation, eye, brain, cfg), nil
}

func newAnimal(position r2.Vec, rotation float64, eye Eye, brain *Brain, cfg *Config) *Animal {
	return &Animal{
		Position: position,
		Rotation: rotation,
		Speed:    (cfg.World.SpeedMin + cfg.World.SpeedMax) / 2,
		Eye:      eye,
		Brain:    brain,
	}
}

func randomPose(rng *rand.Rand) (r2.Vec, float64) {
	position := randomPosition(rng)
	rotation := rng.Float64() * 2 * math.Pi
	return position, rotation
}

// Direction returns the unit vector the animal is facing.
func (a *Animal) Direction() r2.Vec {
	return r2.Vec{X: math.Cos(a.Rotation), Y: math.Sin(a.Rotation)}
}

// Think updates speed and rotation from what the animal currently sees.
func (a *Animal) Think(foods []Food, world WorldConfig) error {
	vision := a.Eye.ProcessVision(a.Position, a.Rotation, foods)
	speed, rotation, err := a.Brain.Propagate(vision, world)
	if err != nil {
		return err
	}
	a.Speed = clamp(a.Speed+speed, world.SpeedMin, world.SpeedMax)
	a.Rotation = math.Mod(a.Rotation+rotation, 2*math.Pi)
	return nil
}

// Move advances the animal along its heading, wrapping around the unit square.
func (a *Animal) Move() {
	next := r2.Add(a.Position, r2.Scale(a.Speed, a.Direction()))
	a.Position = r2.Vec{X: wrapUnit(next.X), Y: wrapUnit(next.Y)}
}

// wrapUnit maps v into [0, 1).
func wrapUnit(v float64) float64 {
	w := v - math.Floor(v)
	if w >= 1 {
		return 0
	}
	return w
}
