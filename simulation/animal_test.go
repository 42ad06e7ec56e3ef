package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/baldhumanity/shorelark-go/genetic"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.GA.Evolution.PopulationSize = 6
	cfg.GA.Mutation.Chance = 0.2
	cfg.GA.Mutation.Coefficient = 0.3
	cfg.World.Foods = 10
	cfg.World.GenerationLength = 20
	cfg.World.EatRadius = 0.05
	cfg.Eye.Cells = 3
	return cfg
}

func TestBrainSizes(t *testing.T) {
	assert.Equal(t, []int{9, 18, 2}, BrainSizes(NewEye(DefaultConfig().Eye)))
	assert.Equal(t, []int{3, 6, 2}, BrainSizes(Eye{Cells: 3}))
}

func TestBrainChromosomeRoundTrip(t *testing.T) {
	eye := NewEye(testConfig().Eye)
	brain, err := RandomBrain(genetic.NewRand(1), eye)
	require.NoError(t, err)

	decoded, err := BrainFromChromosome(brain.Chromosome(), eye)
	require.NoError(t, err)
	assert.Equal(t, brain.Network().Weights(), decoded.Network().Weights())

	_, err = BrainFromChromosome(brain.Chromosome()[:5], eye)
	assert.Error(t, err)
}

func TestBrainPropagateStaysWithinAcceleration(t *testing.T) {
	cfg := testConfig()
	eye := NewEye(cfg.Eye)
	rng := genetic.NewRand(2)

	for range 50 {
		brain, err := RandomBrain(rng, eye)
		require.NoError(t, err)

		vision := make([]float32, eye.Cells)
		for i := range vision {
			vision[i] = rng.Float32() * 2
		}
		speed, rotation, err := brain.Propagate(vision, cfg.World)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(speed), cfg.World.SpeedAccel)
		assert.LessOrEqual(t, math.Abs(rotation), cfg.World.RotationAccel)
	}

	brain, err := RandomBrain(rng, eye)
	require.NoError(t, err)
	_, _, err = brain.Propagate(make([]float32, eye.Cells+1), cfg.World)
	assert.Error(t, err)
}

func TestAnimalMoveWrapsAround(t *testing.T) {
	a := &Animal{Position: r2.Vec{X: 0.999, Y: 0.5}, Rotation: 0, Speed: 0.005}
	a.Move()
	assert.InDelta(t, 0.004, a.Position.X, 1e-9)
	assert.InDelta(t, 0.5, a.Position.Y, 1e-9)

	a = &Animal{Position: r2.Vec{X: 0.5, Y: 0.001}, Rotation: -math.Pi / 2, Speed: 0.005}
	a.Move()
	assert.InDelta(t, 0.5, a.Position.X, 1e-9)
	assert.InDelta(t, 0.996, a.Position.Y, 1e-9)
}

func TestWrapUnit(t *testing.T) {
	assert.Equal(t, 0.75, wrapUnit(-0.25))
	assert.Equal(t, 0.0, wrapUnit(1))
	assert.Equal(t, 0.5, wrapUnit(0.5))
	assert.InDelta(t, 0.25, wrapUnit(2.25), 1e-12)
}

func TestAnimalThinkKeepsSpeedInBounds(t *testing.T) {
	cfg := testConfig()
	rng := genetic.NewRand(3)

	for range 20 {
		a, err := RandomAnimal(rng, cfg)
		require.NoError(t, err)
		assert.Equal(t, (cfg.World.SpeedMin+cfg.World.SpeedMax)/2, a.Speed)

		foods := []Food{RandomFood(rng), RandomFood(rng)}
		for range 10 {
			require.NoError(t, a.Think(foods, cfg.World))
			assert.GreaterOrEqual(t, a.Speed, cfg.World.SpeedMin)
			assert.LessOrEqual(t, a.Speed, cfg.World.SpeedMax)
			assert.Less(t, math.Abs(a.Rotation), 2*math.Pi)
		}
	}
}

func TestAnimalFromChromosome(t *testing.T) {
	cfg := testConfig()
	rng := genetic.NewRand(4)

	parent, err := RandomAnimal(rng, cfg)
	require.NoError(t, err)

	child, err := AnimalFromChromosome(rng, parent.Brain.Chromosome(), cfg)
	require.NoError(t, err)
	assert.True(t, child.Brain.Chromosome().Equal(parent.Brain.Chromosome()))
	assert.Zero(t, child.Satiation)
	assert.GreaterOrEqual(t, child.Position.X, 0.0)
	assert.Less(t, child.Position.X, 1.0)
}

func TestIndividualFromAnimal(t *testing.T) {
	a, err := RandomAnimal(genetic.NewRand(5), testConfig())
	require.NoError(t, err)
	a.Satiation = 7

	ind := IndividualFromAnimal(a)
	assert.Equal(t, float32(7), ind.Fitness())
	assert.True(t, ind.Chromosome().Equal(a.Brain.Chromosome()))

	fresh := NewAnimalIndividual(ind.Chromosome())
	assert.Zero(t, fresh.Fitness())
}
