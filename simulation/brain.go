package simulation

import (
	"fmt"
	"math/rand/v2"

	"github.com/baldhumanity/shorelark-go/genetic"
	"github.com/baldhumanity/shorelark-go/genetic/nn"
)

// Brain maps what an eye sees to changes in speed and rotation.
type Brain struct {
	network *nn.Network
}

// BrainSizes returns the network topology used for an eye: one input per cell,
// a hidden layer twice as wide, and two outputs.
func BrainSizes(eye Eye) []int {
	return []int{eye.Cells, 2 * eye.Cells, 2}
}

// RandomBrain creates a brain with random weights.
func RandomBrain(rng *rand.Rand, eye Eye) (*Brain, error) {
	network, err := nn.RandomNetwork(rng, BrainSizes(eye))
	if err != nil {
		return nil, fmt.Errorf("creating brain: %w", err)
	}
	return &Brain{network: network}, nil
}

// BrainFromChromosome decodes a brain from genes produced by Brain.Chromosome.
func BrainFromChromosome(c genetic.Chromosome, eye Eye) (*Brain, error) {
	network, err := nn.FromChromosome(BrainSizes(eye), c)
	if err != nil {
		return nil, fmt.Errorf("decoding brain: %w", err)
	}
	return &Brain{network: network}, nil
}

// Chromosome encodes the brain's weights.
func (b *Brain) Chromosome() genetic.Chromosome {
	return b.network.Chromosome()
}

// Network exposes the underlying network.
func (b *Brain) Network() *nn.Network {
	return b.network
}

// Propagate turns vision into a speed change and a rotation change, both clamped to
// the world's acceleration limits. Both outputs are read as [0, 1] levers centered on 0.5;
// their sum drives speed and their difference drives rotation.
func (b *Brain) Propagate(vision []float32, world WorldConfig) (speed, rotation float64, err error) {
	out, err := b.network.Propagate(vision)
	if err != nil {
		return 0, 0, fmt.Errorf("brain propagation: %w", err)
	}

	r0 := clamp(float64(out[0]), 0, 1) - 0.5
	r1 := clamp(float64(out[1]), 0, 1) - 0.5

	speed = clamp(r0+r1, -world.SpeedAccel, world.SpeedAccel)
	rotation = clamp(r0-r1, -world.RotationAccel, world.RotationAccel)
	return speed, rotation, nil
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
