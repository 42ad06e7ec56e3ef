package nn

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

var (
	// ErrEmptyWeights is returned when a neuron would have no inputs.
	ErrEmptyWeights = errors.New("neuron needs at least one weight")
	// ErrInputSize is returned when an input vector does not match the expected width.
	ErrInputSize = errors.New("input size mismatch")
)

// Neuron is a single affine unit with ReLU activation.
type Neuron struct {
	bias    float32
	weights []float32
}

// NewNeuron creates a neuron with a copy of weights.
func NewNeuron(bias float32, weights []float32) (Neuron, error) {
	if len(weights) == 0 {
		return Neuron{}, ErrEmptyWeights
	}
	return Neuron{bias: bias, weights: slices.Clone(weights)}, nil
}

// shapedNeuron allocates a zeroed neuron that visit can fill in.
func shapedNeuron(inputSize int) (Neuron, error) {
	if inputSize <= 0 {
		return Neuron{}, fmt.Errorf("input size %d: %w", inputSize, ErrEmptyWeights)
	}
	return Neuron{weights: make([]float32, inputSize)}, nil
}

// RandomNeuron draws the bias and then every weight uniformly from [-1, 1).
func RandomNeuron(rng *rand.Rand, inputSize int) (Neuron, error) {
	n, err := shapedNeuron(inputSize)
	if err != nil {
		return Neuron{}, err
	}
	if err := n.visit(draw(rng)); err != nil {
		return Neuron{}, err
	}
	return n, nil
}

// NeuronFromWeights consumes exactly 1+inputSize values: the bias, then the weights.
func NeuronFromWeights(inputSize int, weights WeightStream) (Neuron, error) {
	n, err := shapedNeuron(inputSize)
	if err != nil {
		return Neuron{}, err
	}
	if err := n.visit(pull(weights)); err != nil {
		return Neuron{}, err
	}
	return n, nil
}

// Bias returns the neuron's bias.
func (n Neuron) Bias() float32 {
	return n.bias
}

// Weights returns a copy of the input weights.
func (n Neuron) Weights() []float32 {
	return slices.Clone(n.weights)
}

// InputSize returns the number of inputs the neuron expects.
func (n Neuron) InputSize() int {
	return len(n.weights)
}

// Propagate computes max(0, bias + Σ inputs[i]*weights[i]).
// Products are summed left to right before the bias is added.
func (n Neuron) Propagate(inputs []float32) (float32, error) {
	if len(inputs) != len(n.weights) {
		return 0, fmt.Errorf("neuron expects %d inputs, got %d: %w", len(n.weights), len(inputs), ErrInputSize)
	}

	var sum float32
	for i, in := range inputs {
		// Explicit conversion keeps the compiler from fusing multiply and add.
		sum += float32(in * n.weights[i])
	}
	return max(0, n.bias+sum), nil
}

// visit calls fn on every parameter in encoding order: bias, then weights.
func (n *Neuron) visit(fn func(*float32) error) error {
	if err := fn(&n.bias); err != nil {
		return err
	}
	for i := range n.weights {
		if err := fn(&n.weights[i]); err != nil {
			return err
		}
	}
	return nil
}

// draw returns a visitor that fills each parameter with a value from [-1, 1).
func draw(rng *rand.Rand) func(*float32) error {
	return func(p *float32) error {
		*p = rng.Float32()*2 - 1
		return nil
	}
}
