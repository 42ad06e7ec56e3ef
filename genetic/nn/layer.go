package nn

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

var (
	// ErrEmptyLayer is returned when a layer would have no neurons.
	ErrEmptyLayer = errors.New("layer needs at least one neuron")
	// ErrMismatchedNeurons is returned when neurons in a layer disagree on input width.
	ErrMismatchedNeurons = errors.New("neurons have different input sizes")
)

// Layer is an ordered set of neurons reading the same inputs.
type Layer struct {
	neurons []Neuron
}

// NewLayer creates a layer from neurons that all share one input width.
func NewLayer(neurons []Neuron) (Layer, error) {
	if len(neurons) == 0 {
		return Layer{}, ErrEmptyLayer
	}
	width := neurons[0].InputSize()
	for i, n := range neurons {
		if n.InputSize() != width {
			return Layer{}, fmt.Errorf("neuron %d has %d inputs, neuron 0 has %d: %w", i, n.InputSize(), width, ErrMismatchedNeurons)
		}
	}
	return Layer{neurons: slices.Clone(neurons)}, nil
}

// shapedLayer allocates a zeroed layer that visit can fill in.
func shapedLayer(inputSize, outputSize int) (Layer, error) {
	if outputSize <= 0 {
		return Layer{}, fmt.Errorf("output size %d: %w", outputSize, ErrEmptyLayer)
	}
	neurons := make([]Neuron, outputSize)
	for i := range neurons {
		n, err := shapedNeuron(inputSize)
		if err != nil {
			return Layer{}, err
		}
		neurons[i] = n
	}
	return Layer{neurons: neurons}, nil
}

// RandomLayer creates outputSize random neurons. Neuron i is drawn completely before neuron i+1.
func RandomLayer(rng *rand.Rand, inputSize, outputSize int) (Layer, error) {
	l, err := shapedLayer(inputSize, outputSize)
	if err != nil {
		return Layer{}, err
	}
	if err := l.visit(draw(rng)); err != nil {
		return Layer{}, err
	}
	return l, nil
}

// LayerFromWeights decodes outputSize neurons from weights, in neuron order.
func LayerFromWeights(inputSize, outputSize int, weights WeightStream) (Layer, error) {
	l, err := shapedLayer(inputSize, outputSize)
	if err != nil {
		return Layer{}, err
	}
	if err := l.visit(pull(weights)); err != nil {
		return Layer{}, err
	}
	return l, nil
}

// InputSize returns the width of the input vector the layer expects.
func (l Layer) InputSize() int {
	return l.neurons[0].InputSize()
}

// OutputSize returns the number of neurons.
func (l Layer) OutputSize() int {
	return len(l.neurons)
}

// Neuron returns the neuron at index i.
func (l Layer) Neuron(i int) Neuron {
	return l.neurons[i]
}

// Propagate returns one output per neuron; output i comes from neuron i.
func (l Layer) Propagate(inputs []float32) ([]float32, error) {
	outputs := make([]float32, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Propagate(inputs)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}

func (l *Layer) visit(fn func(*float32) error) error {
	for i := range l.neurons {
		if err := l.neurons[i].visit(fn); err != nil {
			return err
		}
	}
	return nil
}
