package nn

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// ErrTopology is returned for layer size lists that cannot describe a network.
var ErrTopology = errors.New("invalid network topology")

// Network is a feed-forward stack of fully connected ReLU layers.
type Network struct {
	layers []Layer
}

// NewNetwork creates a network from layers whose widths line up:
// layer i must have as many neurons as layer i+1 has inputs.
func NewNetwork(layers []Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("network needs at least one layer: %w", ErrTopology)
	}
	for i := 1; i < len(layers); i++ {
		if layers[i-1].OutputSize() != layers[i].InputSize() {
			return nil, fmt.Errorf("layer %d outputs %d values but layer %d expects %d: %w",
				i-1, layers[i-1].OutputSize(), i, layers[i].InputSize(), ErrTopology)
		}
	}
	return &Network{layers: slices.Clone(layers)}, nil
}

// shapedNetwork allocates a zeroed network for the given sizes.
// sizes[0] is the input width, every following entry a layer's neuron count.
func shapedNetwork(sizes []int) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("need an input and an output size, got %v: %w", sizes, ErrTopology)
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("layer sizes must be positive, got %v: %w", sizes, ErrTopology)
		}
	}

	layers := make([]Layer, len(sizes)-1)
	for i := range layers {
		l, err := shapedLayer(sizes[i], sizes[i+1])
		if err != nil {
			return nil, err
		}
		layers[i] = l
	}
	return &Network{layers: layers}, nil
}

// RandomNetwork builds a network with parameters drawn uniformly from [-1, 1).
// Layers are drawn in order, neuron by neuron, bias before weights.
func RandomNetwork(rng *rand.Rand, sizes []int) (*Network, error) {
	n, err := shapedNetwork(sizes)
	if err != nil {
		return nil, err
	}
	if err := n.visit(draw(rng)); err != nil {
		return nil, err
	}
	return n, nil
}

// NetworkFromWeights decodes a network from a flat stream in the order RandomNetwork draws
// and Weights encodes. Values left in the stream after decoding are not read.
func NetworkFromWeights(sizes []int, weights WeightStream) (*Network, error) {
	n, err := shapedNetwork(sizes)
	if err != nil {
		return nil, err
	}
	if err := n.visit(pull(weights)); err != nil {
		return nil, fmt.Errorf("decoding network %v: %w", sizes, err)
	}
	return n, nil
}

// ParamCount returns how many values a network with the given sizes holds.
func ParamCount(sizes []int) int {
	count := 0
	for i := 1; i < len(sizes); i++ {
		count += (sizes[i-1] + 1) * sizes[i]
	}
	return count
}

// Sizes returns the input width followed by each layer's neuron count.
func (n *Network) Sizes() []int {
	sizes := []int{n.layers[0].InputSize()}
	for _, l := range n.layers {
		sizes = append(sizes, l.OutputSize())
	}
	return sizes
}

// Layer returns the layer at index i.
func (n *Network) Layer(i int) Layer {
	return n.layers[i]
}

// LayerCount returns the number of layers (excluding the input).
func (n *Network) LayerCount() int {
	return len(n.layers)
}

// Propagate feeds inputs through every layer in turn and returns the last layer's output.
func (n *Network) Propagate(inputs []float32) ([]float32, error) {
	values := inputs
	for i, l := range n.layers {
		out, err := l.Propagate(values)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		values = out
	}
	return values, nil
}

// Weights flattens every parameter in decoding order.
func (n *Network) Weights() []float32 {
	return slices.Collect(n.All())
}

// All iterates over every parameter in decoding order.
func (n *Network) All() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		stop := errors.New("stop")
		_ = n.visit(func(p *float32) error {
			if !yield(*p) {
				return stop
			}
			return nil
		})
	}
}

// visit walks layer, then neuron, then bias-and-weights. Random initialization,
// decoding and encoding all go through it so they share one ordering.
func (n *Network) visit(fn func(*float32) error) error {
	for i := range n.layers {
		if err := n.layers[i].visit(fn); err != nil {
			return err
		}
	}
	return nil
}
