package nn

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/baldhumanity/shorelark-go/genetic"
)

func TestParamCount(t *testing.T) {
	assert.Equal(t, 26, ParamCount([]int{3, 4, 2}))
	assert.Equal(t, 4, ParamCount([]int{3, 1}))
	assert.Equal(t, (9+1)*18+(18+1)*2, ParamCount([]int{9, 18, 2}))
	assert.Zero(t, ParamCount([]int{3}))
}

func TestRandomNetworkMatchesDrawSequence(t *testing.T) {
	sizes := []int{3, 4, 2}
	rng := genetic.NewRand(0)
	reference := genetic.NewRand(0)

	n, err := RandomNetwork(rng, sizes)
	require.NoError(t, err)

	weights := n.Weights()
	require.Len(t, weights, ParamCount(sizes))
	for i, w := range weights {
		assert.Equal(t, reference.Float32()*2-1, w, "parameter %d", i)
	}
	assert.Equal(t, sizes, n.Sizes())
	assert.Equal(t, 2, n.LayerCount())
}

func TestNetworkFromWeightsOrder(t *testing.T) {
	weights := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.1}
	stream := NewSliceStream(weights)
	n, err := NetworkFromWeights([]int{3, 2, 1}, stream)
	require.NoError(t, err)
	assert.Zero(t, stream.Remaining())

	assert.Equal(t, float32(0.1), n.Layer(0).Neuron(0).Bias())
	assert.Equal(t, []float32{0.2, 0.3, 0.4}, n.Layer(0).Neuron(0).Weights())
	assert.Equal(t, float32(0.5), n.Layer(0).Neuron(1).Bias())
	assert.Equal(t, []float32{0.6, 0.7, 0.8}, n.Layer(0).Neuron(1).Weights())
	assert.Equal(t, float32(0.9), n.Layer(1).Neuron(0).Bias())
	assert.Equal(t, []float32{1.0, 1.1}, n.Layer(1).Neuron(0).Weights())
}

func TestNetworkRoundTrip(t *testing.T) {
	sizes := []int{4, 6, 3, 2}
	rng := genetic.NewRand(42)

	original, err := RandomNetwork(rng, sizes)
	require.NoError(t, err)

	decoded, err := NetworkFromWeights(sizes, NewSliceStream(original.Weights()))
	require.NoError(t, err)
	assert.Equal(t, original.Weights(), decoded.Weights())

	for range 20 {
		inputs := make([]float32, 4)
		for i := range inputs {
			inputs[i] = rng.Float32()*2 - 1
		}
		want, err := original.Propagate(inputs)
		require.NoError(t, err)
		got, err := decoded.Propagate(inputs)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNetworkPropagateChainsLayers(t *testing.T) {
	n, err := RandomNetwork(genetic.NewRand(7), []int{3, 5, 2})
	require.NoError(t, err)
	inputs := []float32{0.5, -0.25, 1}

	hidden, err := n.Layer(0).Propagate(inputs)
	require.NoError(t, err)
	want, err := n.Layer(1).Propagate(hidden)
	require.NoError(t, err)

	got, err := n.Propagate(inputs)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.True(t, scalar.EqualWithinAbsOrRel(float64(want[i]), float64(got[i]), 0, 0))
		assert.GreaterOrEqual(t, got[i], float32(0))
	}
}

func TestNetworkPropagateHandComputed(t *testing.T) {
	// Two inputs, one hidden neuron, one output neuron.
	n, err := NetworkFromWeights([]int{2, 1, 1}, NewSliceStream([]float32{0.5, 1, -1, 0.25, 2}))
	require.NoError(t, err)

	out, err := n.Propagate([]float32{0.75, 0.25})
	require.NoError(t, err)
	// hidden = relu(0.5 + 0.75 - 0.25) = 1, output = relu(0.25 + 2*1) = 2.25
	assert.Equal(t, []float32{2.25}, out)

	out, err = n.Propagate([]float32{0, 2})
	require.NoError(t, err)
	// hidden = relu(0.5 - 2) = 0, output = relu(0.25) = 0.25
	assert.Equal(t, []float32{0.25}, out)
}

func TestNetworkErrors(t *testing.T) {
	for _, sizes := range [][]int{nil, {3}, {3, 0}, {0, 2}, {3, -1, 2}} {
		_, err := RandomNetwork(genetic.NewRand(0), sizes)
		assert.ErrorIs(t, err, ErrTopology, "sizes %v", sizes)
	}

	_, err := NetworkFromWeights([]int{3, 2}, NewSliceStream(make([]float32, 7)))
	assert.ErrorIs(t, err, ErrNotEnoughWeights)

	n, err := RandomNetwork(genetic.NewRand(0), []int{3, 2})
	require.NoError(t, err)
	_, err = n.Propagate([]float32{1, 2})
	assert.ErrorIs(t, err, ErrInputSize)
}

func TestNewNetwork(t *testing.T) {
	first, err := RandomLayer(genetic.NewRand(0), 3, 4)
	require.NoError(t, err)
	second, err := RandomLayer(genetic.NewRand(1), 4, 2)
	require.NoError(t, err)
	mismatched, err := RandomLayer(genetic.NewRand(2), 5, 2)
	require.NoError(t, err)

	n, err := NewNetwork([]Layer{first, second})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2}, n.Sizes())

	_, err = NewNetwork([]Layer{first, mismatched})
	assert.ErrorIs(t, err, ErrTopology)

	_, err = NewNetwork(nil)
	assert.ErrorIs(t, err, ErrTopology)
}

func TestNetworkAllStopsEarly(t *testing.T) {
	n, err := RandomNetwork(genetic.NewRand(0), []int{3, 4, 2})
	require.NoError(t, err)

	var firstThree []float32
	for w := range n.All() {
		firstThree = append(firstThree, w)
		if len(firstThree) == 3 {
			break
		}
	}
	assert.Equal(t, n.Weights()[:3], firstThree)
}

func TestPullStreamDecodesFromInfiniteSequence(t *testing.T) {
	constant := func(yield func(float32) bool) {
		for {
			if !yield(0.5) {
				return
			}
		}
	}

	stream, stop := PullStream(constant)
	defer stop()

	n, err := NetworkFromWeights([]int{2, 3, 1}, stream)
	require.NoError(t, err)
	for _, w := range n.Weights() {
		assert.Equal(t, float32(0.5), w)
	}

	next, ok := stream.Next()
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), next)
}

func TestChromosomeRoundTrip(t *testing.T) {
	sizes := []int{3, 4, 2}
	n, err := RandomNetwork(genetic.NewRand(3), sizes)
	require.NoError(t, err)

	c := n.Chromosome()
	assert.Equal(t, n.Weights(), []float32(c))

	decoded, err := FromChromosome(sizes, c)
	require.NoError(t, err)
	assert.Equal(t, n.Weights(), decoded.Weights())

	_, err = FromChromosome(sizes, append(c.Clone(), 1))
	assert.ErrorIs(t, err, ErrTopology)
	_, err = FromChromosome(sizes, c[:len(c)-1])
	assert.ErrorIs(t, err, ErrTopology)
	assert.True(t, slices.Equal(n.Weights(), decoded.Weights()))
}
