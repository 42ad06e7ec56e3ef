// Package nn implements small fully connected feed-forward networks with ReLU activation.
//
// Networks are built either randomly or by decoding a flat weight stream. Both paths, and
// Network.Weights, walk parameters in the same order: layer by layer, neuron by neuron,
// bias first and then one weight per input. Weights followed by NetworkFromWeights
// yields an identical network, and FromChromosome does the same for a genetic.Chromosome.
package nn
