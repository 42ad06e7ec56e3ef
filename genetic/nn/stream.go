package nn

import (
	"errors"
	"iter"
)

// ErrNotEnoughWeights is returned when a weight stream runs dry mid-decode.
var ErrNotEnoughWeights = errors.New("got not enough weights")

// WeightStream yields successive parameter values for decoding a network.
// Decoders pull exactly as many values as they need and leave the rest unread.
type WeightStream interface {
	Next() (float32, bool)
}

// SliceStream reads weights from a slice.
type SliceStream struct {
	weights []float32
	pos     int
}

// NewSliceStream returns a stream over weights. The slice is not copied.
func NewSliceStream(weights []float32) *SliceStream {
	return &SliceStream{weights: weights}
}

// Next returns the next weight, or false once the slice is exhausted.
func (s *SliceStream) Next() (float32, bool) {
	if s.pos >= len(s.weights) {
		return 0, false
	}
	w := s.weights[s.pos]
	s.pos++
	return w, true
}

// Remaining returns how many weights have not been read yet.
func (s *SliceStream) Remaining() int {
	return len(s.weights) - s.pos
}

type seqStream struct {
	next func() (float32, bool)
}

func (s seqStream) Next() (float32, bool) {
	return s.next()
}

// PullStream adapts an iterator, which may be infinite, into a WeightStream.
// The returned stop function must be called once decoding is done.
func PullStream(seq iter.Seq[float32]) (WeightStream, func()) {
	next, stop := iter.Pull(seq)
	return seqStream{next: next}, stop
}

// pull returns a visitor that assigns the next stream value to each parameter.
func pull(weights WeightStream) func(*float32) error {
	return func(p *float32) error {
		w, ok := weights.Next()
		if !ok {
			return ErrNotEnoughWeights
		}
		*p = w
		return nil
	}
}
