// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"iter"
	"math"

	"github.com/ik5/audsig/frame"
)

// Frames is an immutable sequence of frames at a fixed sample rate, used to
// store e.g. sound effects decoded from files on disk.
//
// A *Frames is meant to be shared: any number of Cycle and FramesSignal
// values may read the same buffer concurrently without synchronization,
// because neither the rate nor the payload changes after construction.
type Frames[T frame.Frame[T]] struct {
	rate    float64
	samples []T
}

// NewFrames copies samples into a new buffer played at rate Hz.
func NewFrames[T frame.Frame[T]](rate uint32, samples []T) *Frames[T] {
	if rate == 0 {
		panic(errZeroRate)
	}

	f := &Frames[T]{
		rate:    float64(rate),
		samples: make([]T, len(samples)),
	}
	copy(f.samples, samples)

	return f
}

// FramesFromSeq drains seq into a new buffer of exactly n frames.
//
// The generator must yield exactly n values. Anything else is a broken
// caller contract and panics; an overrun is detected before any value is
// written past the declared length.
func FramesFromSeq[T frame.Frame[T]](rate uint32, n int, seq iter.Seq[T]) *Frames[T] {
	if rate == 0 {
		panic(errZeroRate)
	}
	if n < 0 {
		panic(errNegativeLen)
	}

	samples := make([]T, n)
	i := 0
	for v := range seq {
		if i == n {
			panic(fmt.Sprintf("%s: declared %d", errLongSeq, n))
		}
		samples[i] = v
		i++
	}
	if i != n {
		panic(fmt.Sprintf("%s: declared %d, got %d", errShortSeq, n, i))
	}

	return &Frames[T]{rate: float64(rate), samples: samples}
}

// FramesFromFunc builds n frames by calling gen for every index in order.
func FramesFromFunc[T frame.Frame[T]](rate uint32, n int, gen func(i int) T) *Frames[T] {
	if n < 0 {
		panic(errNegativeLen)
	}

	return FramesFromSeq[T](rate, n, func(yield func(T) bool) {
		for i := range n {
			if !yield(gen(i)) {
				return
			}
		}
	})
}

// Rate is the number of samples per second.
func (f *Frames[T]) Rate() uint32 { return uint32(f.rate) }

// Len is the number of frames stored.
func (f *Frames[T]) Len() int { return len(f.samples) }

// Duration is the playback length in seconds at the native rate.
func (f *Frames[T]) Duration() float64 { return float64(len(f.samples)) / f.rate }

// At returns frame i. It panics when i is out of range, like slice indexing.
func (f *Frames[T]) At(i int) T { return f.samples[i] }

// All iterates over the frames in order.
func (f *Frames[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range f.samples {
			if !yield(i, v) {
				return
			}
		}
	}
}

// CopyTo copies frames starting at offset into dst and returns how many
// were copied. Out of range offsets copy nothing.
func (f *Frames[T]) CopyTo(dst []T, offset int) int {
	if offset < 0 || offset >= len(f.samples) {
		return 0
	}

	return copy(dst, f.samples[offset:])
}

// Interpolate returns the frame at position s, measured in samples rather
// than seconds.
//
// Whole numbers are always an exact sample. Positions outside [0, Len()) are
// silent, and the neighbour of the last frame is silence, so callers never
// need their own bounds checks near either edge.
func (f *Frames[T]) Interpolate(s float64) T {
	if !(s >= 0) || s >= float64(len(f.samples)) {
		var zero T
		return zero
	}

	x0 := math.Floor(s)
	a := int(x0)

	return frame.Lerp(f.get(a), f.get(a+1), float32(s-x0))
}

func (f *Frames[T]) get(i int) T {
	if i < 0 || i >= len(f.samples) {
		var zero T
		return zero
	}

	return f.samples[i]
}
