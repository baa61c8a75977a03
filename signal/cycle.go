// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"

	"github.com/ik5/audsig/frame"
)

// Cycle loops Frames end to end to build a signal that never finishes.
//
// The loop point blends the last frame with the first one rather than with
// silence. There is no crossfade, so a buffer that does not end where it
// starts will click once per loop.
//
// A Cycle is driven by a single renderer; it is not safe for concurrent
// Sample calls. The underlying Frames may be shared freely.
type Cycle[T frame.Frame[T]] struct {
	// playback position in samples, always in [0, len)
	cursor float32
	frames *Frames[T]
}

// NewCycle starts looping frames from the first sample.
func NewCycle[T frame.Frame[T]](frames *Frames[T]) *Cycle[T] {
	if frames == nil {
		panic(errNilFrames)
	}

	return &Cycle[T]{frames: frames}
}

// Frames returns the looped buffer.
func (c *Cycle[T]) Frames() *Frames[T] { return c.frames }

// Sample fills out with consecutive frames, wrapping at the end of the
// buffer. Splitting one call into several with the same interval produces
// identical output.
func (c *Cycle[T]) Sample(interval float32, out []T) {
	n := len(c.frames.samples)
	if n == 0 {
		clear(out)
		return
	}

	ds := interval * float32(c.frames.Rate())
	length := float32(n)
	for i := range out {
		out[i] = c.interpolate(c.cursor)
		c.cursor = float32(math.Mod(float64(c.cursor+ds), float64(length)))
		if c.cursor < 0 {
			c.cursor += length
		}
	}
}

// Remaining is always +Inf.
func (c *Cycle[T]) Remaining() float32 {
	return float32(math.Inf(1))
}

func (c *Cycle[T]) interpolate(s float32) T {
	a := int(s)
	b := (a + 1) % len(c.frames.samples)

	return frame.Lerp(c.frames.samples[a], c.frames.samples[b], s-float32(a))
}
