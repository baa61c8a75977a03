// SPDX-License-Identifier: EPL-2.0

package signal

import "github.com/ik5/audsig/frame"

// FramesSignal plays Frames once. Past the end it keeps producing silence
// and reports a non-positive Remaining; the owner decides when to drop it.
type FramesSignal[T frame.Frame[T]] struct {
	data *Frames[T]
	// playback position in seconds
	t float64
}

// NewFramesSignal plays data starting at startSeconds, which may be
// negative to schedule the start in the future.
func NewFramesSignal[T frame.Frame[T]](data *Frames[T], startSeconds float64) *FramesSignal[T] {
	if data == nil {
		panic(errNilFrames)
	}

	return &FramesSignal[T]{data: data, t: startSeconds}
}

// FramesSignalFrom plays data from its first frame.
func FramesSignalFrom[T frame.Frame[T]](data *Frames[T]) *FramesSignal[T] {
	return NewFramesSignal(data, 0)
}

// Frames returns the played buffer.
func (s *FramesSignal[T]) Frames() *Frames[T] { return s.data }

// Position is the current playback time in seconds.
func (s *FramesSignal[T]) Position() float64 { return s.t }

// Sample fills out starting at the current position and advances it by
// interval * len(out) seconds.
func (s *FramesSignal[T]) Sample(interval float32, out []T) {
	s0 := s.t * s.data.rate
	ds := float64(interval) * s.data.rate
	for i := range out {
		out[i] = s.data.Interpolate(s0 + ds*float64(i))
	}
	s.t += float64(interval) * float64(len(out))
}

// Remaining is the buffer duration minus the playback position. It is not
// clamped and goes negative once playback has run past the end.
func (s *FramesSignal[T]) Remaining() float32 {
	return float32(float64(len(s.data.samples))/s.data.rate - s.t)
}
