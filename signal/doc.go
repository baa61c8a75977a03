// SPDX-License-Identifier: EPL-2.0

// Package signal provides the rendering core: composable signals that fill
// output buffers with interpolated frames on demand.
//
// # Signals
//
// Every signal implements the Signal interface:
//
//	type Signal[T any] interface {
//	    Sample(interval float32, out []T)
//	    Remaining() float32
//	}
//
// A render loop calls Sample once per audio callback with interval set to
// the output period (1/rate seconds). Sample never allocates, locks or
// blocks, so it is safe to call from a real-time goroutine.
//
// # Buffers
//
// Frames is an immutable, rate-tagged buffer shared by pointer:
//
//	tone := signal.FramesFromFunc(48000, 480, func(i int) frame.Mono {
//	    return frame.Mono(math.Sin(2 * math.Pi * float64(i) / 480))
//	})
//
// Interpolate looks up fractional positions; positions outside the buffer
// are silent instead of failing.
//
// # Playback
//
//   - Cycle loops a buffer forever.
//   - FramesSignal plays a buffer once, optionally starting in the future.
//   - Stop wraps any signal with a playing/paused/stopped state that another
//     goroutine changes through a StopControl.
//
// Example:
//
//	s := signal.NewStop[frame.Mono](signal.NewCycle(tone))
//	ctrl := s.Control()
//
//	go func() {
//	    time.Sleep(time.Second)
//	    ctrl.Stop()
//	}()
//
//	buf := make([]frame.Mono, 512)
//	for !ctrl.IsStopped() {
//	    s.Sample(1.0/48000, buf)
//	}
//
// # Concurrency
//
// Cycle and FramesSignal keep their playback position in plain fields and
// expect a single goroutine to drive them. The only state written
// concurrently is the Stop state, a single atomic word; a change made by a
// control may be observed one buffer late by the renderer.
package signal
