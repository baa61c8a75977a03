// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"sync/atomic"
)

// State is the lifecycle of a Stop filter.
type State uint32

const (
	Playing State = iota
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stop wraps a signal that can be paused or permanently stopped from another
// goroutine through its StopControl.
//
// Sample always delegates to the inner signal, whatever the state. Owners
// that want pausing to freeze playback check IsPaused/IsStopped on the
// control before sampling. The state only changes what Remaining reports:
// the inner estimate while playing, +Inf while paused so the owner keeps the
// signal around, and 0 once stopped so it can be reclaimed.
type Stop[T any] struct {
	// single word shared with every StopControl
	state *atomic.Uint32
	inner Signal[T]
}

// NewStop wraps inner in the Playing state.
func NewStop[T any](inner Signal[T]) *Stop[T] {
	if inner == nil {
		panic(errNilInner)
	}

	return &Stop[T]{
		state: new(atomic.Uint32),
		inner: inner,
	}
}

// Sample delegates to the inner signal unconditionally.
func (s *Stop[T]) Sample(interval float32, out []T) {
	s.inner.Sample(interval, out)
}

// Remaining reports the inner estimate, +Inf or 0 depending on the state.
func (s *Stop[T]) Remaining() float32 {
	switch State(s.state.Load()) {
	case Playing:
		return s.inner.Remaining()
	case Paused:
		return float32(math.Inf(1))
	default:
		return 0
	}
}

// Inner returns the wrapped signal.
func (s *Stop[T]) Inner() Signal[T] { return s.inner }

// Control returns a handle that can change the state from any goroutine.
//
// The handle references the state word only. It does not keep the inner
// signal reachable, and once the owner drops the Stop the handle keeps
// working without affecting anything.
func (s *Stop[T]) Control() StopControl {
	return StopControl{state: s.state}
}

// State returns the current lifecycle state.
func (s *Stop[T]) State() State { return State(s.state.Load()) }

// StopControl is a lock-free handle to a Stop filter's state. Copies share
// the same state. The zero value is not usable.
type StopControl struct {
	state *atomic.Uint32
}

// Pause suspends playback. It has no effect once stopped.
func (c StopControl) Pause() { c.transition(Paused) }

// Resume continues paused playback. It has no effect once stopped.
func (c StopControl) Resume() { c.transition(Playing) }

// Stop ends playback for good.
func (c StopControl) Stop() { c.state.Store(uint32(Stopped)) }

// IsPaused reports whether the signal is paused.
func (c StopControl) IsPaused() bool { return State(c.state.Load()) == Paused }

// IsStopped reports whether the signal has stopped.
func (c StopControl) IsStopped() bool { return State(c.state.Load()) == Stopped }

// State returns the current lifecycle state.
func (c StopControl) State() State { return State(c.state.Load()) }

func (c StopControl) transition(to State) {
	for {
		cur := c.state.Load()
		if State(cur) == Stopped {
			return
		}
		if c.state.CompareAndSwap(cur, uint32(to)) {
			return
		}
	}
}
