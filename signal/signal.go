// SPDX-License-Identifier: EPL-2.0

package signal

// Signal produces frames of type T on demand.
type Signal[T any] interface {
	// Sample fills out entirely, advancing internal time by interval
	// seconds per frame written.
	Sample(interval float32, out []T)

	// Remaining estimates the seconds left before the signal is naturally
	// exhausted. +Inf means there is no natural end; values <= 0 mean the
	// signal is finished now or already past its end.
	Remaining() float32
}

// Filter is a Signal that wraps exactly one inner signal.
type Filter[T any] interface {
	Signal[T]
	Inner() Signal[T]
}

// Controlled is implemented by signals that hand out a thread-safe control
// handle. The handle never owns the signal; the owner of the signal decides
// when it is discarded.
type Controlled[C any] interface {
	Control() C
}

// Source evaluates audio at explicit time offsets instead of filling
// buffers. A listener fetching n samples with zero delay samples 0..n, more
// distant listeners sample ranges starting in the negatives.
type Source interface {
	// Rate is the sample rate in Hz.
	Rate() uint32

	// Sample returns the value at offset t, in samples.
	Sample(t float32) float32

	// Advance shifts the origin used by later Sample calls by dt samples,
	// possibly with more precision than adding dt to t would give.
	Advance(dt float32)
}
