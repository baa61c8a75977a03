// SPDX-License-Identifier: EPL-2.0

// Package frame defines the sample unit consumed by the signal package.
//
// A frame is one instant of audio: a single channel value or a tuple of
// channel values. Every frame type must have a meaningful Go zero value
// (silence) and a linear interpolation operator:
//
//	type Frame[T any] interface {
//	    Lerp(b T, w float32) T
//	}
//
// Two stock types are provided: Mono and Stereo.
package frame
