// SPDX-License-Identifier: EPL-2.0

package frame

// Frame is satisfied by sample types that can blend towards another value of
// the same type. Lerp must return the receiver unchanged when w is 0.
type Frame[T any] interface {
	Lerp(b T, w float32) T
}

// Mono is a single channel frame.
type Mono float32

// Stereo is a left/right frame.
type Stereo [2]float32

// Lerp blends a towards b by w.
func (a Mono) Lerp(b Mono, w float32) Mono {
	return a + (b-a)*Mono(w)
}

// Lerp blends each channel of a towards b by w.
func (a Stereo) Lerp(b Stereo, w float32) Stereo {
	return Stereo{
		a[0] + (b[0]-a[0])*w,
		a[1] + (b[1]-a[1])*w,
	}
}

// Lerp interpolates between a and b with weight w in [0, 1).
func Lerp[T Frame[T]](a, b T, w float32) T {
	return a.Lerp(b, w)
}

// FromMono duplicates a mono value on both sides.
func FromMono(m Mono) Stereo {
	return Stereo{float32(m), float32(m)}
}

// Mix averages both channels of s.
func (s Stereo) Mix() Mono {
	return Mono((s[0] + s[1]) * 0.5)
}
