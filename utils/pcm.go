// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns the divisor that maps a signed integer sample of the
// given bit depth onto [-1, 1). Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 normalizes a decoded integer PCM sample.
// 8-bit WAV data is unsigned and centred on 128, so callers pass
// unsigned8 for that layout.
func IntToFloat32(v, bitDepth int, unsigned8 bool) float32 {
	if bitDepth == 8 && unsigned8 {
		v -= 128
	}

	return float32(v) / PCMScale(bitDepth)
}

// IntsToFloat32 converts src into dst and returns the number of samples
// written, which is min(len(dst), len(src)).
func IntsToFloat32(dst []float32, src []int, bitDepth int, unsigned8 bool) int {
	n := min(len(dst), len(src))
	scale := PCMScale(bitDepth)
	bias := 0
	if bitDepth == 8 && unsigned8 {
		bias = 128
	}

	for i := range n {
		dst[i] = float32(src[i]-bias) / scale
	}

	return n
}
