// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes Audio Interchange File Format streams via
// github.com/go-audio/aiff.
//
// Big-endian signed PCM at 8, 16, 24 or 32 bits is normalized to float32.
// The go-audio parser needs to seek, so plain readers are buffered in
// memory before decoding. Frames reports NumSampleFrames from the COMM chunk.
package aiff
