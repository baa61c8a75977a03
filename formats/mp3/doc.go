// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG audio Layer III through
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo, even for mono files, so
// callers wanting one channel wrap the source in audio.NewMonoMixer.
// Frames reports the length go-mp3 derives from the stream, or -1 when
// the input could not be scanned up front.
package mp3
