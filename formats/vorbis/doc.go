// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis through github.com/jfreymuth/oggvorbis.
//
// Samples come out of the codec as float32 already, so ReadSamples only
// keeps requests aligned to whole frames. Frames reports the length stored
// in the final Ogg page, or -1 if the stream does not expose one.
package vorbis
