// SPDX-License-Identifier: EPL-2.0

// Package audsig connects decoded audio files to the signal graph.
//
// The signal package defines pull-based signals over shared, immutable
// frame buffers. This package fills those buffers from files and drives
// signals offline:
//
//	buf, err := audsig.LoadFile("loop.ogg", nil)
//	if err != nil {
//	    return err
//	}
//
//	loop := signal.NewStop(signal.NewCycle(buf))
//	ctl := loop.Control()
//
//	out := audsig.Render[frame.Stereo](loop, 48000, 48000, 512)
//	ctl.Stop()
//
// # Loading
//
// LoadStereo and LoadMono drain an audio.Source completely and build one
// buffer at the source's sample rate. LoadFile picks a decoder by file
// extension from an audio.Registry; DefaultRegistry knows WAV, MP3, Ogg
// Vorbis, FLAC and AIFF. Loading is the only place in the module that
// allocates proportionally to the input, and it logs a debug line per
// buffer when AUDSIG_DEBUG is set.
//
// # Rendering
//
// Render, RenderInto and Until call Signal.Sample with a fixed interval of
// 1/rate seconds, block frames at a time, the way an audio callback would.
// RenderInto does not allocate. RenderWAV encodes a stereo signal to a
// 16-bit WAV file.
//
// ResampleToMono16 combines both halves: it loads a source as mono, plays it
// once at a new rate with linear interpolation and quantizes to int16.
//
// # Errors
//
// ErrUnsupportedFormat, ErrEmptySource and ErrInvalidRate are returned
// wrapped; use errors.Is. Decoder errors are wrapped with the file path.
package audsig
