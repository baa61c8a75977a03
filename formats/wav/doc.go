// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files through
// github.com/go-audio/wav.
//
// The Decoder accepts integer PCM at 8, 16, 24 or 32 bits with any
// channel count and sample rate. Samples are normalized to [-1, 1).
// Inputs that are not an io.ReadSeeker are buffered in memory first.
// Sources report their declared length through Frames.
//
// Writer and WriteWAV16 produce 16-bit PCM. The header is patched when the
// writer is closed, so the target must be an io.WriteSeeker such as an
// *os.File.
//
//	f, _ := os.Create("out.wav")
//	w, _ := wav.NewWriter(f, 48000, 2)
//	w.WriteFloat32(block)
//	w.Close()
package wav
