// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audsig/utils"
)

const (
	bitDepth16   = 16
	formatPCMOut = 1
)

// Writer streams interleaved float32 samples into a 16-bit PCM WAV.
// The header sizes are patched on Close, so the target must be seekable.
type Writer struct {
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	written  int64
}

// NewWriter prepares a 16-bit PCM WAV writer.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	return &Writer{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth16, channels, formatPCMOut),
		channels: channels,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth16,
		},
	}, nil
}

// WriteFloat32 clamps and quantizes samples to int16 and appends them.
// len(samples) should be a multiple of the channel count.
func (w *Writer) WriteFloat32(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]

	for i, s := range samples {
		w.buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	return w.write()
}

// WriteInt16 appends already quantized samples.
func (w *Writer) WriteInt16(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]

	for i, s := range samples {
		w.buf.Data[i] = int(s)
	}

	return w.write()
}

func (w *Writer) write() error {
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	w.written += int64(len(w.buf.Data) / w.channels)

	return nil
}

// Frames reports how many frames have been written so far.
func (w *Writer) Frames() int64 { return w.written }

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteWAV16 writes interleaved 16-bit PCM samples as a complete WAV file.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	wr, err := NewWriter(w, sampleRate, channels)
	if err != nil {
		return err
	}

	if err := wr.WriteInt16(samples); err != nil {
		return err
	}

	return wr.Close()
}
