// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/signal"
)

// BytesPerFrame is the size of one float32 little-endian stereo frame.
const BytesPerFrame = 8

// DefaultBlock is the number of frames pulled from the signal per Sample call.
const DefaultBlock = 512

// Reader turns a stoppable stereo signal into the byte stream oto pulls.
//
// Before each Read it consults the control: a paused signal yields
// silence without being sampled, a stopped one ends the stream with
// io.EOF. Read does not allocate.
type Reader struct {
	sig      *signal.Stop[frame.Stereo]
	ctl      signal.StopControl
	interval float32
	block    []frame.Stereo

	// StopAtEnd stops the signal once it reports no remaining time, so a
	// one-shot source ends the stream instead of padding it with silence.
	StopAtEnd bool
}

// NewReader prepares a reader for a device running at rate Hz. block is
// the largest Sample call; zero selects DefaultBlock.
func NewReader(sig *signal.Stop[frame.Stereo], rate, block int) *Reader {
	if rate <= 0 {
		panic("output: device rate must be positive")
	}

	if block <= 0 {
		block = DefaultBlock
	}

	return &Reader{
		sig:      sig,
		ctl:      sig.Control(),
		interval: 1 / float32(rate),
		block:    make([]frame.Stereo, block),
	}
}

// Control returns the handle of the wrapped signal.
func (r *Reader) Control() signal.StopControl { return r.ctl }

// Read fills p with whole frames. Trailing bytes that do not form a frame
// are left untouched.
func (r *Reader) Read(p []byte) (int, error) {
	if r.ctl.IsStopped() {
		return 0, io.EOF
	}

	frames := len(p) / BytesPerFrame
	size := frames * BytesPerFrame

	if r.ctl.IsPaused() {
		clear(p[:size])
		return size, nil
	}

	for done := 0; done < frames; {
		blk := r.block[:min(len(r.block), frames-done)]
		r.sig.Sample(r.interval, blk)

		out := p[done*BytesPerFrame:]
		for i, f := range blk {
			binary.LittleEndian.PutUint32(out[i*BytesPerFrame:], math.Float32bits(f[0]))
			binary.LittleEndian.PutUint32(out[i*BytesPerFrame+4:], math.Float32bits(f[1]))
		}

		done += len(blk)
	}

	if r.StopAtEnd && r.sig.Remaining() <= 0 {
		r.ctl.Stop()
	}

	return size, nil
}
