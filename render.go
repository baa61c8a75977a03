// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsig/formats/wav"
	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/signal"
)

// DefaultBlock is the block size used when a caller passes zero, close to
// a typical audio callback period.
const DefaultBlock = 512

// Render pulls frames output frames from sig at rate, block frames per
// Sample call, and returns them.
func Render[T any](sig signal.Signal[T], rate, frames, block int) []T {
	out := make([]T, max(frames, 0))
	RenderInto(sig, rate, out, block)

	return out
}

// RenderInto fills out from sig in blocks without allocating.
func RenderInto[T any](sig signal.Signal[T], rate int, out []T, block int) {
	if rate <= 0 {
		panic("audsig: render rate must be positive")
	}

	if block <= 0 {
		block = DefaultBlock
	}

	interval := 1 / float32(rate)
	for off := 0; off < len(out); off += block {
		sig.Sample(interval, out[off:min(off+block, len(out))])
	}
}

// Until renders blocks while sig reports positive Remaining, stopping
// after at most limit frames. The last block is rendered whole, so the
// result may run past the point where Remaining crossed zero.
func Until[T any](sig signal.Signal[T], rate, block, limit int) []T {
	if block <= 0 {
		block = DefaultBlock
	}

	var out []T
	for len(out) < limit && sig.Remaining() > 0 {
		n := min(block, limit-len(out))
		out = append(out, make([]T, n)...)
		RenderInto(sig, rate, out[len(out)-n:], n)
	}

	return out
}

// RenderWAV renders seconds of sig at rate and encodes it as 16-bit
// stereo PCM WAV into w.
func RenderWAV(w io.WriteSeeker, sig signal.Signal[frame.Stereo], rate int, seconds float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	ww, err := wav.NewWriter(w, rate, 2)
	if err != nil {
		return err
	}

	total := int(math.Round(max(seconds, 0) * float64(rate)))
	block := make([]frame.Stereo, DefaultBlock)
	pcm := make([]float32, 2*DefaultBlock)

	for done := 0; done < total; {
		n := min(DefaultBlock, total-done)
		RenderInto(sig, rate, block[:n], n)

		for i, f := range block[:n] {
			pcm[2*i] = f[0]
			pcm[2*i+1] = f[1]
		}

		if err := ww.WriteFloat32(pcm[:2*n]); err != nil {
			return err
		}
		done += n
	}

	return ww.Close()
}
