// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"errors"
	"math"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/signal"
	"github.com/ik5/audsig/utils"
)

// ResampleToMono16 loads src as mono, plays it once at targetRate with
// linear interpolation and quantizes the result to 16-bit PCM.
//
// block is the render block size; zero selects DefaultBlock. An empty
// source yields no samples and no error.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := audsig.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src audio.Source, targetRate int, block int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, targetRate, ErrInvalidRate
	}

	buf, err := LoadMono(src)
	if errors.Is(err, ErrEmptySource) {
		return []int16{}, targetRate, nil
	}
	if err != nil {
		return nil, targetRate, err
	}

	frames := int(math.Round(buf.Duration() * float64(targetRate)))
	mono := Render[frame.Mono](signal.FramesSignalFrom(buf), targetRate, frames, block)

	pcm16 := make([]int16, len(mono))
	for i, v := range mono {
		pcm16[i] = utils.Float32ToInt16(float32(v))
	}

	return pcm16, targetRate, nil
}
