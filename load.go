// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats/aiff"
	"github.com/ik5/audsig/formats/flac"
	"github.com/ik5/audsig/formats/mp3"
	"github.com/ik5/audsig/formats/vorbis"
	"github.com/ik5/audsig/formats/wav"
	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/log"
	"github.com/ik5/audsig/signal"
)

var logger = log.GetLogger()

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// LoadStereo drains src into a stereo buffer. Mono sources are copied to
// both sides and sources with more than two channels keep the first pair.
// The caller still owns src and must close it.
func LoadStereo(src audio.Source) (*signal.Frames[frame.Stereo], error) {
	samples, rate, channels, err := drain(src)
	if err != nil {
		return nil, err
	}

	n := len(samples) / channels
	buf := signal.FramesFromSeq[frame.Stereo](rate, n, func(yield func(frame.Stereo) bool) {
		for i := range n {
			base := i * channels

			var f frame.Stereo
			if channels == 1 {
				f = frame.FromMono(frame.Mono(samples[base]))
			} else {
				f = frame.Stereo{samples[base], samples[base+1]}
			}

			if !yield(f) {
				return
			}
		}
	})

	logLoaded("stereo", buf.Rate(), buf.Len(), channels)

	return buf, nil
}

// LoadMono drains src through a channel-averaging mixer into a mono buffer.
// The caller still owns src and must close it.
func LoadMono(src audio.Source) (*signal.Frames[frame.Mono], error) {
	samples, rate, _, err := drain(audio.NewMonoMixer(src))
	if err != nil {
		return nil, err
	}

	buf := signal.FramesFromFunc(rate, len(samples), func(i int) frame.Mono {
		return frame.Mono(samples[i])
	})

	logLoaded("mono", buf.Rate(), buf.Len(), src.Channels())

	return buf, nil
}

// LoadFile decodes the file at path with the decoder registered for its
// extension and loads it as stereo. A nil reg uses DefaultRegistry.
func LoadFile(path string, reg *audio.Registry) (*signal.Frames[frame.Stereo], error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := LoadStereo(src)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return buf, nil
}

func drain(src audio.Source) ([]float32, uint32, int, error) {
	rate := src.SampleRate()
	if rate <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	channels := src.Channels()
	samples, err := audio.ReadAll(src)
	if err != nil {
		return nil, 0, 0, err
	}

	if len(samples) == 0 {
		return nil, 0, 0, ErrEmptySource
	}

	return samples, uint32(rate), channels, nil
}

func logLoaded(layout string, rate uint32, frames, channels int) {
	logger.WithFields(logrus.Fields{
		"layout":   layout,
		"rate":     rate,
		"frames":   frames,
		"channels": channels,
	}).Debug("buffer loaded")
}
