// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audsig/audio"
)

const defaultBufSize = 4096

// ErrUnsupportedBitDepth is returned for streams deeper than 32 bits.
var ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

// frameParser is the part of flac.Stream the source needs.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64

	// cur is the block being drained; pos is the next unread index in it.
	cur *frame.Frame
	pos int
	eof bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return defaultBufSize - defaultBufSize%s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	scale := float32(uint64(1) << (s.bitDepth - 1))
	n := 0

	for len(dst)-n >= s.channels {
		if s.cur == nil || s.pos >= int(s.cur.BlockSize) {
			if s.eof {
				break
			}

			f, err := s.stream.ParseNext()
			if err == io.EOF {
				s.eof = true
				break
			}
			if err != nil {
				return n, fmt.Errorf("decoding flac frame: %w", err)
			}

			s.cur, s.pos = f, 0
			continue
		}

		for ch := range s.channels {
			dst[n+ch] = float32(s.cur.Subframes[ch].Samples[s.pos]) / scale
		}
		n += s.channels
		s.pos++
	}

	if n == 0 && s.eof {
		return 0, io.EOF
	}

	return n, nil
}

// Decoder decodes FLAC streams via github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac: %w", err)
	}

	info := stream.Info
	bitDepth := int(info.BitsPerSample)
	if bitDepth <= 0 || bitDepth > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := int(info.NChannels)
	if channels <= 0 {
		stream.Close()
		return nil, audio.ErrInvalidChannels
	}

	frames := int64(-1)
	if info.NSamples > 0 {
		frames = int64(info.NSamples)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   channels,
		bitDepth:   bitDepth,
		frames:     frames,
	}, nil
}
