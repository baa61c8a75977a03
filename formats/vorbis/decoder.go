// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audsig/audio"
)

const defaultBufSize = 4096

// oggReader is the part of oggvorbis.Reader the source needs.
// Read fills p with interleaved values and returns how many it wrote.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frames     int64
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return defaultBufSize - defaultBufSize%s.channels }
func (s *source) Frames() int64   { return s.frames }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:whole])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}

	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

// Decoder decodes Ogg Vorbis streams via github.com/jfreymuth/oggvorbis.
// Samples are already float32 and are passed through unchanged.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening vorbis: %w", err)
	}

	if dec.Channels() <= 0 {
		return nil, audio.ErrInvalidChannels
	}

	frames := int64(-1)
	if l := dec.Length(); l > 0 {
		frames = l
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frames:     frames,
	}, nil
}
