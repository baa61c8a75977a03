// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audsig/audio"
)

const (
	// go-mp3 always emits interleaved 16-bit little-endian stereo.
	outChannels    = 2
	bytesPerSample = 2
	bytesPerFrame  = outChannels * bytesPerSample
	defaultBufSize = 8192
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	frames     int64
	buf        []byte
	// carry holds a low byte left over when Read stops mid-sample.
	carry    byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

// Frames is -1 when the stream length is unknown.
func (s *source) Frames() int64 { return s.frames }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	off := 0
	if s.hasCarry {
		s.buf[0] = s.carry
		s.hasCarry = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off

	samples := n / bytesPerSample
	if n%bytesPerSample != 0 {
		s.carry = s.buf[n-1]
		s.hasCarry = true
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = float32(v) / 32768.0
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}

	if samples == 0 && err == io.EOF {
		return 0, io.EOF
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams via github.com/hajimehoshi/go-mp3.
// Output is always stereo regardless of the source channel mode.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3: %w", err)
	}

	frames := int64(-1)
	if l := dec.Length(); l >= 0 {
		frames = l / bytesPerFrame
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   outChannels,
		frames:     frames,
		buf:        make([]byte, defaultBufSize),
	}, nil
}
