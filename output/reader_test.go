// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"encoding/binary"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/signal"
)

var ramp = []frame.Stereo{{0.25, -0.25}, {0.5, -0.5}, {0.75, -0.75}}

func newLoop() *signal.Stop[frame.Stereo] {
	return signal.NewStop[frame.Stereo](signal.NewCycle(signal.NewFrames(4, ramp)))
}

func decode(p []byte) []frame.Stereo {
	out := make([]frame.Stereo, len(p)/BytesPerFrame)
	for i := range out {
		off := i * BytesPerFrame
		out[i] = frame.Stereo{
			math.Float32frombits(binary.LittleEndian.Uint32(p[off:])),
			math.Float32frombits(binary.LittleEndian.Uint32(p[off+4:])),
		}
	}

	return out
}

func TestReader_EncodesFloat32LE(t *testing.T) {
	t.Parallel()

	r := NewReader(newLoop(), 4, 0)
	p := make([]byte, 4*BytesPerFrame)

	n, err := r.Read(p)
	require.NoError(t, err)
	require.Equal(t, len(p), n)

	assert.Equal(t, []frame.Stereo{ramp[0], ramp[1], ramp[2], ramp[0]}, decode(p))
}

func TestReader_BlockSizeDoesNotChangeOutput(t *testing.T) {
	t.Parallel()

	want := make([]byte, 7*BytesPerFrame)
	_, err := NewReader(newLoop(), 4, 7).Read(want)
	require.NoError(t, err)

	got := make([]byte, 7*BytesPerFrame)
	_, err = NewReader(newLoop(), 4, 3).Read(got)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestReader_PausedWritesSilenceWithoutAdvancing(t *testing.T) {
	t.Parallel()

	r := NewReader(newLoop(), 4, 0)
	p := make([]byte, BytesPerFrame)

	_, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, ramp[0], decode(p)[0])

	r.Control().Pause()
	for range 5 {
		p = []byte{1, 2, 3, 4, 5, 6, 7, 8}
		n, err := r.Read(p)
		require.NoError(t, err)
		assert.Equal(t, BytesPerFrame, n)
		assert.Equal(t, make([]byte, BytesPerFrame), p)
	}

	r.Control().Resume()
	_, err = r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, ramp[1], decode(p)[0], "playback resumes where it paused")
}

func TestReader_StoppedEndsStream(t *testing.T) {
	t.Parallel()

	r := NewReader(newLoop(), 4, 0)
	r.Control().Stop()

	n, err := r.Read(make([]byte, 64))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	r.Control().Resume()
	_, err = r.Read(make([]byte, 64))
	assert.ErrorIs(t, err, io.EOF, "stop is terminal")
}

func TestReader_PartialFrameBytesUntouched(t *testing.T) {
	t.Parallel()

	p := make([]byte, BytesPerFrame+3)
	p[BytesPerFrame] = 0xAA

	n, err := NewReader(newLoop(), 4, 0).Read(p)
	require.NoError(t, err)
	assert.Equal(t, BytesPerFrame, n)
	assert.Equal(t, byte(0xAA), p[BytesPerFrame])

	n, err = NewReader(newLoop(), 4, 0).Read(make([]byte, 3))
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestReader_ZeroAllocs(t *testing.T) {
	r := NewReader(newLoop(), 48000, 128)
	p := make([]byte, 1024*BytesPerFrame)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = r.Read(p)
	})

	assert.Zero(t, allocs)
}

func TestReader_ConcurrentControl(t *testing.T) {
	r := NewReader(newLoop(), 48000, 64)
	ctl := r.Control()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			if i%2 == 0 {
				ctl.Pause()
			} else {
				ctl.Resume()
			}
		}
		ctl.Stop()
	}()

	p := make([]byte, 256*BytesPerFrame)
	for {
		if _, err := r.Read(p); err == io.EOF {
			break
		}
	}

	wg.Wait()
	assert.True(t, ctl.IsStopped())
}

func TestOpen_InvalidRate(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), 0, newLoop(), Options{})
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestNewReader_PanicsOnZeroRate(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewReader(newLoop(), 0, 0) })
}

func BenchmarkReader_Read(b *testing.B) {
	r := NewReader(newLoop(), 48000, DefaultBlock)
	p := make([]byte, 4096*BytesPerFrame)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = r.Read(p)
	}
}

func TestReader_StopAtEnd(t *testing.T) {
	t.Parallel()

	// 3 frames at 4 Hz, read 2 frames per call.
	clip := signal.NewStop[frame.Stereo](signal.FramesSignalFrom(signal.NewFrames(4, ramp)))
	r := NewReader(clip, 4, 0)
	r.StopAtEnd = true

	p := make([]byte, 2*BytesPerFrame)

	_, err := r.Read(p)
	require.NoError(t, err)
	assert.False(t, r.Control().IsStopped())

	_, err = r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, []frame.Stereo{ramp[2], {}}, decode(p))
	assert.True(t, r.Control().IsStopped())

	_, err = r.Read(p)
	assert.ErrorIs(t, err, io.EOF)
}
