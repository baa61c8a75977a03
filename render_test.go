// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats/wav"
	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/signal"
)

func monoTable() *signal.Frames[frame.Mono] {
	return signal.NewFrames(4, []frame.Mono{1, 2, 3})
}

func TestRender_CycleWraps(t *testing.T) {
	t.Parallel()

	got := Render[frame.Mono](signal.NewCycle(monoTable()), 4, 7, 0)
	assert.Equal(t, []frame.Mono{1, 2, 3, 1, 2, 3, 1}, got)
}

func TestRender_BlockSizeDoesNotChangeOutput(t *testing.T) {
	t.Parallel()

	want := Render[frame.Mono](signal.FramesSignalFrom(monoTable()), 8, 9, 9)

	for _, block := range []int{1, 2, 4, 5, 100} {
		got := Render[frame.Mono](signal.FramesSignalFrom(monoTable()), 8, 9, block)
		assert.Equal(t, want, got, "block %d", block)

		got = Render[frame.Mono](signal.NewCycle(monoTable()), 8, 9, block)
		assert.Equal(t, Render[frame.Mono](signal.NewCycle(monoTable()), 8, 9, 9), got, "cycle block %d", block)
	}
}

func TestRender_NonPositive(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Render[frame.Mono](signal.NewCycle(monoTable()), 4, -3, 1))
	assert.Panics(t, func() {
		Render[frame.Mono](signal.NewCycle(monoTable()), 0, 4, 1)
	})
}

func TestRenderInto_ZeroAllocs(t *testing.T) {
	sig := signal.NewStop[frame.Mono](signal.NewCycle(monoTable()))
	out := make([]frame.Mono, 1024)

	allocs := testing.AllocsPerRun(100, func() {
		RenderInto[frame.Mono](sig, 48000, out, 128)
	})

	assert.Zero(t, allocs)
}

func TestUntil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sig   func() signal.Signal[frame.Mono]
		block int
		limit int
		want  int
	}{
		// 3 frames at 4 Hz is 0.75s; two blocks of 2 frames end at 1s.
		{"one-shot stops after end", func() signal.Signal[frame.Mono] { return signal.FramesSignalFrom(monoTable()) }, 2, 100, 4},
		{"limit trims last block", func() signal.Signal[frame.Mono] { return signal.FramesSignalFrom(monoTable()) }, 2, 3, 3},
		{"cycle runs to limit", func() signal.Signal[frame.Mono] { return signal.NewCycle(monoTable()) }, 4, 10, 10},
		{"already finished", func() signal.Signal[frame.Mono] { return signal.NewFramesSignal(monoTable(), 5) }, 4, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Len(t, Until(tt.sig(), 4, tt.block, tt.limit), tt.want)
		})
	}
}

func TestRenderWAV(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	defer f.Close()

	tone := signal.NewFrames(8000, []frame.Stereo{{0.5, -0.5}})
	require.NoError(t, RenderWAV(f, signal.NewCycle(tone), 8000, 0.1))

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	src, err := wav.Decoder{}.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, int64(800), audio.DeclaredFrames(src))

	samples, err := audio.ReadAll(src)
	require.NoError(t, err)
	require.Len(t, samples, 1600)
	assert.InDelta(t, 0.5, samples[0], 1e-3)
	assert.InDelta(t, -0.5, samples[1599], 1e-3)
}

func TestRenderWAV_InvalidRate(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	defer f.Close()

	err = RenderWAV(f, signal.NewCycle(signal.NewFrames(8000, []frame.Stereo{{}})), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func BenchmarkRenderInto(b *testing.B) {
	sig := signal.NewCycle(signal.NewFrames(48000, make([]frame.Stereo, 4800)))
	out := make([]frame.Stereo, 512)

	b.ReportAllocs()

	for b.Loop() {
		RenderInto[frame.Stereo](sig, 44100, out, 512)
	}
}
