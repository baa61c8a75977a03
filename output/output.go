// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/log"
	"github.com/ik5/audsig/signal"
)

const pollInterval = 20 * time.Millisecond

// Options tune the device. Zero values pick the backend defaults.
type Options struct {
	// Block is the frames per Sample call.
	Block int
	// Latency is the device buffer duration.
	Latency time.Duration
	// StopAtEnd ends playback when the signal runs out. See Reader.
	StopAtEnd bool
}

// Device plays one signal through the default audio output.
// oto allows a single context per process, so only one Device may be open.
type Device struct {
	otoCtx *oto.Context
	player *oto.Player
	reader *Reader
}

// Open starts playing sig at rate Hz. It blocks until the backend is
// ready or ctx is done.
func Open(ctx context.Context, rate int, sig *signal.Stop[frame.Stereo], opts Options) (*Device, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   opts.Latency,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDevice, err)
	}

	select {
	case <-ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	reader := NewReader(sig, rate, opts.Block)
	reader.StopAtEnd = opts.StopAtEnd
	player := otoCtx.NewPlayer(reader)
	player.Play()

	log.GetLogger().WithField("rate", rate).Debug("playback started")

	return &Device{otoCtx: otoCtx, player: player, reader: reader}, nil
}

// Control returns the handle of the playing signal.
func (d *Device) Control() signal.StopControl { return d.reader.Control() }

// Wait blocks until playback drains after a stop, or ctx is done.
func (d *Device) Wait(ctx context.Context) error {
	t := time.NewTicker(pollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if !d.player.IsPlaying() {
				return d.player.Err()
			}
		}
	}
}

// Close stops the signal and releases the player.
func (d *Device) Close() error {
	d.reader.Control().Stop()

	if err := d.player.Close(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}

	return d.otoCtx.Suspend()
}
