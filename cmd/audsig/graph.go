// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audsig"
	"github.com/ik5/audsig/frame"
	"github.com/ik5/audsig/signal"
)

// graphOptions describe how a loaded buffer is turned into a signal.
type graphOptions struct {
	loop  bool
	start float64
}

func (g *graphOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&g.loop, "loop", "l", false, "Loop the buffer instead of playing it once")
	cmd.Flags().Float64Var(&g.start, "start", 0,
		"Start offset in seconds; negative delays a one-shot start")
}

// build loads path and wraps it in a stoppable signal. It also returns
// the buffer so callers can size renders from its duration.
func (g *graphOptions) build(path string) (*signal.Stop[frame.Stereo], *signal.Frames[frame.Stereo], error) {
	buf, err := audsig.LoadFile(path, nil)
	if err != nil {
		return nil, nil, err
	}

	logger.WithField("frames", buf.Len()).
		WithField("rate", buf.Rate()).
		Debugf("loaded %s", path)

	var inner signal.Signal[frame.Stereo]
	if g.loop {
		if g.start != 0 {
			return nil, nil, fmt.Errorf("--start is not supported with --loop")
		}
		inner = signal.NewCycle(buf)
	} else {
		inner = signal.NewFramesSignal(buf, g.start)
	}

	return signal.NewStop(inner), buf, nil
}
