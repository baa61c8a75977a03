// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audsig/output"
)

func newPlayCmd(global *globalOptions) *cobra.Command {
	var (
		graph   graphOptions
		latency time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Play a file on the default audio device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, _, err := graph.build(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			dev, err := output.Open(ctx, global.rate, stop, output.Options{
				Block:     global.block,
				Latency:   latency,
				StopAtEnd: !graph.loop,
			})
			if err != nil {
				return err
			}
			defer dev.Close()

			err = dev.Wait(ctx)
			if errors.Is(err, context.Canceled) {
				logger.Debug("interrupted")
				dev.Control().Stop()
				return nil
			}

			return err
		},
	}

	graph.bind(cmd)
	cmd.Flags().DurationVar(&latency, "latency", 0, "Device buffer length, for example 40ms")

	return cmd
}
