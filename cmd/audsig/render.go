// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audsig"
)

var errNeedSeconds = errors.New("--seconds is required with --loop")

func newRenderCmd(global *globalOptions) *cobra.Command {
	var (
		graph   graphOptions
		seconds float64
	)

	cmd := &cobra.Command{
		Use:   "render <input> <output.wav>",
		Short: "Render a file through the signal graph into a 16-bit WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, buf, err := graph.build(args[0])
			if err != nil {
				return err
			}

			if seconds <= 0 {
				if graph.loop {
					return errNeedSeconds
				}
				seconds = buf.Duration() - graph.start
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()

			if err := audsig.RenderWAV(out, stop, global.rate, seconds); err != nil {
				return fmt.Errorf("rendering %s: %w", args[1], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %.3fs at %d Hz\n", args[1], seconds, global.rate)

			return out.Close()
		},
	}

	graph.bind(cmd)
	cmd.Flags().Float64VarP(&seconds, "seconds", "t", 0, "Length to render; defaults to the buffer length")

	return cmd
}
