// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audsig"
	"github.com/ik5/audsig/formats/wav"
)

func newConvertCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output.wav>",
		Short: "Convert a file to mono 16-bit WAV at --rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := audsig.DefaultRegistry().Lookup(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", audsig.ErrUnsupportedFormat, args[0])
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			src, err := dec.Decode(in)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			defer src.Close()

			pcm16, rate, err := audsig.ResampleToMono16(src, global.rate, global.block)
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()

			if err := wav.WriteWAV16(out, rate, 1, pcm16); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d samples at %d Hz\n", args[1], len(pcm16), rate)

			return out.Close()
		},
	}
}
