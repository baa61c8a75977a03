// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audsig"
	"github.com/ik5/audsig/audio"
)

func newInfoCmd() *cobra.Command {
	var scan bool

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show the format of an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0], scan)
		},
	}

	cmd.Flags().BoolVar(&scan, "scan", false, "Decode the whole file to count frames")

	return cmd
}

func runInfo(cmd *cobra.Command, path string, scan bool) error {
	dec, err := audsig.DefaultRegistry().Lookup(path)
	if err != nil {
		return fmt.Errorf("%w: %s", audsig.ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "file:     %s\n", path)
	fmt.Fprintf(out, "rate:     %d Hz\n", src.SampleRate())
	fmt.Fprintf(out, "channels: %d\n", src.Channels())

	if n := audio.DeclaredFrames(src); n >= 0 {
		fmt.Fprintf(out, "frames:   %d (%s)\n", n, frameDuration(n, src.SampleRate()))
	} else {
		fmt.Fprintln(out, "frames:   unknown")
	}

	if scan {
		samples, err := audio.ReadAll(src)
		if err != nil {
			return err
		}
		n := int64(len(samples) / src.Channels())
		fmt.Fprintf(out, "decoded:  %d (%s)\n", n, frameDuration(n, src.SampleRate()))
	}

	return nil
}

func frameDuration(frames int64, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}

	return time.Duration(float64(frames) / float64(rate) * float64(time.Second)).Round(time.Millisecond)
}
