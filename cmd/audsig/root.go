// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/ik5/audsig/log"
)

const (
	defaultRate  = 48000
	defaultBlock = 512
)

type globalOptions struct {
	rate    int
	block   int
	verbose bool
}

var logger = log.GetLogger()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "audsig",
		Short:         "Load audio files into signals and render or play them",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetDebug(true)
			}
			logger = log.GetLogger()
		},
	}

	root.SetHelpCommand(&cobra.Command{Hidden: true})

	root.PersistentFlags().IntVarP(&opts.rate, "rate", "r", defaultRate,
		"Output sample rate, measured in Hertz (Hz)")
	root.PersistentFlags().IntVarP(&opts.block, "block", "b", defaultBlock,
		"Frames per Sample call")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Show debug output (same as "+log.DebugEnv+"=1)")

	root.AddCommand(
		newInfoCmd(),
		newRenderCmd(opts),
		newPlayCmd(opts),
		newConvertCmd(opts),
	)

	return root
}
