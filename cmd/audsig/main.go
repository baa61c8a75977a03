// SPDX-License-Identifier: EPL-2.0

// Command audsig inspects, renders and plays audio files through the
// signal graph.
package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
)

func main() {
	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "audsig:", err)
		cancel()
		os.Exit(1)
	}
}
