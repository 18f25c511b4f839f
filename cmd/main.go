package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	app "deepfake-detect/internal/application"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// ранние выходы уже напечатаны Runner'ом
		if !app.Reported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
