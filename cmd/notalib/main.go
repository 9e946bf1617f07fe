package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kirill-Lekhov/notalib/internal/cli"
)

func main() {
	// Cancel on SIGINT or SIGTERM so a running command can wind down.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	os.Exit(cli.Execute(ctx))
}
