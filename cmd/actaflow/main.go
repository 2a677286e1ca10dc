package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/evarisis/actaflow/internal/audio/mic"
	"github.com/evarisis/actaflow/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	deps := &cli.Dependencies{NewCapturer: mic.New}
	return cli.NewRootCmd(deps).ExecuteContext(ctx)
}
