package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookrec/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newApp(cfg, os.Stdout, os.Stderr).execute(ctx, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
