package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"dating/internal/client/cli"
	"dating/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Run(ctx, os.Args[1:], cli.Options{
		Stdin: os.Stdin,
		In:    os.Stdin,
		Out:   os.Stdout,
		Err:   os.Stderr,
	})

	switch {
	case err == nil:
		return
	case errors.Is(err, cli.ErrUsage):
		stop()
		os.Exit(2)
	case !cli.Reported(err):
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	stop()
	os.Exit(1)
}
