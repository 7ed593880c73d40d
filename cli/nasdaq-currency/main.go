package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/malusev998/nasdaq-currency/cli/cmd"
	"github.com/malusev998/nasdaq-currency/reference"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(&cmd.Config{
		Ctx:     ctx,
		Catalog: reference.Default(),
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
	})

	stop()

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr)
		os.Exit(130)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
