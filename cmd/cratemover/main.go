package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"cratemover/cmd/cratemover/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := commands.Execute(ctx)
	cancel()
	if err != nil {
		handleError(err)
		os.Exit(1)
	}
}

func handleError(err error) {
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	prefix := color.New(color.FgRed, color.Bold).Sprint("Error:")
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix, err)
}
