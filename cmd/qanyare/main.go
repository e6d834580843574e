// Command qanyare is the terminal client for the restaurant API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/qanyare/restaurant-service/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
