package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/hupe1980/maskscore/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
