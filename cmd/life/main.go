package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/MichaelDuPlessis/game-of-life/internal/app"
	"github.com/MichaelDuPlessis/game-of-life/internal/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sess, err := cfg.Session()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Generations > 0 {
		if err := term.RunHeadless(sess, cfg.Generations, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shell := term.New(sess, os.Stdin, os.Stdout, cfg.TPS, cfg.Paused)
	if err := shell.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
