package main

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/Drolfothesgnir/transducer/cli"
	"github.com/Drolfothesgnir/transducer/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading app.env config file, if any, and the environment
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// catching interrupt signals so the scan stops between tokens and the output is still flushed
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	waitGroup, ctx := errgroup.WithContext(ctx)

	var (
		code     int
		finished atomic.Bool
	)

	waitGroup.Go(func() error {
		// releasing the signal watcher below once the run is over
		defer stop()

		code = cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, config)
		finished.Store(true)
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		if !finished.Load() {
			log.Warn().Msg("interrupt received, stopping the scan")
		}

		return nil
	})

	if err = waitGroup.Wait(); err != nil {
		log.Error().Err(err).Msg("error from wait group")
	}

	os.Exit(code)
}
