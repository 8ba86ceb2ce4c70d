package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/mathkit/app/demo"
	"github.com/dmitrymomot/mathkit/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.WithOutput(os.Stderr))

	app, err := demo.NewApp()
	if err != nil {
		log.Error("Failed to create app", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	runErr := app.Run(ctx)
	if err := app.Close(); err != nil {
		log.Error("Failed to close log file", logger.Component("app"), logger.Error(err))
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Failed to run app", logger.Component("app"), logger.Error(runErr))
		os.Exit(1)
	}
}
