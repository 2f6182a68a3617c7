package main

import (
	"context"

	"github.com/pixil98/go-log"
	"github.com/pixil98/go-oceania/cmd/oceania/command"
	"github.com/pixil98/go-service"
)

func main() {
	logger := log.NewLogger()
	logger.Info("starting oceania")

	app, err := service.NewApp(&command.Config{}, command.BuildWorkers)
	if err != nil {
		logger.WithError(err).Fatal("building application")
	}

	if err := app.Run(context.Background()); err != nil {
		logger.WithError(err).Fatal("running application")
	}

	logger.Info("shutdown complete")
}
