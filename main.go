package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-sync/api"
	"github.com/carson-networks/expense-sync/internal/app"
	"github.com/carson-networks/expense-sync/internal/config"
	"github.com/carson-networks/expense-sync/internal/logging"
	"github.com/carson-networks/expense-sync/internal/operator"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("expense-sync starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, envConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("app.New")
		return
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.WithError(err).Error("app.Close")
		}
	}()

	delegator := operator.NewOperatorDelegator(application.Service, 1)
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Operator: delegator,
		}
		httpRest.Serve(ctx)
	}()

	wg.Wait()
}
