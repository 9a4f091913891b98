package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/joy-trading/billing-server/api"
	"github.com/joy-trading/billing-server/internal/config"
	"github.com/joy-trading/billing-server/internal/logging"
	"github.com/joy-trading/billing-server/internal/operator"
	"github.com/joy-trading/billing-server/internal/service"
	"github.com/joy-trading/billing-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("billing-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
