package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/joy-trading/billing-server/internal/handlers/v1/customer"
	"github.com/joy-trading/billing-server/internal/handlers/v1/fish"
	"github.com/joy-trading/billing-server/internal/handlers/v1/status"
	"github.com/joy-trading/billing-server/internal/handlers/v1/summary"
	"github.com/joy-trading/billing-server/internal/handlers/v1/transaction"
	"github.com/joy-trading/billing-server/internal/logging"
	"github.com/joy-trading/billing-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("billing-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	customer.NewListCustomersHandler(r.Service.Customer).Register(humaAPI)
	customer.NewCreateCustomerHandler(r.Service.Customer).Register(humaAPI)

	fish.NewListFishHandler(r.Service.Fish).Register(humaAPI)
	fish.NewCreateFishHandler(r.Service.Fish).Register(humaAPI)
	fish.NewDeleteFishHandler(r.Service.Fish).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreatePaymentHandler(r.Service.Transaction).Register(humaAPI)

	summary.NewGetSummaryHandler(r.Service.Transaction).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
