package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-sync/internal/handlers/v1/status"
	"github.com/carson-networks/expense-sync/internal/handlers/v1/transaction"
	"github.com/carson-networks/expense-sync/internal/logging"
	"github.com/carson-networks/expense-sync/internal/operator"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Operator *operator.OperatorDelegator
}

// Router builds the chi router with the status probe and the huma v1 API.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler()
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humachi.New(router, huma.DefaultConfig("expense-sync", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	transaction.NewSyncTransactionsHandler(r.Operator).Register(api)
	transaction.NewRecategorizeTransactionsHandler(r.Operator).Register(api)

	return router
}

// Serve blocks until ctx is cancelled or the listener fails.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:    ":" + r.Port,
		Handler: r.Router(),
		// sync runs remote paging and inference inside the request
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(10) * time.Minute,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
