package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ticketledger/internal/config"
	"ticketledger/internal/http-server/handlers/event/createEvent"
	"ticketledger/internal/http-server/handlers/event/getAllEvents"
	"ticketledger/internal/http-server/handlers/event/getAuditTrail"
	"ticketledger/internal/http-server/handlers/event/getEventInfo"
	"ticketledger/internal/http-server/handlers/event/getOrganizerEvents"
	"ticketledger/internal/http-server/handlers/ticket/getBalance"
	"ticketledger/internal/http-server/handlers/ticket/getTicket"
	"ticketledger/internal/http-server/handlers/ticket/mintTicket"
	"ticketledger/internal/http-server/handlers/ticket/requestRefund"
	"ticketledger/internal/http-server/handlers/ticket/scanTicket"
	"ticketledger/internal/http-server/handlers/ticket/vote"
	"ticketledger/internal/http-server/handlers/ticket/withdrawFunds"
	"ticketledger/internal/http-server/middleware/mwlogger"
	"ticketledger/internal/ledger"
	"ticketledger/internal/lib/logger/handlers/slogpretty"
	"ticketledger/internal/lib/logger/sl"
	"ticketledger/internal/registry"
	"ticketledger/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting ticket ledger", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	reg := registry.New(storage, ledger.SystemClock(), log)

	if err = reg.Restore(); err != nil {
		log.Error("failed to restore ledgers", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, reg))
	router.Get("/events", getAllEvents.New(log, reg))
	router.Get("/events/organizer/{address}", getOrganizerEvents.New(log, reg))
	router.Get("/events/{id}", getEventInfo.New(log, reg))
	router.Get("/events/{id}/audit", getAuditTrail.New(log, storage))

	router.Post("/events/{id}/tickets", mintTicket.New(log, reg))
	router.Get("/events/{id}/tickets/{tokenId}", getTicket.New(log, reg))
	router.Post("/events/{id}/tickets/{tokenId}/refund", requestRefund.New(log, reg))
	router.Post("/events/{id}/tickets/{tokenId}/scan", scanTicket.New(log, reg))
	router.Post("/events/{id}/tickets/{tokenId}/vote", vote.New(log, reg))
	router.Post("/events/{id}/withdraw", withdrawFunds.New(log, reg))
	router.Get("/events/{id}/holders/{address}", getBalance.New(log, reg))

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := storage.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
