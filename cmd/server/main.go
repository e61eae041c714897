package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"trip_aggregator/internal/config"
	"trip_aggregator/internal/obs"
	"trip_aggregator/internal/publisher"
	"trip_aggregator/internal/service"
	"trip_aggregator/internal/source/amadeus"
	"trip_aggregator/internal/source/predicthq"
	"trip_aggregator/internal/source/ticketmaster"
	"trip_aggregator/internal/storage/postgres"
	transport "trip_aggregator/internal/transport/http"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	metrics := obs.NewMetrics(prometheus.NewRegistry())

	// Search audit log, optional
	var store service.SearchLogStore
	if cfg.Database.Enabled() {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to database")

		store = postgres.NewSearchLogStore(db)
	}

	// Search-event publisher, optional
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()

		pub = rabbitMQ
	}

	// Initialize provider clients
	amadeusClient := amadeus.New(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Currency:     cfg.Amadeus.Currency,
		MaxOffers:    cfg.Amadeus.MaxOffers,
		Timeout:      cfg.Amadeus.Timeout,
	}, logger)

	ticketmasterSource := ticketmaster.New(ticketmaster.Config{
		BaseURL: cfg.Ticketmaster.BaseURL,
		APIKey:  cfg.Ticketmaster.APIKey,
		Timeout: cfg.Ticketmaster.Timeout,
	}, logger)

	predicthqSource := predicthq.New(predicthq.Config{
		BaseURL: cfg.PredictHQ.BaseURL,
		Token:   cfg.PredictHQ.Token,
		Country: cfg.PredictHQ.Country,
		Limit:   cfg.PredictHQ.Limit,
		Timeout: cfg.PredictHQ.Timeout,
	}, logger)

	// Wire services
	flightService := service.NewFlightService(amadeusClient, store, pub, metrics, logger)
	hotelService := service.NewHotelService(amadeusClient, store, pub, metrics, logger)
	eventService := service.NewEventService(ticketmasterSource, predicthqSource, store, pub, metrics, logger)

	handler := transport.NewHandler(flightService, hotelService, eventService)
	router := transport.NewRouter(handler, metrics, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("starting trip aggregator", "addr", cfg.Server.Addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
