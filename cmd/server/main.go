package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eurocompare/cmd/server/config"
	"eurocompare/internal/alerting"
	"eurocompare/internal/comparison"
	"eurocompare/internal/handler"
	"eurocompare/internal/history"
	"eurocompare/internal/notify"
	"eurocompare/internal/platform/cache"
	"eurocompare/internal/platform/storage"
	"eurocompare/internal/pricetext"
	"eurocompare/internal/scraper"

	"github.com/caarlos0/env/v6"
	redisrate "github.com/go-redis/redis_rate/v10"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	store := storage.NewPostgres(pgDB)
	responseCache := cache.New(redisClient, cfg.CacheTTL)
	normalizer := pricetext.NewNormalizer()
	source := scraper.NewScraper(
		scraper.WithRateLimiter(redisrate.NewLimiter(redisClient), cfg.ScrapesPerMinute),
	)

	historian := history.NewService(store)
	notifier := notify.NewEmailNotifier(notify.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, logger)
	evaluator := alerting.NewEvaluator(store, notifier, alerting.WithEvaluatorLogger(logger))
	alerts := alerting.NewService(store, cfg.PriceCeiling)

	comparer := comparison.NewComparer(
		source,
		normalizer,
		historian,
		evaluator,
		responseCache,
		comparison.WithLogger(logger),
		comparison.WithCountryTimeout(cfg.CountryTimeout),
	)
	searcher := comparison.NewSearcher(
		source,
		normalizer,
		responseCache,
		comparison.WithSearcherLogger(logger),
	)

	api := handler.NewHTTPHandler(comparer, searcher, historian, alerts, &logger)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", api.Router())

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("API server up and running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().
				Err(err).
				Msg("can't serve HTTP")
		}
	}()

	<-ctx.Done()

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shut down HTTP server")
	}

	// Let in-flight history writes and alert evaluations finish.
	comparer.Wait()

	if err := pgDB.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close Postgres connection")
	}
	if err := redisClient.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close Redis connection")
	}

	logger.Info().Msg("graceful shutdown successful")
}
