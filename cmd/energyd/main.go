package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"energy-dashboard-backend/config"
	"energy-dashboard-backend/internal/alerts"
	"energy-dashboard-backend/internal/api"
	"energy-dashboard-backend/internal/db"
	"energy-dashboard-backend/internal/notification"
	"energy-dashboard-backend/internal/simulate"
	"energy-dashboard-backend/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", configPath).Msg("no config file found, using defaults")
			cfg = config.Default()
		} else {
			log.Fatal().Err(err).Str("path", configPath).Msg("failed to load configuration")
		}
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// The store and synthesizer are session state: created here, discarded at
	// shutdown. Nothing outlives the process.
	appStore := store.NewSeeded(rand.New(rand.NewSource(seed)))
	generator := simulate.NewGenerator(rand.New(rand.NewSource(seed + 1)))
	log.Info().Int("devices", len(appStore.Devices())).Int("recommendations", len(appStore.Recommendations())).Msg("store seeded")

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize subscription registry")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	webpushOptions := &webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	if cfg.Monitor.Enabled {
		if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
			log.Warn().Msg("alert monitor enabled but VAPID keys are not configured; notifications will fail to send")
		}
		pool := notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions, log.Logger)
		pool.Start(ctx)

		monitor := alerts.NewMonitor(appStore, pool, cfg.Monitor.Interval, log.Logger)
		go monitor.Run(ctx)
	}

	router := api.NewRouter(cfg, appStore, generator, gormDB, webpushOptions)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("http server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server exited")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutdown signal received, stopping services")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("http server shutdown failed")
	}

	log.Info().Msg("server gracefully stopped")
}
