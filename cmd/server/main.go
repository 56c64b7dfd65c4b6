package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/service"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/store"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/infrastructure/config"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/infrastructure/feed"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/infrastructure/memory"
	"github.com/DeveloperRam-Coder/AllSync-CRM/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	// --- Repositories ---
	appointmentRepo := memory.NewAppointmentRepository()
	clientRepo := memory.NewClientRepository()
	activityRepo := memory.NewActivityRepository()

	// --- Services ---
	activityService := service.NewActivityFeedService(activityRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	dashboardService := service.NewDashboardService(appointmentRepo, clientRepo, activityService, log)

	// --- Activity feed: store changes flow through the sharded dispatcher ---
	dispatcher := feed.NewDispatcher(cfg.FeedWorkers, activityService, log)
	dispatcher.Start(ctx)

	appointmentRepo.Watch(func(change store.Change[domain.Appointment]) {
		dispatcher.Enqueue(feed.AppointmentEntry(change))
	})
	clientRepo.Watch(func(change store.Change[domain.Client]) {
		dispatcher.Enqueue(feed.ClientEntry(change))
	})

	if cfg.DemoData {
		if err := memory.SeedDemoData(ctx, appointmentRepo, clientRepo); err != nil {
			log.Fatal().Err(err).Msg("seeding demo data")
		}
		log.Info().Msg("demo data seeded")
	}

	e := api.NewRouter(api.Dependencies{
		Appointments: appointmentService,
		Clients:      clientService,
		Dashboard:    dashboardService,
		Activity:     activityService,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
