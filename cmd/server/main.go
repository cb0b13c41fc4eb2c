package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/quantum-portfolio/internal/config"
	"github.com/aristath/quantum-portfolio/internal/database"
	"github.com/aristath/quantum-portfolio/internal/modules/qaoa"
	"github.com/aristath/quantum-portfolio/internal/modules/runs"
	"github.com/aristath/quantum-portfolio/internal/scheduler"
	"github.com/aristath/quantum-portfolio/internal/server"
	"github.com/aristath/quantum-portfolio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting quantum portfolio service")

	runsDB, err := database.New(database.Config{
		Path: cfg.DataDir + "/runs.db",
		Name: "runs",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize runs database")
	}
	defer runsDB.Close()

	runsRepo := runs.NewRepository(runsDB.Conn(), log)
	if err := runsRepo.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize runs schema")
	}

	solveService := qaoa.NewService(qaoa.ServiceConfig{
		MaxQubits:    cfg.MaxQubits,
		DefaultDepth: cfg.DefaultDepth,
		DefaultShots: cfg.DefaultShots,
		DefaultSeed:  cfg.DefaultSeed,
		Optimizer: qaoa.OptimizerConfig{
			Starts:         cfg.OptimizerStart,
			MaxEvaluations: cfg.OptimizerEvals,
			RandomSamples:  cfg.RandomSamples,
			Mode:           cfg.OptimizerMode,
		},
	}, log)

	sched := scheduler.New(log)
	retention := runs.NewRetentionJob(runsRepo, cfg.RetentionDays, log)
	if err := sched.AddJob("@daily", retention); err != nil {
		log.Fatal().Err(err).Msg("Failed to register retention job")
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Log:         log,
		Config:      cfg,
		QAOAHandler: qaoa.NewHandler(solveService, runsRepo, log),
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
