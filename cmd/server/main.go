package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-futures-backend/internal/config"
	"github.com/MKhiriev/go-futures-backend/internal/handler"
	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/server"
	"github.com/MKhiriev/go-futures-backend/internal/service"
	"github.com/MKhiriev/go-futures-backend/internal/workers"
	"github.com/MKhiriev/go-futures-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("rl-futures-server").Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := newLogger(cfg.Log)
	defer closeLog()

	log.Debug().Any("config", cfg).Msg("received configs")

	sampler := health.NewHostSampler(cfg.Health.DiskPath, cfg.Health.CPUSampleInterval)
	services, err := service.NewServices(*cfg, sampler, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var publishers []workers.ServingStatusPublisher
	if handlers.GRPC != nil {
		publishers = append(publishers, handlers.GRPC)
	}

	bg := workers.NewWorkers(
		workers.NewHealthProbeWorker(services.Health, services.Metrics, cfg.Health.ProbeInterval, log, publishers...),
		workers.NewLimiterSweepWorker(services.Limits, cfg.Limits.SweepInterval, log),
	)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		closeLog()
		os.Exit(1)
	}
}

// newLogger builds the process logger at the configured level, also writing
// to cfg.File when set. The returned func closes that file.
func newLogger(cfg config.Log) (*logger.Logger, func()) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		// validated by config; keep the default
		level, _ = logger.ParseLevel("")
	}

	opts := []logger.Option{logger.WithLevel(level)}
	closeFn := func() {}

	if cfg.File != "" {
		f, err := logger.OpenFile(cfg.File)
		if err != nil {
			logger.NewLogger("rl-futures-server").Fatal().Err(err).Str("file", cfg.File).Msg("error opening log file")
		}
		opts = append(opts, logger.WithWriter(f))
		closeFn = func() { _ = f.Close() }
	}

	return logger.NewLogger("rl-futures-server", opts...), closeFn
}

func printBuildInfo(info models.AppBuildInfo) {
	info = info.OrNA()

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
