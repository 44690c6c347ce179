// Command healthcheck probes a running backend's /health endpoint and exits
// 0 when it reports healthy or degraded, 1 otherwise. It is meant to be the
// container HEALTHCHECK.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-futures-backend/internal/health"
	"github.com/MKhiriev/go-futures-backend/internal/logger"
	"github.com/MKhiriev/go-futures-backend/internal/utils"
	"github.com/caarlos0/env/v11"
)

type probeConfig struct {
	URL     string        `env:"HEALTHCHECK_URL" envDefault:"http://127.0.0.1:8000"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"5s"`
}

func main() {
	log := logger.NewLogger("rl-futures-healthcheck")

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	status, err := probe(ctx, utils.NewHTTPClient(cfg.URL, cfg.Timeout))
	if err != nil {
		log.Error().Err(err).Str("url", cfg.URL).Msg("health probe failed")
		os.Exit(1)
	}

	log.Info().Str("status", string(status)).Msg("health probe finished")
	if !status.Serving() {
		os.Exit(1)
	}
}

// loadConfig reads the environment first; flags override it.
func loadConfig(args []string) (probeConfig, error) {
	var cfg probeConfig
	if err := env.Parse(&cfg); err != nil {
		return probeConfig{}, fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.StringVar(&cfg.URL, "url", cfg.URL, "base URL of the backend")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "probe timeout")
	if err := fs.Parse(args); err != nil {
		return probeConfig{}, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}

// probe returns the status reported by GET /health.
func probe(ctx context.Context, client *utils.HTTPClient) (health.Status, error) {
	var snapshot health.Snapshot
	code, err := client.GetJSON(ctx, "/health", &snapshot)
	if err != nil {
		return "", err
	}
	if code != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d", code)
	}

	return snapshot.Status, nil
}
