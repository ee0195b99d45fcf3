package http

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServerConfig struct {
	Host     string
	Timeouts struct {
		Read         time.Duration
		ReadHeader   time.Duration
		Write        time.Duration
		Idle         time.Duration
		ShutdownWait time.Duration
	}
}

func NewHTTPServerConfig() (*HTTPServerConfig, error) {
	err := godotenv.Load(`config.env`)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading config.env: %w", err)
	}

	return httpConfigFromEnv()
}

func httpConfigFromEnv() (*HTTPServerConfig, error) {
	var errs []string
	cfg := &HTTPServerConfig{}

	cfg.Host = os.Getenv("HTTP_SERVER_HOST")
	if cfg.Host == "" {
		errs = append(errs, "HTTP_SERVER_HOST is required")
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"HTTP_APP_READ_TIMEOUT_DURATION", &cfg.Timeouts.Read},
		{"HTTP_APP_READ_HEADER_TIMEOUT_DURATION", &cfg.Timeouts.ReadHeader},
		{"HTTP_APP_WRITE_TIMEOUT_DURATION", &cfg.Timeouts.Write},
		{"HTTP_APP_IDLE_TIMEOUT_DURATION", &cfg.Timeouts.Idle},
		{"HTTP_APP_SHUTDOWN_TIMEOUT_DURATION", &cfg.Timeouts.ShutdownWait},
	}

	for _, d := range durations {
		value := os.Getenv(d.env)
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", d.env))
			continue
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid duration format: %v", d.env, err))
			continue
		}
		*d.dst = parsed
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return cfg, nil
}
