package main

import (
	"context"
	_ "net/http/pprof"
	"strings"
	"time"

	"email_size_analyzer/internal/application/config"
	"email_size_analyzer/internal/http"

	log "github.com/sirupsen/logrus"
)

func main() {
	logInstance := log.New()
	cfg, err := config.NewAppConfig()
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to load config`)
		return
	}

	logLevel, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		logInstance.WithError(err).Fatal(`Failed to parse log level`)
		return
	}

	logInstance.SetFormatter(&log.JSONFormatter{
		TimestampFormat:   time.RFC3339,
		DisableHTMLEscape: true,
	})
	logInstance.SetLevel(logLevel)
	if cfg.DebugMode {
		logInstance.SetReportCaller(true)
	}

	ctx := context.WithoutCancel(context.Background())

	http.Init(ctx, logInstance, cfg)
}
