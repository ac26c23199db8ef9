package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/posclient"
	"github.com/mgeorge47/canteen-console-api/internal/api"
	"github.com/mgeorge47/canteen-console-api/internal/config"
	"github.com/mgeorge47/canteen-console-api/internal/scheduler"
	"github.com/mgeorge47/canteen-console-api/internal/session"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/authenticating"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/catalog"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionStore := newSessionStore(cfg)

	posClient := posclient.NewClient(cfg)

	authenticator := authenticating.NewService(cfg, posClient, sessionStore)

	reportingService := reporting.NewService(posClient)
	views := reporting.NewViewRegistry(reportingService)

	catalogService := catalog.NewService(posClient)

	catalogRefreshService := scheduler.NewCatalogRefreshService(catalogService, cfg)
	if err := catalogRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting catalog refresh scheduler")
	}

	server, err := api.New(
		cfg,
		reportingService,
		views,
		catalogService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and behavior
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newSessionStore selects the session backend from configuration
func newSessionStore(cfg *config.Config) session.Store {
	switch cfg.Session.Backend {
	case "redis":
		logrus.WithField("addr", cfg.Redis.Addr).Info("using Redis session store")
		return session.NewRedisStore(cfg.Redis.Addr, cfg.Session.TTL)
	default:
		logrus.Info("using in-memory session store")
		return session.NewMemoryStore(cfg.Session.TTL)
	}
}
