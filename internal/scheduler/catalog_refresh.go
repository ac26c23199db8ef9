package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mgeorge47/canteen-console-api/internal/config"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/catalog"
)

// CatalogRefreshConfig holds the scheduling settings for the periodic
// catalog refetch.
type CatalogRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// CatalogRefreshService periodically refetches the menu tree so long-lived
// console processes do not drift from edits made elsewhere. It runs only
// when a service credential is configured; interactive sessions are never
// borrowed for background work.
type CatalogRefreshService struct {
	scheduler         *gocron.Scheduler
	config            CatalogRefreshConfig
	appConfig         *config.Config
	catalogService    catalog.Cataloger
	refreshRunning    bool
	refreshMutex      sync.Mutex
	lastRefreshAt     time.Time
	lastRefreshFailed bool
}

func NewCatalogRefreshService(catalogService catalog.Cataloger, appConfig *config.Config) *CatalogRefreshService {
	refreshConfig := CatalogRefreshConfig{
		CronSchedule:   appConfig.CatalogRefresh.CronSchedule,
		RefreshEnabled: appConfig.CatalogRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("catalog refresh scheduler configuration loaded")

	return &CatalogRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		appConfig:      appConfig,
		catalogService: catalogService,
	}
}

// Start schedules the refresh job and stops it when the context is
// cancelled.
func (s *CatalogRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("catalog refresh disabled by configuration")
		return nil
	}

	if s.appConfig.POS.ServiceCredential == "" {
		logrus.Warn("catalog refresh enabled but no service credential configured, skipping")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting catalog refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshCatalog(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling catalog refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping catalog refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CatalogRefreshService) refreshCatalog(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("catalog refresh already in progress, skipping")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	start := time.Now()

	if err := s.catalogService.Refresh(ctx, s.appConfig.POS.ServiceCredential); err != nil {
		s.lastRefreshFailed = true
		logrus.WithError(err).Error("scheduled catalog refresh failed")
		return
	}

	s.lastRefreshAt = time.Now()
	s.lastRefreshFailed = false

	logrus.WithField("duration", time.Since(start).String()).Info("scheduled catalog refresh completed")
}
