package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ermalb/suxhuk-orders/internal/config"
	"github.com/ermalb/suxhuk-orders/internal/service/backoffice"
)

// Scheduler refreshes the admin inventory snapshot on a fixed cadence so the
// board does not drift between operator actions.
type Scheduler struct {
	cron     *cron.Cron
	adminSvc backoffice.Service
	cfg      config.RefreshConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.RefreshConfig, adminSvc backoffice.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		adminSvc: adminSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.refreshInventory)
	if err != nil {
		s.logger.Error("failed to schedule inventory refresh", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshInventory() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	items, err := s.adminSvc.RefreshInventory(ctx)
	if err != nil {
		s.logger.Error("scheduled inventory refresh failed", zap.Error(err))
		return
	}

	s.logger.Info("inventory refreshed", zap.Int("items", len(items)))
}
