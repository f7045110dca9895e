// Package scheduler wires up the cron job that periodically reloads the
// in-memory catalog snapshot from the data provider.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/catalog/snapshot"
)

type Scheduler struct {
	cron   *cron.Cron
	snap   *snapshot.Snapshot
	logger *zap.Logger
	spec   string
}

func New(snap *snapshot.Snapshot, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		snap:   snap,
		logger: logger,
		spec:   fmt.Sprintf("@every %s", interval),
	}
}

// Start registers the refresh job and starts the scheduler. Also refreshes
// once immediately so the catalog is queryable without waiting for the
// first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.refresh(ctx)
	s.cron.Start()
	s.logger.Info("Snapshot refresh scheduler started", zap.String("spec", s.spec))
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("Snapshot refresh scheduler stopped")
}

func (s *Scheduler) refresh(ctx context.Context) {
	if err := s.snap.Refresh(ctx); err != nil {
		s.logger.Error("Snapshot refresh failed, keeping previous snapshot", zap.Error(err))
	}
}
