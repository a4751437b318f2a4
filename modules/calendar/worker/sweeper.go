package worker

import (
	"context"

	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/logger"

	"github.com/robfig/cron/v3"
)

// TokenOwners lists every user that has a calendar token.
type TokenOwners interface {
	ListTokenUserIDs(ctx context.Context) ([]string, error)
}

// Sweeper periodically queues a rebuild for every calendar owner, so
// documents converge even if an earlier enqueue was lost.
type Sweeper struct {
	cron      *cron.Cron
	owners    TokenOwners
	scheduler *Scheduler
	spec      string
}

func NewSweeper(owners TokenOwners, scheduler *Scheduler, spec string) *Sweeper {
	if spec == "" {
		spec = constants.DefaultRegenerateCron
	}
	return &Sweeper{
		cron:      cron.New(),
		owners:    owners,
		scheduler: scheduler,
		spec:      spec,
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Sweep(context.Background()) }); err != nil {
		return err
	}
	s.cron.Start()
	logger.Info("Sweeper:Start", "schedule", s.spec)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep returns the number of users it queued.
func (s *Sweeper) Sweep(ctx context.Context) int {
	userIDs, err := s.owners.ListTokenUserIDs(ctx)
	if err != nil {
		logger.Error("Sweeper:Sweep:ListOwners", "error", err)
		return 0
	}

	queued := 0
	for _, userID := range userIDs {
		if err := s.scheduler.RequestRegenerate(ctx, userID); err != nil {
			continue
		}
		queued++
	}
	logger.Info("Sweeper:Sweep:Done", "owners", len(userIDs), "queued", queued)
	return queued
}
