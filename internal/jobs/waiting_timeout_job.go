package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WaitingTimeoutJob runs the waiting-timeout sweep on a schedule. Every
// thirty seconds it cancels deliveries whose customer never showed up
// within the configured waiting window.
type WaitingTimeoutJob struct {
	handler commands.SweepWaitingTimeoutsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWaitingTimeoutJob creates the sweep job. The thirty-second cadence
// bounds how long a timed-out delivery can linger past its deadline.
func NewWaitingTimeoutJob(handler commands.SweepWaitingTimeoutsCommandHandler, logger *slog.Logger) *WaitingTimeoutJob {
	return &WaitingTimeoutJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "waiting_timeout_job"),
	}
}

// Start begins the sweep job on its thirty-second schedule.
func (j *WaitingTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepWaitingTimeoutsCommand()

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Waiting timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Waiting timeout job started (running every 30 seconds)")
	return nil
}

// Stop stops the sweep job.
func (j *WaitingTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Waiting timeout job stopped")
}
