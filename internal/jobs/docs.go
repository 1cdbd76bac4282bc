// Package jobs provides scheduled background tasks for the dispatch
// system, implemented with github.com/robfig/cron/v3.
//
// The only job today is WaitingTimeoutJob, which runs the waiting-timeout
// sweep every thirty seconds: deliveries whose customer failed to appear
// within the configured window are auto-cancelled, their accrued waiting
// fee is settled, and the courier returns to the dispatch pool.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The sweep command is idempotent per run, so an overlapping or repeated
// tick does no harm beyond extra reads.
package jobs
