// Package jobs provides scheduled background tasks for the bookstore.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(purgeHandler, retention, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// AbandonedOrderJob runs at the top of every hour and deletes in_progress
// orders untouched for longer than the configured retention period. Orders
// that reached in_processing or later are never purged.
package jobs
