// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(assignCouriersHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// AssignmentSweepJob runs every thirty seconds and re-dispatches paid orders
// that did not get a courier when the payment came in. Expected business
// outcomes (nothing pending, no couriers on shift) are not logged as errors.
package jobs
