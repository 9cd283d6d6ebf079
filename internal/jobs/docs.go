// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The jobs are operational only: none of them moves an order or a shipment
// through its lifecycle.
//
// # Available Jobs
//
// 1. TokenCleanupJob - purges expired auth tokens from the token store
// 2. OverdueShipmentsReportJob - logs in-progress shipments whose arrival time has passed
// 3. HealthProbeJob - pings Postgres (and Redis when configured) and publishes the
// result through the gRPC health service
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewTokenCleanupJob(tokenStore, "0 */10 * * * *", logger),
//		jobs.NewOverdueShipmentsReportJob(overdueHandler, "0 */5 * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field
// ("*/15 * * * * *") or descriptors such as "@every 1m". Runs of the same job
// never overlap, and a panic inside a run is recovered and logged.
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
