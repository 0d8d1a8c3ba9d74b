package jobs

import (
	"fmt"
	"log/slog"

	"coldchain/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	complianceWatchJob *ComplianceWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	nonCompliantHandler queries.GetNonCompliantShipmentsQueryHandler,
	complianceSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		complianceWatchJob: NewComplianceWatchJob(nonCompliantHandler, complianceSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.complianceWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start compliance watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.complianceWatchJob.Stop()
}
