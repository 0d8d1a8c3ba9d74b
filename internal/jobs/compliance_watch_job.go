package jobs

import (
	"context"
	"log/slog"

	"coldchain/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ComplianceWatchJob periodically scans for active shipments whose current
// temperature sits outside the safe range and logs them for the operations
// team. The job only reads: recording breaches is the sensors' job through the
// logging endpoint, so a shipment showing up here means readings stopped
// arriving while the cargo sits out of range.
type ComplianceWatchJob struct {
	handler queries.GetNonCompliantShipmentsQueryHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewComplianceWatchJob creates a compliance watch running on the given cron
// spec (with seconds field, e.g. "*/30 * * * * *").
func NewComplianceWatchJob(
	handler queries.GetNonCompliantShipmentsQueryHandler,
	spec string,
	logger *slog.Logger,
) *ComplianceWatchJob {
	return &ComplianceWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "compliance_watch_job"),
	}
}

// Start begins the periodic compliance scan.
func (j *ComplianceWatchJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		runID := uuid.NewString()

		rows, err := j.handler.Handle(ctx, queries.NewGetNonCompliantShipmentsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Compliance scan failed", "run_id", runID, "error", err)
			return
		}

		for _, row := range rows {
			j.logger.WarnContext(ctx, "Shipment out of temperature range",
				"run_id", runID,
				"tracking_id", row.TrackingID,
				"current_handler", row.CurrentHandler,
				"current_temp", row.CurrentTemp,
				"min_temp", row.MinTemp,
				"max_temp", row.MaxTemp,
				"quality_score", row.QualityScore,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Compliance watch job started", "spec", j.spec)
	return nil
}

// Stop stops the compliance watch job.
func (j *ComplianceWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Compliance watch job stopped")
}
