package jobs

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// OverdueShipmentsReader lists in-progress shipments whose arrival time passed.
type OverdueShipmentsReader interface {
	Handle(ctx context.Context, now time.Time) ([]queries.OverdueShipmentView, error)
}

// OverdueShipmentsReportJob logs shipments that are still in progress after
// their arrival time. It never changes shipment status: closing a shipment
// stays a dispatcher decision.
type OverdueShipmentsReportJob struct {
	*scheduled
	reader OverdueShipmentsReader
	now    func() time.Time
}

func NewOverdueShipmentsReportJob(reader OverdueShipmentsReader, schedule string, logger *zap.Logger) *OverdueShipmentsReportJob {
	return &OverdueShipmentsReportJob{
		scheduled: newScheduled("overdue_shipments_job", schedule, logger),
		reader:    reader,
		now:       time.Now,
	}
}

// Start schedules Run.
func (j *OverdueShipmentsReportJob) Start() error {
	return j.start(func(ctx context.Context) {
		_, _ = j.Run(ctx)
	})
}

// Run logs one warning per overdue shipment and returns how many were found.
func (j *OverdueShipmentsReportJob) Run(ctx context.Context) (int, error) {
	now := j.now()

	overdue, err := j.reader.Handle(ctx, now)
	if err != nil {
		j.logger.Error("overdue shipments report failed", zap.Error(err))
		return 0, err
	}

	for _, s := range overdue {
		j.logger.Warn("shipment overdue",
			zap.Stringer("shipment_id", s.ID),
			zap.Stringer("order_id", s.OrderID),
			zap.Stringer("dispatcher_id", s.DispatcherID),
			zap.Stringer("driver_id", s.DriverID),
			zap.String("vehicle", s.VehiclePlate),
			zap.Time("arrival_time", s.ArrivalTime),
			zap.Duration("overdue_by", now.Sub(s.ArrivalTime).Truncate(time.Second)),
		)
	}
	return len(overdue), nil
}
