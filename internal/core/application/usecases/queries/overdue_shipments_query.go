package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverdueShipmentView is an InProgress shipment whose arrival time has passed.
type OverdueShipmentView struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	DispatcherID kernel.UUID
	DriverID     kernel.UUID
	VehiclePlate string
	ArrivalTime  time.Time
}

// OverdueShipmentsQueryHandler feeds the overdue report job. It is an internal
// read with no actor.
type OverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewOverdueShipmentsQueryHandler(db *gorm.DB) OverdueShipmentsQueryHandler {
	return OverdueShipmentsQueryHandler{db: db}
}

// Handle lists shipments still in progress whose arrival time is before now,
// most overdue first.
func (h OverdueShipmentsQueryHandler) Handle(ctx context.Context, now time.Time) ([]OverdueShipmentView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.order_id,
			o.dispatcher_id,
			s.driver_id,
			s.vehicle_plate,
			s.arrival_time
		FROM shipments s
		JOIN orders o ON o.id = s.order_id
		WHERE s.status = ? AND s.arrival_time < ?
		ORDER BY s.arrival_time, s.id
	`, shipment.InProgress.String(), now).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]OverdueShipmentView, 0)
	for rows.Next() {
		var (
			id, orderID, dispatcherID, driverID uuid.UUID
			view                                OverdueShipmentView
		)
		if err = rows.Scan(&id, &orderID, &dispatcherID, &driverID, &view.VehiclePlate, &view.ArrivalTime); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromGoogle(orderID); err != nil {
			return nil, err
		}
		if view.DispatcherID, err = kernel.UUIDFromGoogle(dispatcherID); err != nil {
			return nil, err
		}
		if view.DriverID, err = kernel.UUIDFromGoogle(driverID); err != nil {
			return nil, err
		}
		view.ArrivalTime = view.ArrivalTime.UTC()
		overdue = append(overdue, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
