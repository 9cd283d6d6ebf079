package queries

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const selectShipments = `
	SELECT
		s.id,
		s.order_id,
		s.driver_id,
		s.vehicle_plate,
		s.arrival_time,
		s.price,
		s.status,
		s.review_rating,
		s.review_text,
		s.review_written_at
	FROM shipments s
	JOIN orders o ON o.id = s.order_id
`

// ShipmentQueryHandler reads shipments through their parent order's ownership.
type ShipmentQueryHandler struct {
	db *gorm.DB
}

func NewShipmentQueryHandler(db *gorm.DB) ShipmentQueryHandler {
	return ShipmentQueryHandler{db: db}
}

func (h ShipmentQueryHandler) List(ctx context.Context, query ListShipmentsQuery) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireShipmentRead(query.Actor()); err != nil {
		return nil, err
	}

	where, args := shipmentScope(query.Actor())
	rows, err := h.db.WithContext(ctx).Raw(selectShipments+" WHERE "+where+" ORDER BY s.arrival_time, s.id", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ShipmentView, 0)
	for rows.Next() {
		view, scanErr := scanShipment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// Get reports NotFound both for a missing shipment and for one outside the scope.
func (h ShipmentQueryHandler) Get(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}
	if err := requireShipmentRead(query.Actor()); err != nil {
		return ShipmentView{}, err
	}

	where, args := shipmentScope(query.Actor())
	args = append([]any{query.ShipmentID().Bytes()}, args...)
	rows, err := h.db.WithContext(ctx).Raw(selectShipments+" WHERE s.id = ? AND "+where, args...).Rows()
	if err != nil {
		return ShipmentView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentView{}, err
		}
		return ShipmentView{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	return scanShipment(rows)
}

func scanShipment(row rowScanner) (ShipmentView, error) {
	var (
		id, orderID, driverID uuid.UUID
		price                 decimal.Decimal
		status                string
		rating                *int
		text                  *string
		writtenAt             *time.Time
		view                  ShipmentView
	)

	if err := row.Scan(&id, &orderID, &driverID, &view.VehiclePlate, &view.ArrivalTime,
		&price, &status, &rating, &text, &writtenAt); err != nil {
		return ShipmentView{}, err
	}

	var (
		errList []error
		err     error
	)
	view.ID, err = kernel.UUIDFromGoogle(id)
	errList = append(errList, err)
	view.OrderID, err = kernel.UUIDFromGoogle(orderID)
	errList = append(errList, err)
	view.DriverID, err = kernel.UUIDFromGoogle(driverID)
	errList = append(errList, err)
	view.Price, err = kernel.NewAmount("price", price)
	errList = append(errList, err)
	view.Status, err = shipment.ParseStatus(status)
	errList = append(errList, err)

	if err = errors.Join(errList...); err != nil {
		return ShipmentView{}, err
	}

	view.ArrivalTime = view.ArrivalTime.UTC()
	if rating != nil && text != nil && writtenAt != nil {
		view.Review = &ReviewView{Rating: *rating, Text: *text, CreatedAt: writtenAt.UTC()}
	}
	return view, nil
}
