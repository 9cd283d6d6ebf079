package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const selectOrders = `
	SELECT
		o.id,
		o.client_id,
		o.dispatcher_id,
		o.weight,
		o.volume,
		o.city_from_id,
		o.city_to_id,
		o.status,
		o.created_at
	FROM orders o
`

// OrderQueryHandler reads orders for clients and dispatchers.
//
// Example:
//
//	handler := NewOrderQueryHandler(db)
//	views, err := handler.List(ctx, NewListOrdersQuery(actor))
type OrderQueryHandler struct {
	db *gorm.DB
}

func NewOrderQueryHandler(db *gorm.DB) OrderQueryHandler {
	return OrderQueryHandler{db: db}
}

// List returns a client's own orders, or for a dispatcher every Pending order
// plus the ones they decided.
func (h OrderQueryHandler) List(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireOrderRead(query.Actor()); err != nil {
		return nil, err
	}

	where, args := orderScope(query.Actor())
	rows, err := h.db.WithContext(ctx).Raw(selectOrders+" WHERE "+where+" ORDER BY o.created_at DESC, o.id", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrder(rows)
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

// Get reports NotFound both for a missing order and for one outside the scope.
func (h OrderQueryHandler) Get(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}
	if err := requireOrderRead(query.Actor()); err != nil {
		return OrderView{}, err
	}

	where, args := orderScope(query.Actor())
	args = append([]any{query.OrderID().Bytes()}, args...)
	rows, err := h.db.WithContext(ctx).Raw(selectOrders+" WHERE o.id = ? AND "+where, args...).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanOrder(rows)
}

func scanOrder(row rowScanner) (OrderView, error) {
	var (
		id, clientID, cityFrom, cityTo uuid.UUID
		dispatcherID                   uuid.NullUUID
		weight, volume                 decimal.Decimal
		status                         string
		view                           OrderView
	)

	if err := row.Scan(&id, &clientID, &dispatcherID, &weight, &volume,
		&cityFrom, &cityTo, &status, &view.CreatedAt); err != nil {
		return OrderView{}, err
	}

	var (
		errList []error
		err     error
	)
	view.ID, err = kernel.UUIDFromGoogle(id)
	errList = append(errList, err)
	view.ClientID, err = kernel.UUIDFromGoogle(clientID)
	errList = append(errList, err)
	view.DispatcherID, err = nullableUUID(dispatcherID)
	errList = append(errList, err)
	view.Weight, err = kernel.NewAmount("weight", weight)
	errList = append(errList, err)
	view.Volume, err = kernel.NewAmount("volume", volume)
	errList = append(errList, err)
	view.CityFrom, err = kernel.UUIDFromGoogle(cityFrom)
	errList = append(errList, err)
	view.CityTo, err = kernel.UUIDFromGoogle(cityTo)
	errList = append(errList, err)
	view.Status, err = order.ParseStatus(status)
	errList = append(errList, err)

	if err = errors.Join(errList...); err != nil {
		return OrderView{}, err
	}

	view.CreatedAt = view.CreatedAt.UTC()
	return view, nil
}
