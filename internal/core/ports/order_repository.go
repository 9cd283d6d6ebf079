// Package ports defines the contracts between the application core and its
// infrastructure: repositories per aggregate, the resource registry, the token
// store and the unit of work that binds them to one transaction.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and dispatcher changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id or returns ObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends, so
	// only one caller at a time can decide the order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
