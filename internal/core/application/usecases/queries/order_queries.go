package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// ListOrdersQuery lists the orders visible to an actor, newest first.
type ListOrdersQuery struct {
	actor identity.Actor
	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor identity.Actor) ListOrdersQuery {
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() identity.Actor {
	return q.actor
}

// GetOrderQuery fetches one order inside the actor's scope.
type GetOrderQuery struct {
	actor   identity.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(actor identity.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() identity.Actor {
	return q.actor
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderView is the read model of an order.
type OrderView struct {
	ID           kernel.UUID
	ClientID     kernel.UUID
	DispatcherID *kernel.UUID
	Weight       kernel.Amount
	Volume       kernel.Amount
	CityFrom     kernel.UUID
	CityTo       kernel.UUID
	Status       order.Status
	CreatedAt    time.Time
}
