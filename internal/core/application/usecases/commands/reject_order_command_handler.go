package commands

import (
	"context"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

// RejectOrderCommandHandler cancels Pending orders. No resource is touched.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

func NewRejectOrderCommandHandler(uowFactory UoWFactory, dispatcher services.OrderDispatcher) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns the new status (Cancelled).
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := authz.Require(cmd.Actor(), authz.DecideOrder); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	if err = h.dispatcher.Reject(o, cmd.Actor().ID()); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}
