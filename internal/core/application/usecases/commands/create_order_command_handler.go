package commands

import (
	"context"
	"time"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places Pending orders for clients.
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory PlaceOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks that both cities exist (NotFound otherwise) and stores the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := authz.Require(cmd.Actor(), authz.PlaceOrder); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cityRepo := uow.CityRepository()
	orderRepo := uow.OrderRepository()

	if _, err := cityRepo.Get(ctx, cmd.CityFrom()); err != nil {
		return nil, err
	}
	if _, err := cityRepo.Get(ctx, cmd.CityTo()); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().ID(),
		cmd.Weight(),
		cmd.Volume(),
		cmd.CityFrom(),
		cmd.CityTo(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
