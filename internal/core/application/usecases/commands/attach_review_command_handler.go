package commands

import (
	"context"
	"time"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/shipment"
)

// AttachReviewCommandHandler stores a client's review on their delivered shipment.
type AttachReviewCommandHandler struct {
	uowFactory UoWFactory
}

func NewAttachReviewCommandHandler(uowFactory UoWFactory) AttachReviewCommandHandler {
	return AttachReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the reviewed shipment.
//
// Errors: Forbidden (role, or the parent order belongs to someone else),
// InvalidState (not Delivered, or already reviewed), ValidationError (rating, text).
func (h AttachReviewCommandHandler) Handle(ctx context.Context, cmd AttachReviewCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := authz.Require(cmd.Actor(), authz.ReviewShipment); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.OrderRepository()

	s, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	o, err := orderRepo.Get(ctx, s.OrderID())
	if err != nil {
		return nil, err
	}

	if err = authz.RequireOrderClient(cmd.Actor(), o); err != nil {
		return nil, err
	}

	if err = s.AttachReview(cmd.Rating(), cmd.Text(), time.Now()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
