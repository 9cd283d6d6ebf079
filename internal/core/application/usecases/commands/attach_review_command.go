package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAttachReviewCommandIsNotConstructed = errors.New(
	"AttachReviewCommand must be created via NewAttachReviewCommand constructor",
)

// AttachReviewCommand carries a client's rating and text for a delivered shipment.
// Rating and text are validated by the shipment, after its state, so that a
// review on an undelivered shipment reports InvalidState first.
type AttachReviewCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	shipmentID kernel.UUID
	rating     int
	text       string

	guard guard.ConstructorGuard
}

func NewAttachReviewCommand(actor identity.Actor, shipmentID kernel.UUID, rating int, text string) (AttachReviewCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return AttachReviewCommand{}, err
	}

	return AttachReviewCommand{
		actor:      actor,
		shipmentID: shipmentID,
		rating:     rating,
		text:       text,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AttachReviewCommand) Validate() error {
	return c.guard.Validate(ErrAttachReviewCommandIsNotConstructed)
}

func (c AttachReviewCommand) Actor() identity.Actor {
	return c.actor
}

func (c AttachReviewCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c AttachReviewCommand) Rating() int {
	return c.rating
}

func (c AttachReviewCommand) Text() string {
	return c.text
}
