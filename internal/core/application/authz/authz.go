// Package authz decides whether an Actor may perform an operation.
//
// Role checks go through a static capability table and run before any state is
// loaded. Ownership checks run once the aggregate is loaded and before it is
// mutated. Both report Forbidden; a missing or unconstructed actor is
// Unauthenticated.
package authz

import (
	"fmt"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// Capability names a permission in the table below.
type Capability string

const (
	PlaceOrder       Capability = "order:place"
	ReadOwnOrders    Capability = "order:read-own"
	ReviewShipment   Capability = "shipment:review"
	ReadOwnShipments Capability = "shipment:read-own"

	DecideOrder           Capability = "order:decide"
	ReadOrderQueue        Capability = "order:read-queue"
	CloseShipment         Capability = "shipment:close"
	ReadAssignedShipments Capability = "shipment:read-assigned"
	ManageFleet           Capability = "fleet:manage"
	ManageCities          Capability = "city:manage"

	ReadCities Capability = "city:read"
)

var capabilities = map[identity.Role]map[Capability]struct{}{
	identity.RoleClient: {
		PlaceOrder:       {},
		ReadOwnOrders:    {},
		ReviewShipment:   {},
		ReadOwnShipments: {},
		ReadCities:       {},
	},
	identity.RoleDispatcher: {
		DecideOrder:           {},
		ReadOrderQueue:        {},
		CloseShipment:         {},
		ReadAssignedShipments: {},
		ManageFleet:           {},
		ManageCities:          {},
		ReadCities:            {},
	},
}

// Can reports whether role holds capability.
func Can(role identity.Role, capability Capability) bool {
	_, ok := capabilities[role][capability]
	return ok
}

// Require fails with Unauthenticated for an unconstructed actor and Forbidden
// when the actor's role lacks capability.
func Require(actor identity.Actor, capability Capability) error {
	if err := actor.Validate(); err != nil {
		return errs.NewUnauthenticatedError("authentication credentials were not provided")
	}
	if !Can(actor.Role(), capability) {
		return errs.NewForbiddenError(fmt.Sprintf("role %s may not %s", actor.Role(), capability))
	}
	return nil
}

// RequireOrderClient fails unless actor placed o.
func RequireOrderClient(actor identity.Actor, o *order.Order) error {
	if !o.IsPlacedBy(actor.ID()) {
		return errs.NewForbiddenError("order belongs to another client")
	}
	return nil
}

// RequireOrderDispatcher fails unless actor is the dispatcher who accepted o.
func RequireOrderDispatcher(actor identity.Actor, o *order.Order) error {
	if !o.IsDecidedBy(actor.ID()) {
		return errs.NewForbiddenError("shipment is assigned to another dispatcher")
	}
	return nil
}

// Scope restricts order and shipment reads to what an actor may see.
// A client sees what they placed. A dispatcher sees undecided orders and
// everything they decided.
type Scope struct {
	ClientID     *kernel.UUID
	DispatcherID *kernel.UUID
}

// ScopeFor derives the read scope of actor.
func ScopeFor(actor identity.Actor) Scope {
	id := actor.ID()
	if actor.IsClient() {
		return Scope{ClientID: &id}
	}
	return Scope{DispatcherID: &id}
}

// CanSeeOrder applies Scope to a loaded order.
func (s Scope) CanSeeOrder(o *order.Order) bool {
	switch {
	case s.ClientID != nil:
		return o.IsPlacedBy(*s.ClientID)
	case s.DispatcherID != nil:
		return o.Status() == order.Pending || o.IsDecidedBy(*s.DispatcherID)
	default:
		return false
	}
}
