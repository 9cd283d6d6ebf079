// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read the tables with plain SQL, returning
// read models shaped for the HTTP adapter. Order and shipment reads are scoped
// to what the calling actor may see; a row outside that scope is NotFound.
package queries

import (
	"database/sql"
	"errors"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderScope renders authz.Scope as a WHERE fragment over the orders table
// aliased as o.
func orderScope(actor identity.Actor) (string, []any) {
	scope := authz.ScopeFor(actor)
	if scope.ClientID != nil {
		return "o.client_id = ?", []any{scope.ClientID.Bytes()}
	}
	return "(o.status = ? OR o.dispatcher_id = ?)", []any{order.Pending.String(), scope.DispatcherID.Bytes()}
}

// shipmentScope is orderScope for shipments. Every shipment belongs to a
// decided order, so a dispatcher only sees the ones they accepted.
func shipmentScope(actor identity.Actor) (string, []any) {
	scope := authz.ScopeFor(actor)
	if scope.ClientID != nil {
		return "o.client_id = ?", []any{scope.ClientID.Bytes()}
	}
	return "o.dispatcher_id = ?", []any{scope.DispatcherID.Bytes()}
}

// requireOrderRead checks the role-specific read capability for orders.
func requireOrderRead(actor identity.Actor) error {
	if actor.IsClient() {
		return authz.Require(actor, authz.ReadOwnOrders)
	}
	return authz.Require(actor, authz.ReadOrderQueue)
}

func requireShipmentRead(actor identity.Actor) error {
	if actor.IsClient() {
		return authz.Require(actor, authz.ReadOwnShipments)
	}
	return authz.Require(actor, authz.ReadAssignedShipments)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func nullableUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent value
	}
	u, err := kernel.UUIDFromGoogle(id.UUID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
