// Package shipment contains the Shipment aggregate created when a dispatcher accepts
// an order. A shipment binds the order to one driver and one vehicle, carries the
// agreed price and expected arrival, and is closed exactly once:
//
//	InProgress ──> Delivered
//	InProgress ──> Delayed
//
// Clients may leave a single review on a delivered shipment.
package shipment
