// Package order contains the Order aggregate: a client's request to ship cargo of a
// given weight and volume from one city to another.
//
// An order starts Pending and is decided exactly once by a dispatcher:
//
//	Pending ──> Confirmed   (Accept, a shipment is created alongside)
//	Pending ──> Cancelled   (Reject)
//
// The dispatcher reference is empty while the order is Pending and set for every
// decided order. Orders are never deleted.
package order
