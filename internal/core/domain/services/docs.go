// Package services contains domain services that coordinate several aggregates
// in one business decision.
//
// OrderDispatcher turns a Pending order into a Confirmed one with a new shipment,
// reserving a driver and a vehicle on the way. ShipmentCloser closes a shipment
// and tells the caller whether its resources go back to the pool.
//
// Both check every precondition before mutating anything, so a failed call leaves
// all aggregates as they were.
package services
