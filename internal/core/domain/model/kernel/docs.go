// Package kernel provides the value objects shared by every aggregate of the
// dispatch domain.
//
// The package includes:
//   - UUID: identifier of orders, shipments, drivers, cities and users
//   - Amount: a positive decimal with at most three fractional digits, used for
//     order weight and volume and for shipment price
//   - Coordinates: a validated latitude/longitude pair locating a city
//
// All value objects are immutable; their zero values are invalid and fail Validate.
package kernel
