// Package identity models who is calling: registered users, their role, the
// authenticated Actor derived from a token, and the tokens themselves.
//
// Two roles exist. Clients place orders and review their shipments; dispatchers
// decide orders, close shipments and maintain master data.
package identity
