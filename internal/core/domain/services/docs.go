// Package services provides domain services that coordinate business
// operations across multiple aggregates.
//
// The package includes:
//   - CourierDispatcher: selects the courier for a paid order
//
// Logic that spans order, account and courier does not belong to any
// single aggregate and lives here instead.
package services
