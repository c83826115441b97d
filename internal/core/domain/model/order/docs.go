// Package order provides domain entities and business logic for the order
// ledger. It implements the Order aggregate root with lifecycle management,
// frozen price snapshots, and validated state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, line items, totals, and lifecycle
//   - Item: An immutable line item with its price captured at purchase time
//   - Client: Contact details and delivery coordinates of the anonymous shopper
//   - Status: A closed state machine enforcing legal order status transitions
//   - NumberGenerator: Time-derived human-readable order numbers with collision suffixes
//
// Key business rules:
//   - An order's total is the sum of price-at-purchase times quantity, frozen at creation
//   - Line items are immutable once written; later catalog price changes never
//     retroactively alter historical orders
//   - Status follows pending -> paid -> assigned -> in_delivery -> delivered,
//     with cancelled reachable from any non-terminal state
//   - Payment is idempotent for a repeated notification carrying the same reference
//   - At most one courier is ever assigned to an order
package order
