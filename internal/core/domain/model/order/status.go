package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// invalid transitions are rejected rather than silently accepted.
//
// State transitions:
//
//	Pending ──> Paid ──> Assigned ──> InDelivery ──> Delivered
//	   │          │          │             │
//	   └──────────┴──────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly checked-out order,
	// awaiting payment confirmation.
	Pending

	// Paid indicates payment was confirmed. Orders stay Paid when no
	// courier qualified for assignment at payment time.
	Paid

	// Assigned indicates a courier has been assigned to the order.
	Assigned

	// InDelivery indicates the assigned courier has picked up the order.
	InDelivery

	// Delivered indicates the order reached the client. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the persisted string labels for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Paid:       "paid",
		Assigned:   "assigned",
		InDelivery: "in_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only valid statuses, supporting validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Paid:       "paid",
		Assigned:   "assigned",
		InDelivery: "in_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getStatusTransitions returns the closed transition table.
// A transition is legal only if the target appears in the source's row.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Paid, Cancelled},
		Paid:       {Assigned, Cancelled},
		Assigned:   {InDelivery, Cancelled},
		InDelivery: {Delivered, Cancelled},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a persisted or externally supplied status label.
// Returns an error for labels outside the closed set.
func StatusFromString(value string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted label of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(getStatusTransitions()[s]) == 0
}

// CanTransitionTo reports whether the transition table permits moving
// from the receiver to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateCourierAssignment validates consistency between the status and
// the presence of an assigned courier.
//
// Rules:
//   - Pending and Paid orders must not have a courier
//   - Assigned, InDelivery, and Delivered orders must have one
//   - Cancelled orders may have one (cancellation after assignment)
func (s Status) ValidateCourierAssignment(hasCourier bool) error {
	if hasCourier && (s == Pending || s == Paid) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must not have a courier", s))
	}

	if !hasCourier && (s == Assigned || s == InDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must have a courier", s))
	}

	return nil
}

// TransitionTo moves the status to target if the transition table allows it.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, ConflictError) when the hop is not in the table, including
//     non-adjacent jumps such as Pending -> Delivered
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewConflictError(
			fmt.Sprintf("status transition %s -> %s is not allowed", s, target))
	}

	return target, nil
}
