package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPaymentAlreadyRecorded signals an idempotent replay: the order is already
	// paid with the exact same payment reference. Callers treat this as success
	// and must not re-run assignment or re-count payment metrics.
	ErrPaymentAlreadyRecorded = errors.New("payment already recorded for this reference")
)

// Order is the aggregate root of the order ledger. It converts a finalized
// cart into a durable record with a frozen monetary total and drives the
// delivery lifecycle through validated status transitions.
//
// Invariants:
//   - totalAmount never changes after creation
//   - line items are immutable once written
//   - at most one courier is ever assigned
//   - status moves only along the closed transition table
type Order struct {
	id         kernel.UUID
	number     string
	client     Client
	items      []Item
	total      float64
	status     Status
	paymentRef string
	courierID  *kernel.UUID

	createdAt   time.Time
	paidAt      *time.Time
	deliveredAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a Pending order from a finalized cart snapshot.
// The total is computed once from the items' frozen prices and never
// recomputed afterwards.
//
// Parameters:
//   - id: unique order identifier
//   - number: human-readable order number (see NumberGenerator)
//   - client: validated contact block of the shopper
//   - items: non-empty line item snapshots
//   - createdAt: creation timestamp recorded on the ledger
func NewOrder(id kernel.UUID, number string, client Client, items []Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClient(client),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.total += item.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// Unlike NewOrder it accepts the stored total, status, payment reference,
// courier, and timestamps as-is, after consistency validation.
func RestoreOrder(
	id kernel.UUID,
	number string,
	client Client,
	items []Item,
	total float64,
	status Status,
	paymentRef string,
	courierID *kernel.UUID,
	createdAt time.Time,
	paidAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		total:         total,
		paymentRef:    paymentRef,
		createdAt:     createdAt,
		paidAt:        paidAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClient(client),
		o.setItems(items),
		status.Validate(),
		status.ValidateCourierAssignment(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cid := *courierID
		o.courierID = &cid
	}

	o.status = status
	return o, nil
}

// Validate ensures the order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// Client returns the shopper's contact block.
func (o *Order) Client() Client {
	return o.client
}

// Items returns a copy of the frozen line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the monetary total frozen at creation time.
func (o *Order) TotalAmount() float64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentReference returns the external payment reference, empty until paid.
func (o *Order) PaymentReference() string {
	return o.paymentRef
}

// Courier returns the assigned courier's ID, or nil when unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the ledger creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns the payment timestamp, or nil when unpaid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// DeliveredAt returns the delivery timestamp, or nil until delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// VendorIDs returns the distinct vendors referenced by the line items,
// in first-encountered order. The assignment engine uses the first entry
// as the reference vendor.
func (o *Order) VendorIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.items))
	vendors := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.VendorID()]; ok {
			continue
		}
		seen[item.VendorID()] = struct{}{}
		vendors = append(vendors, item.VendorID())
	}
	return vendors
}

// Pay records an externally verified payment confirmation.
//
// The reference string is recorded verbatim and paidAt is stamped.
// A repeated notification carrying the same reference on an already-paid
// order returns ErrPaymentAlreadyRecorded so callers can short-circuit
// without re-running assignment or double-counting metrics. A different
// reference on an already-paid order is a conflict.
func (o *Order) Pay(reference string, now time.Time) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}

	if o.status != Pending {
		if o.paymentRef == reference {
			return ErrPaymentAlreadyRecorded
		}
		return errs.NewConflictError("order is already paid with a different reference")
	}

	newStatus, err := o.status.TransitionTo(Paid)
	if err != nil {
		return err
	}

	paidAt := now.UTC()
	o.status = newStatus
	o.paymentRef = reference
	o.paidAt = &paidAt
	return nil
}

// Assign assigns the order to a courier, moving Paid -> Assigned.
// Assignment of an order that already has a courier is a conflict;
// an order never receives two couriers.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil {
		return errs.NewConflictError("order already has a courier assigned")
	}

	newStatus, err := o.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Advance applies a courier-reported progress update.
// Only the adjacent delivery hops are accepted: Assigned -> InDelivery and
// InDelivery -> Delivered. Delivered stamps deliveredAt. Any other target,
// including non-adjacent jumps, is rejected with a conflict.
func (o *Order) Advance(target Status, now time.Time) error {
	if target != InDelivery && target != Delivered {
		return errs.NewConflictError("courier may only progress an order to in_delivery or delivered")
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		deliveredAt := now.UTC()
		o.deliveredAt = &deliveredAt
	}
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setClient(client Client) error {
	if err := client.Validate(); err != nil {
		return err
	}
	o.client = client
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
