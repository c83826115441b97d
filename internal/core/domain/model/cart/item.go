// Package cart provides the session-scoped shopping cart entity.
// Carts belong to anonymous sessions identified by an opaque token; there
// is no cross-session visibility. A session holds at most one row per
// product - repeated additions merge into the existing row's quantity.
package cart

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized cart Item.
var ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem constructor")

// Item is one cart row: a product and quantity held by a session.
// Uniqueness over (session, product) is enforced by the cart store;
// the entity itself enforces a positive quantity.
type Item struct {
	id        kernel.UUID
	sessionID string
	productID kernel.UUID
	quantity  int
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a cart row for a session.
func NewItem(id kernel.UUID, sessionID string, productID kernel.UUID, quantity int, createdAt time.Time) (*Item, error) {
	item := &Item{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setSessionID(sessionID),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the row identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// SessionID returns the opaque session token owning the row.
func (i *Item) SessionID() string { return i.sessionID }

// ProductID returns the referenced product.
func (i *Item) ProductID() kernel.UUID { return i.productID }

// Quantity returns the accumulated quantity.
func (i *Item) Quantity() int { return i.quantity }

// CreatedAt returns when the row was first added.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// Merge adds a repeated addition of the same product into this row.
func (i *Item) Merge(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity += quantity
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionId")
	}
	i.sessionID = sessionID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
