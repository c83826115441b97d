package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable order line item. The unit price is captured at
// order-creation time and decoupled from the live catalog price, so later
// catalog changes never alter historical orders. The vendor reference is
// captured for the same reason: delivery assignment resolves the reference
// vendor from the line items without consulting the catalog again.
type Item struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	vendorID        kernel.UUID
	quantity        int
	priceAtPurchase float64

	guard guard.ConstructorGuard
}

// NewItem creates a line item snapshot.
// Quantity must be positive and the price non-negative.
func NewItem(productID, vendorID kernel.UUID, quantity int, priceAtPurchase float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setVendorID(vendorID),
		item.setQuantity(quantity),
		item.setPrice(priceAtPurchase),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the purchased product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// VendorID returns the identifier of the vendor owning the product.
func (i Item) VendorID() kernel.UUID {
	return i.vendorID
}

// Quantity returns the purchased quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceAtPurchase returns the frozen unit price.
func (i Item) PriceAtPurchase() float64 {
	return i.priceAtPurchase
}

// Subtotal returns price-at-purchase times quantity.
func (i Item) Subtotal() float64 {
	return i.priceAtPurchase * float64(i.quantity)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	i.vendorID = vendorID
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

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priceAtPurchase",
			fmt.Errorf("%g is negative", price))
	}
	i.priceAtPurchase = price
	return nil
}
