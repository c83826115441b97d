// Package product holds the catalog listing aggregate. Listings are
// submitted by vendors, moderated by admins, and referenced by cart rows
// and order line items (the latter snapshot the price at purchase time).
package product

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
var ErrProductIsNotConstructed = errors.New("product must be created via NewProduct or RestoreProduct constructor")

// Product is a catalog listing owned by a vendor account.
type Product struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       float64
	stock       int
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a listing awaiting moderation.
func NewProduct(id, vendorID kernel.UUID, name, description string,
	price float64, stock int, createdAt time.Time) (*Product, error) {
	product := &Product{
		description:   description,
		status:        StatusPending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setVendorID(vendorID),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct rebuilds a listing from storage.
func RestoreProduct(id, vendorID kernel.UUID, name, description string,
	price float64, stock int, status Status, createdAt time.Time) (*Product, error) {
	product, err := NewProduct(id, vendorID, name, description, price, stock, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	product.status = status

	return product, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the listing identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// VendorID returns the owning vendor account.
func (p *Product) VendorID() kernel.UUID { return p.vendorID }

// Name returns the listing title.
func (p *Product) Name() string { return p.name }

// Description returns the listing description.
func (p *Product) Description() string { return p.description }

// Price returns the current unit price.
func (p *Product) Price() float64 { return p.price }

// Stock returns the advertised stock level.
func (p *Product) Stock() int { return p.stock }

// Status returns the moderation state.
func (p *Product) Status() Status { return p.status }

// CreatedAt returns when the listing was submitted.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// IsPurchasable reports whether carts may reference the listing.
func (p *Product) IsPurchasable() bool {
	return p.status == StatusApproved
}

// Approve makes the listing visible to buyers.
func (p *Product) Approve() error {
	return p.moderate(StatusApproved)
}

// Reject hides the listing from buyers. A rejected listing may be
// re-moderated later.
func (p *Product) Reject() error {
	return p.moderate(StatusRejected)
}

func (p *Product) moderate(target Status) error {
	if p.status == target {
		return errs.NewConflictError(
			fmt.Sprintf("product %s is already %s", p.id, target))
	}
	p.status = target
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	p.vendorID = vendorID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
