package order

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client holds the contact details of the anonymous shopper placing an
// order. Shoppers are not registered users; the contact block recorded on
// the order is the only identity the fulfillment side ever sees.
// Delivery coordinates are mandatory: the assignment engine measures
// distances against them.
type Client struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	address  string
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewClient creates a validated client contact block.
// All fields are required; the email must at least look like an address.
func NewClient(name, email, phone, address string, location kernel.GeoPoint) (Client, error) {
	client := Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setName(name),
		client.setEmail(email),
		client.setPhone(phone),
		client.setAddress(address),
		client.setLocation(location),
	); err != nil {
		return Client{}, err
	}

	return client, nil
}

// Validate ensures the client was created through NewClient.
func (c Client) Validate() error {
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// Name returns the client's display name.
func (c Client) Name() string { return c.name }

// Email returns the client's contact email.
func (c Client) Email() string { return c.email }

// Phone returns the client's contact phone number.
func (c Client) Phone() string { return c.phone }

// Address returns the free-form delivery address.
func (c Client) Address() string { return c.address }

// Location returns the delivery coordinates.
func (c Client) Location() kernel.GeoPoint { return c.location }

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	c.name = name
	return nil
}

func (c *Client) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("clientEmail")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("clientEmail")
	}
	c.email = email
	return nil
}

func (c *Client) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("clientPhone")
	}
	c.phone = phone
	return nil
}

func (c *Client) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("clientAddress")
	}
	c.address = address
	return nil
}

func (c *Client) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
