// Package client implements the client entity: the party a transport order
// is performed for. Clients are plain reference data; they are not
// schedulable resources and carry no availability.
package client

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a client without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")
)

// Client is the ordering party of a transport. Orders reference a client for
// display and export; a client has no knowledge of its orders.
type Client struct {
	id            kernel.UUID
	name          string
	contactPerson string
	phone         string
	email         string
	address       string
	guard         guard.ConstructorGuard
}

// NewClient creates a new Client. Only the name is mandatory.
func NewClient(id kernel.UUID, name, contactPerson, phone, email, address string) (*Client, error) {
	c := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.contactPerson = contactPerson
	c.phone = phone
	c.email = email
	c.address = address
	return c, nil
}

// RestoreClient reconstructs a Client from persistent storage.
func RestoreClient(id kernel.UUID, name, contactPerson, phone, email, address string) (*Client, error) {
	return NewClient(id, name, contactPerson, phone, email, address)
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's company name.
func (c *Client) Name() string {
	return c.name
}

// ContactPerson returns the client's contact person.
func (c *Client) ContactPerson() string {
	return c.contactPerson
}

// Phone returns the client's contact phone.
func (c *Client) Phone() string {
	return c.phone
}

// Email returns the client's contact email.
func (c *Client) Email() string {
	return c.email
}

// Address returns the client's address.
func (c *Client) Address() string {
	return c.address
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
