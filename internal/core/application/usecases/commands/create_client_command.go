package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("client name is required")
)

// CreateClientCommand registers a new client in the reference data.
// Only the name is mandatory; contact details are optional.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID      kernel.UUID
	name          string
	contactPerson string
	phone         string
	email         string
	address       string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
func NewCreateClientCommand(
	clientID kernel.UUID,
	name, contactPerson, phone, email, address string,
) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setName(name),
	); err != nil {
		return CreateClientCommand{}, err
	}

	clientCommand.contactPerson = contactPerson
	clientCommand.phone = phone
	clientCommand.email = email
	clientCommand.address = address
	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the unique identifier for the client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the client's company name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// ContactPerson returns the client's contact person.
func (c CreateClientCommand) ContactPerson() string {
	return c.contactPerson
}

// Phone returns the client's contact phone.
func (c CreateClientCommand) Phone() string {
	return c.phone
}

// Email returns the client's contact email.
func (c CreateClientCommand) Email() string {
	return c.email
}

// Address returns the client's billing address.
func (c CreateClientCommand) Address() string {
	return c.address
}

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}
