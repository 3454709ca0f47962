package order

import (
	"errors"

	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact was not created
// through the NewContact factory.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact holds the customer's name and phone number so the partner can
// reach them during delivery.
type Contact struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewContact creates a validated contact. Both fields are required.
func NewContact(name, phone string) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setName(name),
		contact.setPhone(phone),
	); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate ensures the Contact was created via NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the customer name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the customer phone number.
func (c Contact) Phone() string {
	return c.phone
}

func (c *Contact) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Contact) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}
