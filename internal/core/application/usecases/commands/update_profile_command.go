package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand changes the partner's editable profile fields.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	name          string
	email         string
	phone         string
	vehicleType   account.VehicleType
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update the profile.
func NewUpdateProfileCommand(
	name string,
	email string,
	phone string,
	vehicleType account.VehicleType,
	vehicleNumber string,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setVehicleType(vehicleType),
		cmd.setVehicleNumber(vehicleNumber),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// Name returns the new name.
func (c UpdateProfileCommand) Name() string {
	return c.name
}

// Email returns the new email.
func (c UpdateProfileCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdateProfileCommand) Phone() string {
	return c.phone
}

// VehicleType returns the new vehicle type.
func (c UpdateProfileCommand) VehicleType() account.VehicleType {
	return c.vehicleType
}

// VehicleNumber returns the new vehicle registration number.
func (c UpdateProfileCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *UpdateProfileCommand) setName(name string) error {
	if err := validate.Required("name", name); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *UpdateProfileCommand) setEmail(email string) error {
	if err := validate.Email(email); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *UpdateProfileCommand) setPhone(phone string) error {
	if err := validate.Phone(phone); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *UpdateProfileCommand) setVehicleType(vehicleType account.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *UpdateProfileCommand) setVehicleNumber(vehicleNumber string) error {
	if err := validate.Required("vehicleNumber", vehicleNumber); err != nil {
		return err
	}

	c.vehicleNumber = vehicleNumber
	return nil
}
