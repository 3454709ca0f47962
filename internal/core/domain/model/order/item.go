package order

import (
	"errors"
	"fmt"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line item of an order: a dish and how many of it the
// customer ordered. Items are immutable once the order is assigned; the
// partner never edits them, only reads them for pickup verification.
type Item struct {
	id       kernel.UUID
	name     string
	quantity int
	price    kernel.Money

	isConstructed bool
}

// NewItem creates a validated line item.
// The name must be non-empty, the quantity positive; price is the per-unit
// price already validated as non-negative by kernel.Money.
func NewItem(id kernel.UUID, name string, quantity int, price kernel.Money) (Item, error) {
	item := Item{
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Name returns the dish name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the per-unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
