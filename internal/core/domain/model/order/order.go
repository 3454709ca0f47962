package order

import (
	"errors"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrRejectReasonIsRequired is returned when a rejection or cancellation
	// is attempted without a reason.
	ErrRejectReasonIsRequired = errs.NewValueIsRequiredError("reject reason")
)

// Order represents a delivery order offered to the partner. It is the
// aggregate root that owns the order lifecycle from assignment through
// acceptance, pickup, and delivery (or cancellation).
//
// Invariants:
//   - Status only advances forward through the fixed sequence; the sole
//     exits are cancellation from Assigned or Accepted.
//   - Accepting stamps acceptedAt; reaching Picked stamps pickedAt; reaching
//     Delivered stamps deliveredAt. Timestamps are never rewritten.
//   - Terminal orders (Delivered, Cancelled) are immutable history.
//   - Every applied transition increments the aggregate version, which the
//     persistence layer uses to discard stale writes.
//
// All mutations are synchronous and all-or-nothing: a failed transition
// returns a typed error and leaves the order untouched.
type Order struct {
	id                kernel.UUID
	number            string
	status            Status
	customer          Contact
	restaurantName    string
	restaurantAddress string
	deliveryAddress   string
	items             []Item
	pricing           Pricing
	payment           PaymentMethod
	pickup            kernel.GeoPoint
	drop              kernel.GeoPoint

	createdAt   time.Time
	acceptedAt  *time.Time
	pickedAt    *time.Time
	deliveredAt *time.Time

	cancelReason string
	lastLocation *kernel.GeoPoint
	version      int64

	isConstructed bool
}

// NewOrder creates a freshly assigned order as received from the platform.
// All parts are validated; the order starts in Assigned status at version 1.
func NewOrder(
	id kernel.UUID,
	number string,
	customer Contact,
	restaurantName string,
	restaurantAddress string,
	deliveryAddress string,
	items []Item,
	pricing Pricing,
	payment PaymentMethod,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Assigned,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setRestaurant(restaurantName, restaurantAddress),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setPricing(pricing),
		o.setPayment(payment),
		o.setRoute(pickup, drop),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// lifecycle. The stored status, timestamps, and version are trusted after
// field-level validation.
func RestoreOrder(
	id kernel.UUID,
	number string,
	status Status,
	customer Contact,
	restaurantName string,
	restaurantAddress string,
	deliveryAddress string,
	items []Item,
	pricing Pricing,
	payment PaymentMethod,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
	createdAt time.Time,
	acceptedAt *time.Time,
	pickedAt *time.Time,
	deliveredAt *time.Time,
	cancelReason string,
	lastLocation *kernel.GeoPoint,
	version int64,
) (*Order, error) {
	o := &Order{
		acceptedAt:   acceptedAt,
		pickedAt:     pickedAt,
		deliveredAt:  deliveredAt,
		cancelReason: cancelReason,

		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setStatus(status),
		o.setCustomer(customer),
		o.setRestaurant(restaurantName, restaurantAddress),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setPricing(pricing),
		o.setPayment(payment),
		o.setRoute(pickup, drop),
		o.setCreatedAt(createdAt),
		o.setLastLocation(lastLocation),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number shown to the partner.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the customer contact details.
func (o *Order) Customer() Contact {
	return o.customer
}

// RestaurantName returns the pickup restaurant's name.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// RestaurantAddress returns the pickup restaurant's address.
func (o *Order) RestaurantAddress() string {
	return o.restaurantAddress
}

// DeliveryAddress returns the customer's delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Pricing returns the monetary breakdown of the order.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// DeliveryFee returns the partner's earning for this order.
// Shorthand used by the earnings rollup.
func (o *Order) DeliveryFee() kernel.Money {
	return o.pricing.DeliveryFee()
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

// Pickup returns the restaurant coordinates.
func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

// Drop returns the delivery coordinates.
func (o *Order) Drop() kernel.GeoPoint {
	return o.drop
}

// CreatedAt returns when the platform created the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when the partner accepted the order, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// PickedAt returns when the order was collected, or nil.
func (o *Order) PickedAt() *time.Time {
	return o.pickedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelReason returns the recorded rejection/cancellation reason, if any.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// LastLocation returns the most recent partner position reported with a
// status update, or nil if none was reported.
func (o *Order) LastLocation() *kernel.GeoPoint {
	return o.lastLocation
}

// Version returns the aggregate version, incremented on every applied
// transition. The persistence layer rejects writes carrying a version that
// is not ahead of the stored one, which silently retires stale responses.
func (o *Order) Version() int64 {
	return o.version
}

// IsTerminal reports whether the order reached Delivered or Cancelled.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// Accept marks the order as taken by the partner.
// Legal only from Assigned; stamps acceptedAt with the supplied time.
func (o *Order) Accept(at time.Time) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedAt = &at
	o.version++
	return nil
}

// Reject declines a newly assigned order.
// Legal only from Assigned; records the reason and terminates the order,
// removing it from the active set.
func (o *Order) Reject(reason string, at time.Time) error {
	if o.status != Assigned {
		return NewInvalidTransitionError(o.status, Cancelled)
	}
	return o.Cancel(reason, at)
}

// Cancel terminates the order with a reason.
// Legal from Assigned or Accepted.
func (o *Order) Cancel(reason string, _ time.Time) error {
	if reason == "" {
		return ErrRejectReasonIsRequired
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	o.version++
	return nil
}

// Advance moves the order to next, which must be the immediate successor of
// the current status. Stamps the timestamp matching the reached status and
// records the partner position when one is supplied.
func (o *Order) Advance(next Status, at time.Time, location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.AdvanceTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	switch newStatus { //nolint:exhaustive // only these statuses carry timestamps
	case Accepted:
		o.acceptedAt = &at
	case Picked:
		o.pickedAt = &at
	case Delivered:
		o.deliveredAt = &at
	}

	if location != nil {
		o.lastLocation = location
	}
	o.version++
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
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomer(customer Contact) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setRestaurant(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("restaurant address")
	}
	o.restaurantName = name
	o.restaurantAddress = address
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
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

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setRoute(pickup, drop kernel.GeoPoint) error {
	if err := errors.Join(pickup.Validate(), drop.Validate()); err != nil {
		return err
	}
	o.pickup = pickup
	o.drop = drop
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setLastLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	o.lastLocation = location
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version <= 0 {
		return errs.NewVersionIsInvalidError("order version",
			errors.New("version must be greater than 0"))
	}
	o.version = version
	return nil
}
