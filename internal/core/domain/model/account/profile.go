package account

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

const (
	ratingMin = 1
	ratingMax = 5
)

// Domain errors for profile operations.
var (
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
)

// Profile is the partner account aggregate: identity and contact details,
// the delivery vehicle, the online flag the dispatcher keys on, and the
// running service stats (average rating, delivery count).
type Profile struct {
	id            kernel.UUID
	name          string
	email         string
	phone         string
	vehicleType   VehicleType
	vehicleNumber string
	isOnline      bool

	ratingSum       int64
	ratingCount     int64
	totalDeliveries int64

	guard guard.ConstructorGuard
}

// NewProfile creates a freshly onboarded partner profile: offline, unrated,
// with no deliveries.
func NewProfile(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	vehicleType VehicleType,
	vehicleNumber string,
) (*Profile, error) {
	p := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setVehicleType(vehicleType),
		p.setVehicleNumber(vehicleNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a Profile aggregate from persistent storage.
func RestoreProfile(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	vehicleType VehicleType,
	vehicleNumber string,
	isOnline bool,
	ratingSum int64,
	ratingCount int64,
	totalDeliveries int64,
) (*Profile, error) {
	p := &Profile{
		isOnline: isOnline,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setVehicleType(vehicleType),
		p.setVehicleNumber(vehicleNumber),
		p.setStats(ratingSum, ratingCount, totalDeliveries),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// IsEqual compares two profiles by identity.
func (p *Profile) IsEqual(other *Profile) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Profile was properly constructed.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the profile identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's name.
func (p *Profile) Name() string {
	return p.name
}

// Email returns the partner's email address.
func (p *Profile) Email() string {
	return p.email
}

// Phone returns the partner's phone number.
func (p *Profile) Phone() string {
	return p.phone
}

// VehicleType returns the delivery vehicle type.
func (p *Profile) VehicleType() VehicleType {
	return p.vehicleType
}

// VehicleNumber returns the vehicle registration number.
func (p *Profile) VehicleNumber() string {
	return p.vehicleNumber
}

// IsOnline reports whether the partner is accepting orders.
func (p *Profile) IsOnline() bool {
	return p.isOnline
}

// Rating returns the average rating, or 0 when unrated.
func (p *Profile) Rating() float64 {
	if p.ratingCount == 0 {
		return 0
	}
	return float64(p.ratingSum) / float64(p.ratingCount)
}

// RatingSum returns the sum of all recorded rating scores.
func (p *Profile) RatingSum() int64 {
	return p.ratingSum
}

// RatingCount returns how many ratings have been recorded.
func (p *Profile) RatingCount() int64 {
	return p.ratingCount
}

// TotalDeliveries returns the lifetime completed delivery count.
func (p *Profile) TotalDeliveries() int64 {
	return p.totalDeliveries
}

// UpdateDetails changes the editable contact fields. All fields are
// validated before any is applied, so a failed update leaves the profile
// unchanged.
func (p *Profile) UpdateDetails(name, email, phone, vehicleNumber string) error {
	if err := errors.Join(
		validate.Required("name", name),
		validate.Email(email),
		validate.Phone(phone),
		validate.Required("vehicleNumber", vehicleNumber),
	); err != nil {
		return err
	}

	p.name = name
	p.email = email
	p.phone = phone
	p.vehicleNumber = vehicleNumber
	return nil
}

// ChangeVehicleType switches the delivery vehicle.
func (p *Profile) ChangeVehicleType(vehicleType VehicleType) error {
	return p.setVehicleType(vehicleType)
}

// SetOnline toggles order acceptance.
func (p *Profile) SetOnline(online bool) {
	p.isOnline = online
}

// RecordDelivery increments the lifetime delivery counter.
func (p *Profile) RecordDelivery() {
	p.totalDeliveries++
}

// RecordRating folds a 1-5 score into the running average.
func (p *Profile) RecordRating(score int) error {
	if score < ratingMin || score > ratingMax {
		return errs.NewValueIsOutOfRangeError("score", score, ratingMin, ratingMax)
	}

	p.ratingSum += int64(score)
	p.ratingCount++
	return nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setName(name string) error {
	if err := validate.Required("name", name); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Profile) setEmail(email string) error {
	if err := validate.Email(email); err != nil {
		return err
	}
	p.email = email
	return nil
}

func (p *Profile) setPhone(phone string) error {
	if err := validate.Phone(phone); err != nil {
		return err
	}
	p.phone = phone
	return nil
}

func (p *Profile) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	p.vehicleType = vehicleType
	return nil
}

func (p *Profile) setVehicleNumber(vehicleNumber string) error {
	if err := validate.Required("vehicleNumber", vehicleNumber); err != nil {
		return err
	}
	p.vehicleNumber = vehicleNumber
	return nil
}

func (p *Profile) setStats(ratingSum, ratingCount, totalDeliveries int64) error {
	if ratingSum < 0 || ratingCount < 0 || totalDeliveries < 0 {
		return errs.NewValueIsInvalidError("profile stats")
	}
	if ratingCount == 0 && ratingSum != 0 {
		return errs.NewValueIsInvalidError("profile stats")
	}

	p.ratingSum = ratingSum
	p.ratingCount = ratingCount
	p.totalDeliveries = totalDeliveries
	return nil
}
