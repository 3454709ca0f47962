package account

import (
	"fmt"

	"riderhub/internal/pkg/errs"
)

// VehicleType identifies the vehicle the partner delivers with.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleBike is a bicycle or motorbike.
	VehicleBike

	// VehicleScooter is a scooter.
	VehicleScooter

	// VehicleCar is a car.
	VehicleCar
)

func getVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleBike:    "bike",
		VehicleScooter: "scooter",
		VehicleCar:     "car",
	}
}

// VehicleTypeFromString parses the wire representation of a vehicle type.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for v, str := range getVehicleTypeStrings() {
		if str == s {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid",
		fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks the vehicle type is one of the defined values.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the wire name of the vehicle type.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}
