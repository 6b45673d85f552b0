package domain

import "strings"

// VehicleType selects the branch of the fare rate table.
type VehicleType string

const (
	VehicleJeepney    VehicleType = "jeepney"
	VehicleBus        VehicleType = "bus"
	VehicleTaxi       VehicleType = "taxi"
	VehiclePrivateCar VehicleType = "private_car"
)

// DefaultVehicleType is used when the caller does not name one.
const DefaultVehicleType = VehicleJeepney

// VehicleTypes lists every recognized vehicle type.
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleJeepney, VehicleBus, VehicleTaxi, VehiclePrivateCar}
}

// ParseVehicleType normalizes free-form input ("Private Car", "JEEPNEY").
// The second result is false for unrecognized values; callers decide how to fall back.
func ParseVehicleType(s string) (VehicleType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	switch VehicleType(normalized) {
	case VehicleJeepney, VehicleBus, VehicleTaxi, VehiclePrivateCar:
		return VehicleType(normalized), true
	case "jeep":
		return VehicleJeepney, true
	case "car":
		return VehiclePrivateCar, true
	}
	return VehicleType(normalized), false
}

// IsValid reports whether v is one of the recognized vehicle types.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleJeepney, VehicleBus, VehicleTaxi, VehiclePrivateCar:
		return true
	}
	return false
}
