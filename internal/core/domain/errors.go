package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDevice is returned when a device name is not one of the known thermoelectric modules.
	ErrInvalidDevice = errors.New("invalid thermoelectric device")

	// ErrDuplicateRegistration is returned when an update role is bound to a field twice.
	ErrDuplicateRegistration = errors.New("duplicate registration")

	// ErrUnachievableOperatingPoint is returned when no positive current pumps the requested heat.
	ErrUnachievableOperatingPoint = errors.New("no achievable positive current")

	// ErrNoRealRoot means the heat balance has no real current at all (negative discriminant).
	ErrNoRealRoot = fmt.Errorf("%w: math domain error, negative discriminant", ErrUnachievableOperatingPoint)

	// ErrMissingField is used when an inbound update lacks a bound field.
	ErrMissingField = errors.New("missing field in update")
)
