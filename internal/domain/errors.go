package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package wraps one of them so
// callers can branch with errors.Is without knowing the concrete sentinel.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Validation errors.
var (
	ErrBlankID               = fmt.Errorf("%w: identity must not be blank", ErrValidation)
	ErrBlankName             = fmt.Errorf("%w: name must not be blank", ErrValidation)
	ErrBlankModelName        = fmt.Errorf("%w: model name must not be blank", ErrValidation)
	ErrBlankDescription      = fmt.Errorf("%w: description must not be blank", ErrValidation)
	ErrBlankUnit             = fmt.Errorf("%w: unit must not be blank", ErrValidation)
	ErrBlankReadingValue     = fmt.Errorf("%w: reading value must not be blank", ErrValidation)
	ErrInvalidDimensions     = fmt.Errorf("%w: width, height and length must be greater than zero", ErrValidation)
	ErrInvalidAddress        = fmt.Errorf("%w: street, door number, postal code, city and country are required", ErrValidation)
	ErrInvalidGPS            = fmt.Errorf("%w: latitude must be within [-90, 90] and longitude within [-180, 180]", ErrValidation)
	ErrInvalidLimits         = fmt.Errorf("%w: lower limit must be less than upper limit", ErrValidation)
	ErrZeroTimeStamp         = fmt.Errorf("%w: timestamp is required", ErrValidation)
	ErrFutureTimeStamp       = fmt.Errorf("%w: timestamp must not be in the future", ErrValidation)
	ErrInvalidPeriod         = fmt.Errorf("%w: period start must be before end and end must not be in the future", ErrValidation)
	ErrDeviceAlreadyInactive = fmt.Errorf("%w: device is already inactive", ErrValidation)
	ErrDeviceInactive        = fmt.Errorf("%w: device is inactive", ErrValidation)
)

// Lookup errors.
var (
	ErrHouseNotFound         = fmt.Errorf("house %w", ErrNotFound)
	ErrRoomNotFound          = fmt.Errorf("room %w", ErrNotFound)
	ErrDeviceNotFound        = fmt.Errorf("device %w", ErrNotFound)
	ErrDeviceTypeNotFound    = fmt.Errorf("device type %w", ErrNotFound)
	ErrSensorNotFound        = fmt.Errorf("sensor %w", ErrNotFound)
	ErrSensorTypeNotFound    = fmt.Errorf("sensor type %w", ErrNotFound)
	ErrSensorModelNotFound   = fmt.Errorf("sensor model %w", ErrNotFound)
	ErrActuatorNotFound      = fmt.Errorf("actuator %w", ErrNotFound)
	ErrActuatorTypeNotFound  = fmt.Errorf("actuator type %w", ErrNotFound)
	ErrActuatorModelNotFound = fmt.Errorf("actuator model %w", ErrNotFound)
)
