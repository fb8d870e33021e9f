package domain

import (
	"strings"
	"time"
)

// Name is a trimmed, non-blank display name.
type Name string

// NewName validates raw.
func NewName(raw string) (Name, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBlankName
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Floor is the floor a room sits on. Negative values are basements.
type Floor int

// Dimensions of a room in metres.
type Dimensions struct {
	Width  float64
	Height float64
	Length float64
}

// NewDimensions requires every side to be strictly positive.
func NewDimensions(width, height, length float64) (Dimensions, error) {
	if width <= 0 || height <= 0 || length <= 0 {
		return Dimensions{}, ErrInvalidDimensions
	}
	return Dimensions{Width: width, Height: height, Length: length}, nil
}

// Area is the floor area in square metres.
func (d Dimensions) Area() float64 {
	return d.Width * d.Length
}

// Address is the postal address of a house.
type Address struct {
	Street     string
	DoorNumber string
	PostalCode string
	City       string
	Country    string
}

// NewAddress trims every component and requires all of them.
func NewAddress(street, doorNumber, postalCode, city, country string) (Address, error) {
	a := Address{
		Street:     strings.TrimSpace(street),
		DoorNumber: strings.TrimSpace(doorNumber),
		PostalCode: strings.TrimSpace(postalCode),
		City:       strings.TrimSpace(city),
		Country:    strings.TrimSpace(country),
	}
	if a.Street == "" || a.DoorNumber == "" || a.PostalCode == "" || a.City == "" || a.Country == "" {
		return Address{}, ErrInvalidAddress
	}
	return a, nil
}

// GPS is a WGS84 coordinate.
type GPS struct {
	Latitude  float64
	Longitude float64
}

// NewGPS validates the coordinate ranges.
func NewGPS(latitude, longitude float64) (GPS, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return GPS{}, ErrInvalidGPS
	}
	return GPS{Latitude: latitude, Longitude: longitude}, nil
}

// Unit of measurement reported by a sensor type, e.g. "C" or "%".
type Unit string

// NewUnit validates raw.
func NewUnit(raw string) (Unit, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBlankUnit
	}
	return Unit(s), nil
}

// ReadingValue is the raw value a sensor reported. Values are kept as text
// because switches and contact sensors report states, not numbers.
type ReadingValue string

// NewReadingValue validates raw.
func NewReadingValue(raw string) (ReadingValue, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBlankReadingValue
	}
	return ReadingValue(s), nil
}

func (v ReadingValue) String() string { return string(v) }

// TimeStamp is a UTC instant that is never in the future.
type TimeStamp struct {
	t time.Time
}

// NewTimeStamp validates t against now.
func NewTimeStamp(t, now time.Time) (TimeStamp, error) {
	if t.IsZero() {
		return TimeStamp{}, ErrZeroTimeStamp
	}
	if t.After(now) {
		return TimeStamp{}, ErrFutureTimeStamp
	}
	return TimeStamp{t: t.UTC()}, nil
}

// Time returns the underlying instant in UTC.
func (ts TimeStamp) Time() time.Time { return ts.t }

// IsZero reports whether ts was never set.
func (ts TimeStamp) IsZero() bool { return ts.t.IsZero() }

// ActuatorLimits bound the values a set-value actuator accepts.
type ActuatorLimits struct {
	Lower float64
	Upper float64
}

// NewActuatorLimits requires lower < upper.
func NewActuatorLimits(lower, upper float64) (ActuatorLimits, error) {
	if lower >= upper {
		return ActuatorLimits{}, ErrInvalidLimits
	}
	return ActuatorLimits{Lower: lower, Upper: upper}, nil
}

// Contains reports whether v lies within the limits, bounds included.
func (l ActuatorLimits) Contains(v float64) bool {
	return v >= l.Lower && v <= l.Upper
}
