package parse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smarthome-backend/internal/domain"
)

// ErrInvalidTimeStamp is returned for input matching none of the accepted layouts.
var ErrInvalidTimeStamp = fmt.Errorf("%w: unrecognised timestamp", domain.ErrValidation)

// Layouts without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimeStamp parses raw using the first matching layout and returns it in UTC.
func ParseTimeStamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidTimeStamp)
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeStamp, raw)
}

// ParsePeriod parses both bounds and validates them against now. Any failure,
// including unparsable input, is reported as domain.ErrInvalidPeriod.
func ParsePeriod(rawStart, rawEnd string, now time.Time) (domain.Period, error) {
	start, err := ParseTimeStamp(rawStart)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: start: %w", domain.ErrInvalidPeriod, err)
	}
	end, err := ParseTimeStamp(rawEnd)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: end: %w", domain.ErrInvalidPeriod, err)
	}
	p, err := domain.NewPeriod(start, end, now)
	if err != nil {
		return domain.Period{}, err
	}
	return p, nil
}

// IsTimeStampError reports whether err came from ParseTimeStamp.
func IsTimeStampError(err error) bool {
	return errors.Is(err, ErrInvalidTimeStamp)
}
