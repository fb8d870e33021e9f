package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	testCases := []struct {
		name                  string
		width, height, length float64
		expectErr             bool
	}{
		{name: "All positive", width: 5, height: 3, length: 4},
		{name: "Zero width", width: 0, height: 3, length: 4, expectErr: true},
		{name: "Negative height", width: 5, height: -1, length: 4, expectErr: true},
		{name: "Zero length", width: 5, height: 3, length: 0, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDimensions(tc.width, tc.height, tc.length)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Dimensions{Width: tc.width, Height: tc.height, Length: tc.length}, d)
			assert.Equal(t, tc.width*tc.length, d.Area())
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID[RoomID]("  abc-123 ")
	require.NoError(t, err)
	assert.Equal(t, RoomID("abc-123"), id)

	_, err = ParseID[DeviceID]("   ")
	assert.ErrorIs(t, err, ErrBlankID)
}

func TestNewName(t *testing.T) {
	n, err := NewName("  Kitchen ")
	require.NoError(t, err)
	assert.Equal(t, Name("Kitchen"), n)

	_, err = NewName("\t")
	assert.ErrorIs(t, err, ErrBlankName)
}

func TestNewGPS(t *testing.T) {
	testCases := []struct {
		name      string
		lat, lng  float64
		expectErr bool
	}{
		{name: "Porto", lat: 41.1579, lng: -8.6291},
		{name: "Poles and antimeridian", lat: -90, lng: 180},
		{name: "Latitude too large", lat: 90.5, lng: 0, expectErr: true},
		{name: "Longitude too small", lat: 0, lng: -180.1, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGPS(tc.lat, tc.lng)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidGPS)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAddress(t *testing.T) {
	a, err := NewAddress(" Rua Dr. Roberto Frias ", "400", "4200-465", "Porto", "Portugal")
	require.NoError(t, err)
	assert.Equal(t, "Rua Dr. Roberto Frias", a.Street)

	_, err = NewAddress("Rua", "", "4200-465", "Porto", "Portugal")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNewTimeStamp(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	ts, err := NewTimeStamp(now.Add(-time.Minute).In(time.FixedZone("WET", 3600)), now)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Time().Location())
	assert.True(t, ts.Time().Equal(now.Add(-time.Minute)))

	_, err = NewTimeStamp(now, now)
	assert.NoError(t, err, "a timestamp equal to now is not in the future")

	_, err = NewTimeStamp(now.Add(time.Second), now)
	assert.ErrorIs(t, err, ErrFutureTimeStamp)

	_, err = NewTimeStamp(time.Time{}, now)
	assert.ErrorIs(t, err, ErrZeroTimeStamp)
}

func TestNewPeriod(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	hourAgo := now.Add(-time.Hour)

	testCases := []struct {
		name       string
		start, end time.Time
		expectErr  bool
	}{
		{name: "Valid period", start: hourAgo, end: now},
		{name: "Start equals end", start: hourAgo, end: hourAgo, expectErr: true},
		{name: "Start after end", start: now, end: hourAgo, expectErr: true},
		{name: "End in the future", start: hourAgo, end: now.Add(time.Minute), expectErr: true},
		{name: "Zero start", start: time.Time{}, end: now, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPeriod(tc.start, tc.end, now)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Contains(tc.start))
			assert.True(t, p.Contains(tc.end))
			assert.False(t, p.Contains(tc.end.Add(time.Nanosecond)))
		})
	}
}

func TestActuatorLimits(t *testing.T) {
	l, err := NewActuatorLimits(0, 100)
	require.NoError(t, err)
	assert.True(t, l.Contains(0))
	assert.True(t, l.Contains(100))
	assert.False(t, l.Contains(100.5))

	_, err = NewActuatorLimits(10, 10)
	assert.ErrorIs(t, err, ErrInvalidLimits)
}
