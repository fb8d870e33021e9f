package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-backend/internal/domain"
)

func TestParseTimeStamp(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  time.Time
		expectErr bool
	}{
		{
			name:     "RFC3339 with zone",
			raw:      "2024-03-01T13:00:00+01:00",
			expected: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with fraction",
			raw:      "2024-03-01T12:00:00.250Z",
			expected: time.Date(2024, 3, 1, 12, 0, 0, 250_000_000, time.UTC),
		},
		{
			name:     "Local layout assumed UTC",
			raw:      "2024-03-01T12:00:00",
			expected: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "Space separated",
			raw:      " 2024-03-01 12:00:00 ",
			expected: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "Date only",
			raw:      "2024-03-01",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "Empty", raw: "  ", expectErr: true},
		{name: "Garbage", raw: "yesterday", expectErr: true},
		{name: "Invalid month", raw: "2024-13-01", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimeStamp(tc.raw)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidTimeStamp)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.True(t, IsTimeStampError(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	p, err := ParsePeriod("2024-03-01T00:00:00Z", "2024-03-01T12:00:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, p.End.Sub(p.Start))

	testCases := []struct {
		name       string
		start, end string
	}{
		{"Unparsable start", "soon", "2024-03-01T12:00:00Z"},
		{"Unparsable end", "2024-03-01T00:00:00Z", ""},
		{"Start equals end", "2024-03-01T00:00:00Z", "2024-03-01T00:00:00Z"},
		{"Start after end", "2024-03-01T12:00:00Z", "2024-03-01T00:00:00Z"},
		{"End in the future", "2024-03-01T00:00:00Z", "2024-03-03T00:00:00Z"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePeriod(tc.start, tc.end, now)
			assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
		})
	}
}

func TestParseReadingTopic(t *testing.T) {
	assert.Equal(t, "home/sensors/+/readings", ReadingTopic("home/"))

	id, err := ParseReadingTopic("home", "home/sensors/abc-123/readings")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)

	for _, topic := range []string{
		"other/sensors/abc/readings",
		"home/sensors//readings",
		"home/sensors/abc/values",
		"home/sensors/a/b/readings",
	} {
		_, err := ParseReadingTopic("home", topic)
		assert.Error(t, err, topic)
	}
}
