package domain

import "time"

// Reading is a single value reported by a sensor at a point in time.
type Reading struct {
	ID        ReadingID
	SensorID  SensorID
	Value     ReadingValue
	TimeStamp TimeStamp
}

// NewReading creates a reading with a fresh identity. at must not be after now.
func NewReading(sensorID SensorID, value string, at, now time.Time) (Reading, error) {
	return RestoreReading(newID[ReadingID](), sensorID, value, at, now)
}

// RestoreReading rebuilds a reading with a known identity.
func RestoreReading(id ReadingID, sensorID SensorID, value string, at, now time.Time) (Reading, error) {
	if id == "" || sensorID == "" {
		return Reading{}, ErrBlankID
	}
	v, err := NewReadingValue(value)
	if err != nil {
		return Reading{}, err
	}
	ts, err := NewTimeStamp(at, now)
	if err != nil {
		return Reading{}, err
	}
	return Reading{ID: id, SensorID: sensorID, Value: v, TimeStamp: ts}, nil
}
