// Package ingest receives sensor reports from an MQTT broker and stores them
// as readings.
package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
	"smarthome-backend/internal/parse"
)

// ErrInvalidPayload wraps payloads that are not a reading report.
var ErrInvalidPayload = fmt.Errorf("%w: invalid report payload", domain.ErrValidation)

// Report is one decoded sensor report waiting to be stored.
type Report struct {
	SensorID domain.SensorID
	Value    string
	At       time.Time // zero means "when stored"
}

// DecodeReport extracts the sensor id from topic and the reading from payload.
func DecodeReport(prefix, topic string, payload []byte) (Report, error) {
	rawID, err := parse.ParseReadingTopic(prefix, topic)
	if err != nil {
		return Report{}, err
	}
	sensorID, err := domain.ParseID[domain.SensorID](rawID)
	if err != nil {
		return Report{}, err
	}

	var req dto.CreateReadingRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	r := Report{SensorID: sensorID, Value: req.Value}
	if req.Timestamp != "" {
		if r.At, err = parse.ParseTimeStamp(req.Timestamp); err != nil {
			return Report{}, err
		}
	}
	return r, nil
}
