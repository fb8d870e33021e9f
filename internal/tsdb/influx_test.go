package tsdb

import (
	"context"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-backend/config"
	"smarthome-backend/internal/domain"
)

type capturingWriter struct {
	points []*write.Point
}

func (c *capturingWriter) WritePoint(_ context.Context, point ...*write.Point) error {
	c.points = append(c.points, point...)
	return nil
}

func reading(t *testing.T, value string, at time.Time) domain.Reading {
	r, err := domain.NewReading("sensor-1", value, at, at)
	require.NoError(t, err)
	return r
}

func TestReadingPoint(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	p := ReadingPoint(reading(t, "21.5", at))
	assert.Equal(t, "sensor_reading", p.Name())
	require.Len(t, p.TagList(), 1)
	assert.Equal(t, "sensor_id", p.TagList()[0].Key)
	assert.Equal(t, "sensor-1", p.TagList()[0].Value)
	require.Len(t, p.FieldList(), 1)
	assert.Equal(t, 21.5, p.FieldList()[0].Value)
	assert.True(t, at.Equal(p.Time()))

	p = ReadingPoint(reading(t, "on", at))
	assert.Equal(t, "on", p.FieldList()[0].Value)
}

func TestWriter_WriteReading(t *testing.T) {
	capture := &capturingWriter{}
	w := &Writer{api: capture}

	require.NoError(t, w.WriteReading(context.Background(), reading(t, "3", time.Now().UTC())))
	require.Len(t, capture.points, 1)
	assert.Equal(t, 3.0, capture.points[0].FieldList()[0].Value)

	assert.NotPanics(t, w.Close)
}

func TestConnect_Disabled(t *testing.T) {
	_, err := Connect(config.InfluxConfig{Enabled: false})
	assert.ErrorIs(t, err, ErrDisabled)
}
