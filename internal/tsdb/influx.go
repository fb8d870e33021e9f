// Package tsdb mirrors stored sensor readings into InfluxDB.
package tsdb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"smarthome-backend/config"
	"smarthome-backend/internal/domain"
)

const (
	measurement    = "sensor_reading"
	connectTimeout = 10 * time.Second
)

// ErrDisabled is returned by Connect when influx.enabled is false.
var ErrDisabled = errors.New("influxdb is disabled")

// pointWriter is satisfied by api.WriteAPIBlocking.
type pointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// Writer writes one point per reading.
type Writer struct {
	client influxdb2.Client
	api    pointWriter
}

// Connect creates a client and verifies the server answers a ping.
func Connect(cfg config.InfluxConfig) (*Writer, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	healthy, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("influxdb ping failed: %w", err)
	}
	if !healthy {
		client.Close()
		return nil, errors.New("influxdb server not healthy")
	}

	return &Writer{client: client, api: client.WriteAPIBlocking(cfg.Org, cfg.Bucket)}, nil
}

// WriteReading writes r synchronously.
func (w *Writer) WriteReading(ctx context.Context, r domain.Reading) error {
	return w.api.WritePoint(ctx, ReadingPoint(r))
}

// Close releases the client.
func (w *Writer) Close() {
	if w.client != nil {
		w.client.Close()
	}
}

// ReadingPoint converts r to a point. Numeric values become float fields so
// they can be aggregated; anything else is stored as a string.
func ReadingPoint(r domain.Reading) *write.Point {
	var value any = r.Value.String()
	if f, err := strconv.ParseFloat(r.Value.String(), 64); err == nil {
		value = f
	}
	return write.NewPoint(
		measurement,
		map[string]string{"sensor_id": string(r.SensorID)},
		map[string]any{"value": value},
		r.TimeStamp.Time(),
	)
}
