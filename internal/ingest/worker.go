package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/metrics"
	"smarthome-backend/internal/service"
)

// ReadingAdder stores a reading. *service.ReadingService satisfies it.
type ReadingAdder interface {
	AddReading(ctx context.Context, sensorID domain.SensorID, value string, at time.Time, source string) (domain.Reading, error)
}

// WorkerPool stores reports on a fixed number of goroutines so that slow
// database writes do not stall the MQTT client's message loop.
type WorkerPool struct {
	size    int
	jobs    chan Report
	adder   ReadingAdder
	metrics *metrics.Metrics
}

// NewWorkerPool creates a new worker pool. m may be nil.
func NewWorkerPool(size int, adder ReadingAdder, m *metrics.Metrics) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	return &WorkerPool{
		size:    size,
		jobs:    make(chan Report, size*16),
		adder:   adder,
		metrics: m,
	}
}

// Start launches the worker goroutines. They exit when ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Debug().Int("worker", id).Msg("ingest worker started")
	for {
		select {
		case r := <-wp.jobs:
			wp.store(ctx, r)
		case <-ctx.Done():
			log.Debug().Int("worker", id).Msg("ingest worker shutting down")
			return
		}
	}
}

func (wp *WorkerPool) store(ctx context.Context, r Report) {
	_, err := wp.adder.AddReading(ctx, r.SensorID, r.Value, r.At, service.SourceMQTT)
	wp.metrics.IngestResult(err)
	if err != nil {
		log.Warn().Err(err).Str("sensor_id", string(r.SensorID)).Msg("failed to store sensor report")
	}
}

// Dispatch queues r. It blocks while the queue is full and gives up when ctx
// is done.
func (wp *WorkerPool) Dispatch(ctx context.Context, r Report) bool {
	select {
	case wp.jobs <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan Report {
	return wp.jobs
}
