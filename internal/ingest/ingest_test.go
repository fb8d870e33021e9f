package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-backend/config"
	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/metrics"
)

type call struct {
	sensorID domain.SensorID
	value    string
	at       time.Time
	source   string
}

type fakeAdder struct {
	mu    sync.Mutex
	calls []call
	err   error
	done  chan struct{}
}

func newFakeAdder(err error) *fakeAdder {
	return &fakeAdder{err: err, done: make(chan struct{}, 16)}
}

func (f *fakeAdder) AddReading(_ context.Context, sensorID domain.SensorID, value string, at time.Time, source string) (domain.Reading, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{sensorID, value, at, source})
	f.mu.Unlock()
	f.done <- struct{}{}
	return domain.Reading{}, f.err
}

func (f *fakeAdder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reading to be stored")
	}
}

// fakeMessage implements mqtt.Message.
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func TestDecodeReport(t *testing.T) {
	r, err := DecodeReport("smarthome", "smarthome/sensors/s-1/readings", []byte(`{"value":"21.5","timestamp":"2024-03-01T10:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.SensorID("s-1"), r.SensorID)
	assert.Equal(t, "21.5", r.Value)
	assert.True(t, r.At.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))

	r, err = DecodeReport("smarthome", "smarthome/sensors/s-1/readings", []byte(`{"value":"on"}`))
	require.NoError(t, err)
	assert.True(t, r.At.IsZero())

	_, err = DecodeReport("smarthome", "other/sensors/s-1/readings", []byte(`{"value":"1"}`))
	assert.Error(t, err)

	_, err = DecodeReport("smarthome", "smarthome/sensors/s-1/readings", []byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = DecodeReport("smarthome", "smarthome/sensors/s-1/readings", []byte(`{"value":"1","timestamp":"yesterday"}`))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, newFakeAdder(nil), nil)

	require.True(t, wp.Dispatch(context.Background(), Report{SensorID: "s-1", Value: "1"}))

	select {
	case job := <-wp.Jobs():
		assert.Equal(t, domain.SensorID("s-1"), job.SensorID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DispatchGivesUpOnCancel(t *testing.T) {
	wp := NewWorkerPool(1, newFakeAdder(nil), nil)
	for len(wp.Jobs()) < cap(wp.Jobs()) {
		wp.Jobs() <- Report{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, wp.Dispatch(ctx, Report{SensorID: "s-1"}))
}

func TestWorkerPool_StoresReports(t *testing.T) {
	adder := newFakeAdder(nil)
	m := metrics.New()
	wp := NewWorkerPool(2, adder, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	wp.Dispatch(ctx, Report{SensorID: "s-1", Value: "21.5", At: at})
	adder.wait(t)

	adder.mu.Lock()
	require.Len(t, adder.calls, 1)
	got := adder.calls[0]
	adder.mu.Unlock()
	assert.Equal(t, domain.SensorID("s-1"), got.sensorID)
	assert.Equal(t, "21.5", got.value)
	assert.True(t, at.Equal(got.at))
	assert.Equal(t, "mqtt", got.source)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.IngestMessagesTotal.WithLabelValues("success")) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestWorkerPool_CountsFailures(t *testing.T) {
	adder := newFakeAdder(domain.ErrSensorNotFound)
	m := metrics.New()
	wp := NewWorkerPool(1, adder, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(ctx, Report{SensorID: "missing", Value: "1"})
	adder.wait(t)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.IngestMessagesTotal.WithLabelValues("error")) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSubscriber_Handler(t *testing.T) {
	cfg := config.MQTTConfig{Enabled: true, Broker: "tcp://localhost:1883", ClientID: "test", TopicPrefix: "home", Workers: 1}
	adder := newFakeAdder(nil)
	m := metrics.New()
	s, err := NewSubscriber(cfg, adder, m)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.pool.Start(ctx)
	handle := s.handler(ctx)

	handle(nil, fakeMessage{topic: "home/sensors/s-9/readings", payload: []byte(`{"value":"off"}`)})
	adder.wait(t)
	adder.mu.Lock()
	assert.Equal(t, domain.SensorID("s-9"), adder.calls[0].sensorID)
	adder.mu.Unlock()

	handle(nil, fakeMessage{topic: "home/sensors/s-9/readings", payload: []byte(`{`)})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IngestMessagesTotal.WithLabelValues("error")))
}

func TestNewSubscriber_Validation(t *testing.T) {
	_, err := NewSubscriber(config.MQTTConfig{}, newFakeAdder(nil), nil)
	assert.True(t, errors.Is(err, ErrDisabled))

	_, err = NewSubscriber(config.MQTTConfig{Enabled: true}, newFakeAdder(nil), nil)
	assert.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.MQTTConfig{Broker: "tcp://broker:1883", ClientID: "smarthomed", Username: "u", Password: "p"})
	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "broker:1883", opts.Servers[0].Host)
	assert.Equal(t, "smarthomed", opts.ClientID)
	assert.Equal(t, "u", opts.Username)
	assert.True(t, opts.AutoReconnect)
}
