package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"smarthome-backend/config"
	"smarthome-backend/internal/metrics"
	"smarthome-backend/internal/parse"
)

const (
	connectTimeout    = 10 * time.Second
	keepAlive         = 60 * time.Second
	disconnectQuiesce = 250 // milliseconds
)

// ErrDisabled is returned by NewSubscriber when mqtt.enabled is false.
var ErrDisabled = errors.New("mqtt ingest is disabled")

// Subscriber listens on <prefix>/sensors/+/readings and hands every report to
// a WorkerPool.
type Subscriber struct {
	cfg     config.MQTTConfig
	client  mqtt.Client
	pool    *WorkerPool
	metrics *metrics.Metrics
}

// NewSubscriber builds a subscriber; nothing is connected until Start.
func NewSubscriber(cfg config.MQTTConfig, adder ReadingAdder, m *metrics.Metrics) (*Subscriber, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	if cfg.Broker == "" {
		return nil, errors.New("mqtt.broker is required")
	}
	return &Subscriber{
		cfg:     cfg,
		client:  mqtt.NewClient(clientOptions(cfg)),
		pool:    NewWorkerPool(cfg.Workers, adder, m),
		metrics: m,
	}, nil
}

func clientOptions(cfg config.MQTTConfig) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(keepAlive)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("mqtt connection lost")
	})
	return opts
}

// Start starts the workers, connects and subscribes. Workers stop when ctx is
// done; call Close to disconnect.
func (s *Subscriber) Start(ctx context.Context) error {
	s.pool.Start(ctx)

	if token := s.client.Connect(); !token.WaitTimeout(connectTimeout) {
		return errors.New("mqtt connect timed out")
	} else if token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}

	topic := parse.ReadingTopic(s.cfg.TopicPrefix)
	token := s.client.Subscribe(topic, byte(s.cfg.QoS), s.handler(ctx))
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", topic, token.Error())
	}
	log.Info().Str("broker", s.cfg.Broker).Str("topic", topic).Int("workers", s.pool.size).Msg("mqtt ingest started")
	return nil
}

func (s *Subscriber) handler(ctx context.Context) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		r, err := DecodeReport(s.cfg.TopicPrefix, msg.Topic(), msg.Payload())
		if err != nil {
			s.metrics.IngestResult(err)
			log.Warn().Err(err).Str("topic", msg.Topic()).Msg("dropping sensor report")
			return
		}
		s.pool.Dispatch(ctx, r)
	}
}

// Close disconnects from the broker.
func (s *Subscriber) Close() {
	if s.client.IsConnected() {
		s.client.Disconnect(disconnectQuiesce)
	}
	log.Info().Msg("mqtt ingest stopped")
}
