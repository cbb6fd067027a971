package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/marko911/geyser-pulse/internal/serializer"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// Sender encodes messages and hands them to the producer. Failures are
// logged and counted, never retried or returned.
type Sender struct {
	// mu is held for reading by every send and for writing only by Close.
	mu       sync.RWMutex
	producer Producer

	topics     Topics
	serializer serializer.Serializer
	metrics    *Metrics
	logger     *slog.Logger
}

func NewSender(producer Producer, topics Topics, s serializer.Serializer, metrics *Metrics, logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{
		producer:   producer,
		topics:     topics,
		serializer: s,
		metrics:    metrics,
		logger:     logger.With("component", "sender"),
	}
}

// Send publishes msg to the topic of its exchange.
func (s *Sender) Send(ctx context.Context, msg geyser.Message) {
	exchange := msg.Exchange()

	topic, ok := s.topics.For(exchange)
	if !ok {
		s.metrics.RecordPublishError(exchange.String(), stageRoute)
		s.logger.Error("no topic for exchange", "exchange", exchange)
		return
	}

	payload, err := serializer.Encode(s.serializer, msg)
	if err != nil {
		s.metrics.RecordPublishError(exchange.String(), stageEncode)
		s.logger.Error("failed to encode message",
			"exchange", exchange,
			"error", err,
		)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.producer == nil {
		s.metrics.RecordPublishError(exchange.String(), stagePublish)
		s.logger.Warn("sender closed, message discarded", "topic", topic)
		return
	}

	s.producer.Produce(ctx, topic, payload, func(err error) {
		if err != nil {
			s.metrics.RecordPublishError(exchange.String(), stagePublish)
			s.logger.Error("failed to publish message",
				"topic", topic,
				"bytes", len(payload),
				"error", err,
			)
			return
		}
		s.metrics.RecordPublished(exchange.String())
	})
}

// Close closes the producer. Later sends are discarded.
func (s *Sender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.producer == nil {
		return
	}
	s.producer.Close()
	s.producer = nil
}
