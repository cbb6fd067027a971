package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marko911/geyser-pulse/internal/config"
	"github.com/marko911/geyser-pulse/internal/dispatch"
	"github.com/marko911/geyser-pulse/internal/platform/kafka"
	"github.com/marko911/geyser-pulse/internal/platform/nats"
)

// openProducer connects the configured broker and provisions its topics or
// stream when asked to.
func openProducer(ctx context.Context, parts *config.Parts, logger *slog.Logger) (dispatch.Producer, error) {
	switch parts.Broker {
	case config.BrokerKafka:
		if len(parts.CreateTopics) > 0 {
			if err := ensureTopics(ctx, parts); err != nil {
				return nil, err
			}
		}
		return kafka.NewProducer(parts.Kafka, logger)

	case config.BrokerNATS:
		client, err := nats.Connect(ctx, parts.NATS, logger)
		if err != nil {
			return nil, err
		}
		if parts.NATS.JetStream {
			cfg := nats.GeyserStreamConfig(parts.NATS.Stream, parts.Topics.Names())
			if _, err := nats.EnsureStream(ctx, client.JetStream(), cfg); err != nil {
				_ = client.Close()
				return nil, err
			}
		}
		return nats.NewProducer(client), nil

	default:
		return nil, fmt.Errorf("unknown broker %q", parts.Broker)
	}
}

func ensureTopics(ctx context.Context, parts *config.Parts) error {
	tm, err := kafka.NewTopicManager(parts.Kafka)
	if err != nil {
		return err
	}
	defer tm.Close()

	if err := tm.EnsureTopics(ctx, parts.CreateTopics); err != nil {
		return fmt.Errorf("ensure kafka topics: %w", err)
	}
	return nil
}
