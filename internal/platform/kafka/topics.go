// Package kafka provides the Kafka producer and topic provisioning used by
// the bridge.
package kafka

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

// TopicConfig defines how a missing topic is created.
type TopicConfig struct {
	Name              string
	Partitions        int32
	ReplicationFactor int16
}

// TopicConfigs applies the same partitioning to every name.
func TopicConfigs(names []string, partitions int32, replicationFactor int16) []TopicConfig {
	configs := make([]TopicConfig, len(names))
	for i, name := range names {
		configs[i] = TopicConfig{
			Name:              name,
			Partitions:        partitions,
			ReplicationFactor: replicationFactor,
		}
	}
	return configs
}

// TopicManager manages Kafka topics.
type TopicManager struct {
	admin *kadm.Client
}

// NewTopicManager connects with the same properties as the producer.
func NewTopicManager(props map[string]string) (*TopicManager, error) {
	opts, err := ClientOptions(props)
	if err != nil {
		return nil, err
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &TopicManager{
		admin: kadm.NewClient(client),
	}, nil
}

// EnsureTopics creates topics if they don't exist.
func (m *TopicManager) EnsureTopics(ctx context.Context, configs []TopicConfig) error {
	existing, err := m.admin.ListTopics(ctx)
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}

	for _, cfg := range configs {
		if existing.Has(cfg.Name) {
			continue
		}

		if err := m.CreateTopic(ctx, cfg); err != nil {
			return err
		}
	}

	return nil
}

// CreateTopic creates a single topic with broker-default settings.
func (m *TopicManager) CreateTopic(ctx context.Context, cfg TopicConfig) error {
	resp, err := m.admin.CreateTopics(ctx, cfg.Partitions, cfg.ReplicationFactor, nil, cfg.Name)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", cfg.Name, err)
	}

	for _, r := range resp {
		if r.Err != nil {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}

	return nil
}

// Close releases resources.
func (m *TopicManager) Close() {
	m.admin.Close()
}
