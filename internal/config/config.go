// Package config loads the bridge configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marko911/geyser-pulse/internal/dispatch"
	"github.com/marko911/geyser-pulse/internal/platform/kafka"
	"github.com/marko911/geyser-pulse/internal/platform/nats"
	"github.com/marko911/geyser-pulse/internal/selector"
	"github.com/marko911/geyser-pulse/internal/serializer"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Broker names a message queue implementation.
type Broker string

const (
	BrokerKafka Broker = "kafka"
	BrokerNATS  Broker = "nats"
)

// Config is the on-disk configuration. JSON and YAML share the same
// camelCase keys.
type Config struct {
	Broker              Broker            `json:"broker" yaml:"broker"`
	Kafka               map[string]string `json:"kafka" yaml:"kafka"`
	NATS                NATS              `json:"nats" yaml:"nats"`
	KafkaTopics         dispatch.Topics   `json:"kafkaTopics" yaml:"kafkaTopics"`
	CreateTopics        *CreateTopics     `json:"createTopics" yaml:"createTopics"`
	Jobs                Jobs              `json:"jobs" yaml:"jobs"`
	Accounts            Accounts          `json:"accounts" yaml:"accounts"`
	TransactionPrograms []string          `json:"transactionPrograms" yaml:"transactionPrograms"`
	Serializer          serializer.Format `json:"serializer" yaml:"serializer"`
}

type NATS struct {
	URL       string `json:"url" yaml:"url"`
	Name      string `json:"name" yaml:"name"`
	JetStream bool   `json:"jetstream" yaml:"jetstream"`
	Stream    string `json:"stream" yaml:"stream"`
}

// CreateTopics provisions missing Kafka topics at startup.
type CreateTopics struct {
	Partitions        int32 `json:"partitions" yaml:"partitions"`
	ReplicationFactor int16 `json:"replicationFactor" yaml:"replicationFactor"`
}

type Jobs struct {
	Limit int `json:"limit" yaml:"limit"`
	// Blocking defaults to Limit when unset.
	Blocking *int `json:"blocking" yaml:"blocking"`
	Queue    int  `json:"queue" yaml:"queue"`
}

type Accounts struct {
	Owners []string      `json:"owners" yaml:"owners"`
	Mode   selector.Mode `json:"mode" yaml:"mode"`
	// Startup is tri-state: absent ignores is_startup, otherwise it must match.
	Startup      *bool `json:"startup" yaml:"startup"`
	Deletion     bool  `json:"deletion" yaml:"deletion"`
	WithOffchain bool  `json:"withOffchain" yaml:"withOffchain"`
}

// Load reads path as YAML when it ends in .yaml or .yml and as JSON
// otherwise. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Broker == "" {
		c.Broker = BrokerKafka
	}
	if c.Serializer == "" {
		c.Serializer = serializer.FormatFlatBuffers
	}
	if c.Broker == BrokerNATS {
		def := nats.DefaultConfig()
		if c.NATS.URL == "" {
			c.NATS.URL = def.URL
		}
		if c.NATS.Name == "" {
			c.NATS.Name = def.Name
		}
		if c.NATS.Stream == "" {
			c.NATS.Stream = def.Stream
		}
	}
}

// Validate reports every problem found, not just the first.
func (c *Config) Validate() error {
	var errs []error

	switch c.Broker {
	case BrokerKafka:
		if _, err := kafka.ClientOptions(c.Kafka); err != nil {
			errs = append(errs, err)
		}
	case BrokerNATS:
		if c.NATS.URL == "" {
			errs = append(errs, errors.New("nats.url is required"))
		}
		if c.CreateTopics != nil {
			errs = append(errs, errors.New("createTopics only applies to the kafka broker"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown broker %q", c.Broker))
	}

	if err := c.KafkaTopics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("kafkaTopics: %w", err))
	}

	if ct := c.CreateTopics; ct != nil {
		if ct.Partitions < 1 {
			errs = append(errs, fmt.Errorf("createTopics.partitions must be at least 1, got %d", ct.Partitions))
		}
		if ct.ReplicationFactor < 1 {
			errs = append(errs, fmt.Errorf("createTopics.replicationFactor must be at least 1, got %d", ct.ReplicationFactor))
		}
	}

	if c.Jobs.Limit < 1 {
		errs = append(errs, fmt.Errorf("jobs.limit must be at least 1, got %d", c.Jobs.Limit))
	}
	if c.Jobs.Blocking != nil && *c.Jobs.Blocking < 1 {
		errs = append(errs, fmt.Errorf("jobs.blocking must be at least 1, got %d", *c.Jobs.Blocking))
	}
	if c.Jobs.Queue < 0 {
		errs = append(errs, fmt.Errorf("jobs.queue must not be negative, got %d", c.Jobs.Queue))
	}

	switch c.Accounts.Mode {
	case selector.ModeAuto, selector.ModeAll:
	case selector.ModeOwners:
		if len(c.Accounts.Owners) == 0 {
			errs = append(errs, errors.New("accounts.mode owners requires accounts.owners"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown accounts.mode %q", c.Accounts.Mode))
	}

	switch c.Serializer {
	case serializer.FormatFlatBuffers, serializer.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown serializer %q", c.Serializer))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Parts is the configuration resolved into the objects the plugin runs on.
type Parts struct {
	Broker       Broker
	Kafka        map[string]string
	NATS         nats.Config
	Topics       dispatch.Topics
	CreateTopics []kafka.TopicConfig
	Runtime      dispatch.RuntimeOptions
	Accounts     *selector.AccountSelector
	Transactions *selector.TransactionSelector
	Serializer   serializer.Serializer
}

// IntoParts validates c and builds the selectors and serializer. Malformed
// keys are fatal.
func (c *Config) IntoParts() (*Parts, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	accounts, err := selector.NewAccountSelector(selector.AccountOptions{
		Owners:       c.Accounts.Owners,
		Mode:         c.Accounts.Mode,
		Startup:      c.Accounts.Startup,
		Deletion:     c.Accounts.Deletion,
		WithOffchain: c.Accounts.WithOffchain,
	})
	if err != nil {
		return nil, fmt.Errorf("create account selector: %w", err)
	}

	transactions, err := selector.NewTransactionSelector(c.TransactionPrograms)
	if err != nil {
		return nil, fmt.Errorf("create transaction selector: %w", err)
	}

	s, err := serializer.New(c.Serializer)
	if err != nil {
		return nil, err
	}

	natsCfg := nats.DefaultConfig()
	natsCfg.URL = c.NATS.URL
	natsCfg.Name = c.NATS.Name
	natsCfg.JetStream = c.NATS.JetStream
	natsCfg.Stream = c.NATS.Stream

	runtime := dispatch.RuntimeOptions{
		Workers:   c.Jobs.Limit,
		QueueSize: c.Jobs.Queue,
	}
	if c.Jobs.Blocking != nil {
		runtime.Overflow = *c.Jobs.Blocking
	}

	var topics []kafka.TopicConfig
	if c.CreateTopics != nil {
		topics = kafka.TopicConfigs(c.KafkaTopics.Names(), c.CreateTopics.Partitions, c.CreateTopics.ReplicationFactor)
	}

	return &Parts{
		Broker:       c.Broker,
		Kafka:        c.Kafka,
		NATS:         natsCfg,
		Topics:       c.KafkaTopics,
		CreateTopics: topics,
		Runtime:      runtime,
		Accounts:     accounts,
		Transactions: transactions,
		Serializer:   s,
	}, nil
}
