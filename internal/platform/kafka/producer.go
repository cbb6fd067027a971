package kafka

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl"
	"github.com/twmb/franz-go/pkg/sasl/plain"
	"github.com/twmb/franz-go/pkg/sasl/scram"
)

// Property keys understood by ClientOptions. They follow the librdkafka
// names so existing producer configs carry over unchanged.
const (
	PropBootstrapServers   = "bootstrap.servers"
	PropClientID           = "client.id"
	PropAcks               = "acks"
	PropCompressionType    = "compression.type"
	PropLingerMs           = "linger.ms"
	PropBatchSize          = "batch.size"
	PropMessageMaxBytes    = "message.max.bytes"
	PropRetries            = "retries"
	PropMessageSendRetries = "message.send.max.retries"
	PropMessageTimeoutMs   = "message.timeout.ms"
	PropRequestTimeoutMs   = "request.timeout.ms"
	PropEnableIdempotence  = "enable.idempotence"
	PropQueueMaxMessages   = "queue.buffering.max.messages"
	PropSecurityProtocol   = "security.protocol"
	PropSASLMechanism      = "sasl.mechanism"
	PropSASLMechanisms     = "sasl.mechanisms"
	PropSASLUsername       = "sasl.username"
	PropSASLPassword       = "sasl.password"
)

var knownProps = map[string]bool{
	PropBootstrapServers: true, PropClientID: true, PropAcks: true,
	PropCompressionType: true, PropLingerMs: true, PropBatchSize: true,
	PropMessageMaxBytes: true, PropRetries: true, PropMessageSendRetries: true,
	PropMessageTimeoutMs: true, PropRequestTimeoutMs: true, PropEnableIdempotence: true,
	PropQueueMaxMessages: true, PropSecurityProtocol: true, PropSASLMechanism: true,
	PropSASLMechanisms: true, PropSASLUsername: true, PropSASLPassword: true,
}

// ClientOptions translates a producer property map into franz-go options.
// Unknown keys and unparsable values are errors.
func ClientOptions(props map[string]string) ([]kgo.Opt, error) {
	var unknown []string
	for k := range props {
		if !knownProps[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unsupported kafka properties: %s", strings.Join(unknown, ", "))
	}

	brokers := splitList(props[PropBootstrapServers])
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka property %s is required", PropBootstrapServers)
	}

	clientID := props[PropClientID]
	if clientID == "" {
		clientID = "geyser-pulse-" + uuid.NewString()
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.ClientID(clientID),
	}

	idempotent := true
	if v, ok := props[PropEnableIdempotence]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("kafka property %s: %w", PropEnableIdempotence, err)
		}
		idempotent = b
	}

	if v, ok := props[PropAcks]; ok {
		switch v {
		case "0":
			opts = append(opts, kgo.RequiredAcks(kgo.NoAck()))
			idempotent = false
		case "1":
			opts = append(opts, kgo.RequiredAcks(kgo.LeaderAck()))
			idempotent = false
		case "all", "-1":
			opts = append(opts, kgo.RequiredAcks(kgo.AllISRAcks()))
		default:
			return nil, fmt.Errorf("kafka property %s: unsupported value %q", PropAcks, v)
		}
	}
	if !idempotent {
		opts = append(opts, kgo.DisableIdempotentWrite())
	}

	if v, ok := props[PropCompressionType]; ok {
		codec, err := compression(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.ProducerBatchCompression(codec))
	}

	if d, ok, err := millis(props, PropLingerMs); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, kgo.ProducerLinger(d))
	}
	if d, ok, err := millis(props, PropMessageTimeoutMs); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, kgo.RecordDeliveryTimeout(d))
	}
	if d, ok, err := millis(props, PropRequestTimeoutMs); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, kgo.ProduceRequestTimeout(d))
	}

	for _, key := range []string{PropBatchSize, PropMessageMaxBytes} {
		if n, ok, err := integer(props, key); err != nil {
			return nil, err
		} else if ok {
			opts = append(opts, kgo.ProducerBatchMaxBytes(int32(n)))
			break
		}
	}
	for _, key := range []string{PropRetries, PropMessageSendRetries} {
		if n, ok, err := integer(props, key); err != nil {
			return nil, err
		} else if ok {
			opts = append(opts, kgo.RecordRetries(n))
			break
		}
	}
	if n, ok, err := integer(props, PropQueueMaxMessages); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, kgo.MaxBufferedRecords(n))
	}

	security, err := securityOptions(props)
	if err != nil {
		return nil, err
	}
	return append(opts, security...), nil
}

func securityOptions(props map[string]string) ([]kgo.Opt, error) {
	var opts []kgo.Opt

	protocol := strings.ToLower(props[PropSecurityProtocol])
	switch protocol {
	case "", "plaintext":
		return nil, nil
	case "ssl", "sasl_ssl":
		opts = append(opts, kgo.DialTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}))
	case "sasl_plaintext":
	default:
		return nil, fmt.Errorf("kafka property %s: unsupported value %q", PropSecurityProtocol, protocol)
	}
	if !strings.HasPrefix(protocol, "sasl_") {
		return opts, nil
	}

	mechanism := props[PropSASLMechanism]
	if mechanism == "" {
		mechanism = props[PropSASLMechanisms]
	}
	user, pass := props[PropSASLUsername], props[PropSASLPassword]

	var mech sasl.Mechanism
	switch strings.ToUpper(mechanism) {
	case "PLAIN", "":
		mech = plain.Auth{User: user, Pass: pass}.AsMechanism()
	case "SCRAM-SHA-256":
		mech = scram.Auth{User: user, Pass: pass}.AsSha256Mechanism()
	case "SCRAM-SHA-512":
		mech = scram.Auth{User: user, Pass: pass}.AsSha512Mechanism()
	default:
		return nil, fmt.Errorf("kafka sasl mechanism %q is not supported", mechanism)
	}
	return append(opts, kgo.SASL(mech)), nil
}

func compression(name string) (kgo.CompressionCodec, error) {
	switch strings.ToLower(name) {
	case "none":
		return kgo.NoCompression(), nil
	case "gzip":
		return kgo.GzipCompression(), nil
	case "snappy":
		return kgo.SnappyCompression(), nil
	case "lz4":
		return kgo.Lz4Compression(), nil
	case "zstd":
		return kgo.ZstdCompression(), nil
	default:
		return kgo.CompressionCodec{}, fmt.Errorf("kafka property %s: unsupported value %q", PropCompressionType, name)
	}
}

func integer(props map[string]string, key string) (int, bool, error) {
	v, ok := props[key]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false, fmt.Errorf("kafka property %s: invalid value %q", key, v)
	}
	return n, true, nil
}

func millis(props map[string]string, key string) (time.Duration, bool, error) {
	n, ok, err := integer(props, key)
	return time.Duration(n) * time.Millisecond, ok, err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Producer publishes keyless records with franz-go's asynchronous producer.
type Producer struct {
	client *kgo.Client
	logger *slog.Logger
}

// NewProducer creates a producer from a property map. The client connects
// lazily on the first produce.
func NewProducer(props map[string]string, logger *slog.Logger) (*Producer, error) {
	opts, err := ClientOptions(props)
	if err != nil {
		return nil, err
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "kafka-producer")
	logger.Info("kafka producer created",
		"brokers", props[PropBootstrapServers],
		"client_id", client.OptValue(kgo.ClientID),
	)

	return &Producer{client: client, logger: logger}, nil
}

func (p *Producer) Produce(ctx context.Context, topic string, value []byte, done func(error)) {
	record := &kgo.Record{
		Topic: topic,
		Value: value,
	}
	// TryProduce fails fast with kgo.ErrMaxBuffered instead of waiting for
	// buffer space. Buffered records outlive the dispatch unit and are
	// flushed by Close.
	p.client.TryProduce(context.WithoutCancel(ctx), record, func(_ *kgo.Record, err error) {
		done(err)
	})
}

// Close flushes buffered records for up to ten seconds, then closes the client.
func (p *Producer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.client.Flush(ctx); err != nil {
		p.logger.Warn("kafka flush incomplete", "error", err)
	}
	p.client.Close()
}
