package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/internal/serializer/flatbuf"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

func testTopics() Topics {
	return Topics{
		Accounts:        "accounts",
		Transactions:    "transactions",
		BlockMetadata:   "metadata",
		NftOffChainData: "nft",
		FinalizedSlots:  "slots",
	}
}

// failingSerializer cannot encode finalized slots.
type failingSerializer struct{ *flatbuf.Serializer }

func (failingSerializer) SerializeFinalizedSlot(geyser.FinalizedSlot) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestTopics(t *testing.T) {
	topics := testTopics()
	require.NoError(t, topics.Validate())
	assert.Equal(t, []string{"accounts", "transactions", "metadata", "nft", "slots"}, topics.Names())

	name, ok := topics.For(geyser.ExchangeNftData)
	assert.True(t, ok)
	assert.Equal(t, "nft", name)

	_, ok = topics.For(geyser.ExchangeType(42))
	assert.False(t, ok)

	missing := topics
	missing.FinalizedSlots = ""
	require.Error(t, missing.Validate())

	dup := topics
	dup.Transactions = "accounts"
	require.Error(t, dup.Validate())
}

func TestSender_RoutesByExchange(t *testing.T) {
	producer := NewMockProducer()
	metrics := NewMetrics(prometheus.NewRegistry())
	s := NewSender(producer, testTopics(), flatbuf.New(), metrics, nil)

	msgs := []geyser.Message{
		&geyser.AccountUpdate{Lamports: 1},
		&geyser.MetadataNotify{Slot: 2},
		&geyser.NftOffChainDataNotify{URI: "u"},
		geyser.FinalizedSlot(9),
	}
	for _, msg := range msgs {
		s.Send(context.Background(), msg)
	}

	records := producer.Records()
	require.Len(t, records, 4)
	assert.Equal(t, "accounts", records[0].Topic)
	assert.Equal(t, "metadata", records[1].Topic)
	assert.Equal(t, "nft", records[2].Topic)
	assert.Equal(t, "slots", records[3].Topic)

	slot, err := flatbuf.DecodeFinalizedSlot(records[3].Value)
	require.NoError(t, err)
	assert.Equal(t, geyser.FinalizedSlot(9), slot)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.published.WithLabelValues("slot")))
}

func TestSender_PublishErrorCounted(t *testing.T) {
	producer := NewMockProducer()
	producer.SetError(errors.New("broker down"))
	metrics := NewMetrics(prometheus.NewRegistry())
	s := NewSender(producer, testTopics(), flatbuf.New(), metrics, nil)

	assert.NotPanics(t, func() {
		s.Send(context.Background(), geyser.FinalizedSlot(1))
		s.Send(context.Background(), geyser.FinalizedSlot(2))
	})

	assert.Empty(t, producer.Records())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.publishErrors.WithLabelValues("slot", stagePublish)))
}

func TestSender_EncodeErrorCounted(t *testing.T) {
	producer := NewMockProducer()
	metrics := NewMetrics(prometheus.NewRegistry())
	s := NewSender(producer, testTopics(), failingSerializer{flatbuf.New()}, metrics, nil)

	s.Send(context.Background(), geyser.FinalizedSlot(1))

	assert.Empty(t, producer.Records())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.publishErrors.WithLabelValues("slot", stageEncode)))
}

func TestSender_MissingTopic(t *testing.T) {
	producer := NewMockProducer()
	metrics := NewMetrics(prometheus.NewRegistry())
	topics := testTopics()
	topics.Accounts = ""
	s := NewSender(producer, topics, flatbuf.New(), metrics, nil)

	s.Send(context.Background(), &geyser.AccountUpdate{})

	assert.Empty(t, producer.Records())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.publishErrors.WithLabelValues("account", stageRoute)))
}

func TestSender_Close(t *testing.T) {
	producer := NewMockProducer()
	s := NewSender(producer, testTopics(), flatbuf.New(), nil, nil)

	s.Close()
	s.Close()
	assert.True(t, producer.IsClosed())

	s.Send(context.Background(), geyser.FinalizedSlot(1))
	assert.Empty(t, producer.Records())
}
