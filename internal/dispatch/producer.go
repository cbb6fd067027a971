// Package dispatch publishes messages to their topics from a bounded pool of
// workers so that host callbacks never wait on the broker.
package dispatch

import (
	"context"
	"fmt"

	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// Producer is a broker client publishing keyless records. Produce must not
// block on the broker round-trip; done is called once with the outcome.
type Producer interface {
	Produce(ctx context.Context, topic string, value []byte, done func(error))
	Close()
}

// Topics assigns one topic name per exchange.
type Topics struct {
	Accounts        string `json:"accounts" yaml:"accounts"`
	Transactions    string `json:"transactions" yaml:"transactions"`
	BlockMetadata   string `json:"blockMetadata" yaml:"blockMetadata"`
	NftOffChainData string `json:"nftOffChainData" yaml:"nftOffChainData"`
	FinalizedSlots  string `json:"finalizedSlots" yaml:"finalizedSlots"`
}

// For returns the topic of exchange. Unknown exchanges and unset names
// report false.
func (t Topics) For(exchange geyser.ExchangeType) (string, bool) {
	var name string
	switch exchange {
	case geyser.ExchangeAccount:
		name = t.Accounts
	case geyser.ExchangeTransaction:
		name = t.Transactions
	case geyser.ExchangeMetadata:
		name = t.BlockMetadata
	case geyser.ExchangeNftData:
		name = t.NftOffChainData
	case geyser.ExchangeSlot:
		name = t.FinalizedSlots
	}
	return name, name != ""
}

// Names lists every topic in exchange order.
func (t Topics) Names() []string {
	names := make([]string, 0, len(geyser.ExchangeTypes))
	for _, e := range geyser.ExchangeTypes {
		name, _ := t.For(e)
		names = append(names, name)
	}
	return names
}

// Validate requires a distinct non-empty name for every exchange.
func (t Topics) Validate() error {
	seen := make(map[string]geyser.ExchangeType, len(geyser.ExchangeTypes))
	for _, e := range geyser.ExchangeTypes {
		name, ok := t.For(e)
		if !ok {
			return fmt.Errorf("topic for %s exchange is not set", e)
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("topic %q assigned to both %s and %s exchanges", name, prev, e)
		}
		seen[name] = e
	}
	return nil
}
