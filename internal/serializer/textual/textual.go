// Package textual is the human-readable JSON encoding of published messages.
package textual

import (
	"encoding/json"
	"fmt"

	"github.com/marko911/geyser-pulse/pkg/geyser"
)

type Serializer struct{}

func New() *Serializer {
	return &Serializer{}
}

func (s *Serializer) SerializeAccount(a *geyser.AccountUpdate) ([]byte, error) {
	return marshal("account", a)
}

func (s *Serializer) SerializeMetadata(m *geyser.MetadataNotify) ([]byte, error) {
	return marshal("metadata", m)
}

func (s *Serializer) SerializeNftOffChainData(n *geyser.NftOffChainDataNotify) ([]byte, error) {
	return marshal("nft off-chain data", n)
}

func (s *Serializer) SerializeFinalizedSlot(slot geyser.FinalizedSlot) ([]byte, error) {
	return marshal("finalized slot", slot)
}

// SerializeTransaction publishes the status meta in its descriptive form.
func (s *Serializer) SerializeTransaction(tx *geyser.TransactionNotify) ([]byte, error) {
	return marshal("transaction", geyser.NewUiTransactionNotify(tx))
}

func marshal(kind string, v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", kind, err)
	}
	return b, nil
}

func unmarshal[T any](kind string, b []byte) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(b, v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return v, nil
}

func DecodeAccount(b []byte) (*geyser.AccountUpdate, error) {
	return unmarshal[geyser.AccountUpdate]("account", b)
}

func DecodeMetadata(b []byte) (*geyser.MetadataNotify, error) {
	return unmarshal[geyser.MetadataNotify]("metadata", b)
}

func DecodeNftOffChainData(b []byte) (*geyser.NftOffChainDataNotify, error) {
	return unmarshal[geyser.NftOffChainDataNotify]("nft off-chain data", b)
}

func DecodeTransaction(b []byte) (*geyser.UiTransactionNotify, error) {
	return unmarshal[geyser.UiTransactionNotify]("transaction", b)
}

func DecodeFinalizedSlot(b []byte) (geyser.FinalizedSlot, error) {
	slot, err := unmarshal[geyser.FinalizedSlot]("finalized slot", b)
	if err != nil {
		return 0, err
	}
	return *slot, nil
}
