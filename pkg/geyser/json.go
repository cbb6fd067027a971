package geyser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// sanitizedTransactionJSON mirrors SanitizedTransaction with the message
// union tagged by variant name: {"Legacy": {...}} or {"V0": {...}}.
type sanitizedTransactionJSON struct {
	Message        map[string]json.RawMessage `json:"message"`
	MessageHash    solana.Hash                `json:"message_hash"`
	IsSimpleVoteTx bool                       `json:"is_simple_vote_tx"`
	Signatures     []solana.Signature         `json:"signatures"`
}

const (
	legacyTag = "Legacy"
	v0Tag     = "V0"
)

func (t SanitizedTransaction) MarshalJSON() ([]byte, error) {
	var (
		tag string
		raw []byte
		err error
	)
	switch m := t.Message.(type) {
	case *LegacyMessage:
		tag = legacyTag
		raw, err = json.Marshal(m)
	case *LoadedMessageV0:
		tag = v0Tag
		raw, err = json.Marshal(m)
	case nil:
		return nil, errors.New("sanitized transaction: missing message")
	default:
		return nil, fmt.Errorf("sanitized transaction: unexpected message %T", m)
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(sanitizedTransactionJSON{
		Message:        map[string]json.RawMessage{tag: raw},
		MessageHash:    t.MessageHash,
		IsSimpleVoteTx: t.IsSimpleVoteTx,
		Signatures:     t.Signatures,
	})
}

func (t *SanitizedTransaction) UnmarshalJSON(b []byte) error {
	var wire sanitizedTransactionJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	if len(wire.Message) != 1 {
		return fmt.Errorf("sanitized transaction: expected one message variant, got %d", len(wire.Message))
	}

	for tag, raw := range wire.Message {
		switch tag {
		case legacyTag:
			var m LegacyMessage
			if err := json.Unmarshal(raw, &m); err != nil {
				return fmt.Errorf("legacy message: %w", err)
			}
			t.Message = &m
		case v0Tag:
			var m LoadedMessageV0
			if err := json.Unmarshal(raw, &m); err != nil {
				return fmt.Errorf("v0 message: %w", err)
			}
			t.Message = &m
		default:
			return fmt.Errorf("sanitized transaction: unknown message variant %q", tag)
		}
	}

	t.MessageHash = wire.MessageHash
	t.IsSimpleVoteTx = wire.IsSimpleVoteTx
	t.Signatures = wire.Signatures
	return nil
}
