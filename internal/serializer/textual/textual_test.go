package textual

import (
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/pkg/geyser"
)

func TestAccount_RoundTrip(t *testing.T) {
	in := &geyser.AccountUpdate{
		Key:          solana.PublicKey{1},
		Lamports:     42,
		Owner:        solana.PublicKey{2},
		RentEpoch:    3,
		Data:         []byte{1, 2, 3},
		WriteVersion: 9,
		Slot:         10,
		IsStartup:    true,
	}

	b, err := New().SerializeAccount(in)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Equal(t, in.Key.String(), fields["key"])
	assert.Equal(t, true, fields["is_startup"])

	out, err := DecodeAccount(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMetadata_RoundTrip(t *testing.T) {
	in := &geyser.MetadataNotify{Slot: 1, Blockhash: "h", Rewards: "[]", BlockTime: -1, BlockHeight: 2}

	b, err := New().SerializeMetadata(in)
	require.NoError(t, err)

	out, err := DecodeMetadata(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNftOffChainData_RoundTrip(t *testing.T) {
	in := &geyser.NftOffChainDataNotify{Pubkey: "p", URI: "https://example.com/1.json", Slot: 3, IsStartup: true}

	b, err := New().SerializeNftOffChainData(in)
	require.NoError(t, err)

	out, err := DecodeNftOffChainData(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFinalizedSlot(t *testing.T) {
	b, err := New().SerializeFinalizedSlot(77)
	require.NoError(t, err)
	assert.Equal(t, "77", string(b))

	slot, err := DecodeFinalizedSlot(b)
	require.NoError(t, err)
	assert.Equal(t, geyser.FinalizedSlot(77), slot)
}

func TestTransaction_DescriptiveStatus(t *testing.T) {
	in := &geyser.TransactionNotify{
		Signature: solana.Signature{5},
		Slot:      8,
		Transaction: geyser.SanitizedTransaction{
			Message: &geyser.LegacyMessage{
				AccountKeys: []solana.PublicKey{{1}},
				Instructions: []geyser.CompiledInstruction{
					{ProgramIDIndex: 0, Accounts: []byte{0}, Data: []byte{1, 2, 3}},
				},
			},
			Signatures: []solana.Signature{{5}},
		},
		TransactionMeta: geyser.TransactionStatusMeta{
			Fee:          10,
			PreBalances:  []uint64{20},
			PostBalances: []uint64{10},
			InnerInstructions: []geyser.InnerInstructions{{
				Index:        0,
				Instructions: []geyser.CompiledInstruction{{ProgramIDIndex: 0, Data: []byte{1, 2, 3}}},
			}},
		},
	}

	b, err := New().SerializeTransaction(in)
	require.NoError(t, err)

	var wire struct {
		Meta map[string]json.RawMessage `json:"transaction_meta"`
	}
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.JSONEq(t, `{"Ok":null}`, string(wire.Meta["status"]))
	assert.JSONEq(t, `null`, string(wire.Meta["err"]))
	assert.JSONEq(t, `null`, string(wire.Meta["logMessages"]))

	out, err := DecodeTransaction(b)
	require.NoError(t, err)
	assert.Equal(t, in.Signature, out.Signature)
	assert.Equal(t, in.Transaction, out.Transaction)
	require.Len(t, out.TransactionMeta.InnerInstructions, 1)
	assert.Equal(t, "Ldp", out.TransactionMeta.InnerInstructions[0].Instructions[0].Data)
	assert.Nil(t, out.TransactionMeta.Status.Err)
}

func TestTransaction_FailedStatus(t *testing.T) {
	in := &geyser.TransactionNotify{
		Transaction: geyser.SanitizedTransaction{Message: &geyser.LegacyMessage{}},
		TransactionMeta: geyser.TransactionStatusMeta{
			Err: &geyser.TransactionError{Kind: "BlockhashNotFound"},
		},
	}

	b, err := New().SerializeTransaction(in)
	require.NoError(t, err)

	out, err := DecodeTransaction(b)
	require.NoError(t, err)
	require.NotNil(t, out.TransactionMeta.Err)
	assert.Equal(t, "BlockhashNotFound", *out.TransactionMeta.Err)
	require.NotNil(t, out.TransactionMeta.Status.Err)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := DecodeAccount([]byte("{"))
	require.Error(t, err)

	_, err = DecodeFinalizedSlot([]byte(`"x"`))
	require.Error(t, err)
}
