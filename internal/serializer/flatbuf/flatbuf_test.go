package flatbuf

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/pkg/geyser"
)

func u8(v uint8) *uint8       { return &v }
func f64(v float64) *float64 { return &v }

func sampleTransaction(msg geyser.SanitizedMessage) *geyser.TransactionNotify {
	return &geyser.TransactionNotify{
		Signature: solana.Signature{1, 2, 3},
		IsVote:    false,
		Slot:      1000,
		Transaction: geyser.SanitizedTransaction{
			Message:        msg,
			MessageHash:    solana.Hash{7, 7},
			IsSimpleVoteTx: true,
			Signatures:     []solana.Signature{{1, 2, 3}, {4}},
		},
		TransactionMeta: geyser.TransactionStatusMeta{
			Fee:          5000,
			PreBalances:  []uint64{100, 200},
			PostBalances: []uint64{95, 200},
			InnerInstructions: []geyser.InnerInstructions{{
				Index:        0,
				Instructions: []geyser.CompiledInstruction{{ProgramIDIndex: 1, Accounts: []byte{0}, Data: []byte{9}}},
			}},
			LogMessages: []string{"Program log: hello"},
			PreTokenBalances: []geyser.TransactionTokenBalance{{
				AccountIndex: 1,
				Mint:         "mint",
				UiTokenAmount: geyser.UiTokenAmount{
					UiAmount:       f64(1.5),
					Decimals:       6,
					Amount:         "1500000",
					UiAmountString: "1.5",
				},
				Owner:     "owner",
				ProgramID: "program",
			}},
			PostTokenBalances: []geyser.TransactionTokenBalance{{
				AccountIndex:  1,
				Mint:          "mint",
				UiTokenAmount: geyser.UiTokenAmount{Decimals: 6, Amount: "0", UiAmountString: "0"},
			}},
			Rewards: []geyser.Reward{
				{Pubkey: "a", Lamports: -10, PostBalance: 5, RewardType: geyser.RewardTypeRent},
				{Pubkey: "b", Lamports: 10, PostBalance: 15, RewardType: geyser.RewardTypeVoting, Commission: u8(0)},
			},
		},
	}
}

func sampleLegacyMessage() *geyser.LegacyMessage {
	return &geyser.LegacyMessage{
		Header:          geyser.MessageHeader{NumRequiredSignatures: 1, NumReadonlyUnsignedAccounts: 1},
		AccountKeys:     []solana.PublicKey{{1}, {2}},
		RecentBlockhash: solana.Hash{3},
		Instructions: []geyser.CompiledInstruction{
			{ProgramIDIndex: 1, Accounts: []byte{0, 1}, Data: []byte{1, 2, 3}},
		},
	}
}

func v0Message() *geyser.LoadedMessageV0 {
	return &geyser.LoadedMessageV0{
		Message: geyser.MessageV0{
			Header:          geyser.MessageHeader{NumRequiredSignatures: 1},
			AccountKeys:     []solana.PublicKey{{1}},
			RecentBlockhash: solana.Hash{3},
			Instructions: []geyser.CompiledInstruction{
				{ProgramIDIndex: 0, Accounts: []byte{1, 2}, Data: []byte{4}},
			},
			AddressTableLookups: []geyser.MessageAddressTableLookup{
				{AccountKey: solana.PublicKey{9}, WritableIndexes: []byte{0}, ReadonlyIndexes: []byte{1}},
			},
		},
		LoadedAddresses: geyser.LoadedAddresses{
			Writable: []solana.PublicKey{{5}},
			Readonly: []solana.PublicKey{{6}},
		},
	}
}

func TestAccount_RoundTrip(t *testing.T) {
	in := &geyser.AccountUpdate{
		Key:          solana.PublicKey{1},
		Lamports:     42,
		Owner:        solana.PublicKey{2},
		Executable:   true,
		RentEpoch:    361,
		Data:         []byte{0xde, 0xad},
		WriteVersion: 7,
		Slot:         99,
		IsStartup:    true,
	}

	b, err := New().SerializeAccount(in)
	require.NoError(t, err)

	out, err := DecodeAccount(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMetadata_RoundTrip(t *testing.T) {
	in := &geyser.MetadataNotify{
		Slot:        12,
		Blockhash:   "5eykt4UsFv8P8NJdTREpY1vzqKqZKvdpKuc147dw2N9d",
		Rewards:     `[{"pubkey":"a","lamports":1}]`,
		BlockTime:   1700000000,
		BlockHeight: 11,
	}

	b, err := New().SerializeMetadata(in)
	require.NoError(t, err)

	out, err := DecodeMetadata(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNftOffChainData_RoundTrip(t *testing.T) {
	in := &geyser.NftOffChainDataNotify{
		Pubkey:    "So11111111111111111111111111111111111111112",
		URI:       "https://arweave.net/abc\x00\x00",
		Slot:      5,
		IsStartup: false,
	}

	b, err := New().SerializeNftOffChainData(in)
	require.NoError(t, err)

	out, err := DecodeNftOffChainData(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFinalizedSlot_RoundTrip(t *testing.T) {
	for _, slot := range []geyser.FinalizedSlot{0, 1, 1 << 40} {
		b, err := New().SerializeFinalizedSlot(slot)
		require.NoError(t, err)

		out, err := DecodeFinalizedSlot(b)
		require.NoError(t, err)
		assert.Equal(t, slot, out)
	}
}

func TestTransaction_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  geyser.SanitizedMessage
	}{
		{"legacy", sampleLegacyMessage()},
		{"v0", v0Message()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleTransaction(tt.msg)

			b, err := New().SerializeTransaction(in)
			require.NoError(t, err)

			out, err := DecodeTransaction(b)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestTransaction_OptionalFields(t *testing.T) {
	in := sampleTransaction(sampleLegacyMessage())
	in.TransactionMeta.InnerInstructions = nil
	in.TransactionMeta.LogMessages = []string{}
	in.TransactionMeta.PreTokenBalances = nil
	in.TransactionMeta.PostTokenBalances = []geyser.TransactionTokenBalance{}
	in.TransactionMeta.Rewards = nil

	b, err := New().SerializeTransaction(in)
	require.NoError(t, err)

	out, err := DecodeTransaction(b)
	require.NoError(t, err)

	meta := out.TransactionMeta
	assert.Nil(t, meta.InnerInstructions)
	assert.NotNil(t, meta.LogMessages)
	assert.Empty(t, meta.LogMessages)
	assert.Nil(t, meta.PreTokenBalances)
	assert.NotNil(t, meta.PostTokenBalances)
	assert.Nil(t, meta.Rewards)
}

func TestTransaction_ErrorStatus(t *testing.T) {
	in := sampleTransaction(sampleLegacyMessage())
	in.TransactionMeta.Err = &geyser.TransactionError{
		Kind:             "InstructionError",
		InstructionIndex: u8(0),
		Detail:           "Custom(6001)",
	}

	b, err := New().SerializeTransaction(in)
	require.NoError(t, err)

	out, err := DecodeTransaction(b)
	require.NoError(t, err)
	require.NotNil(t, out.TransactionMeta.Err)
	assert.Equal(t, in.TransactionMeta.Err, out.TransactionMeta.Err)
	assert.False(t, out.TransactionMeta.IsOk())
}

func TestTransaction_MissingMessage(t *testing.T) {
	in := sampleTransaction(nil)

	_, err := New().SerializeTransaction(in)
	require.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := DecodeAccount([]byte{1})
	require.ErrorIs(t, err, ErrMalformed)

	_, err = DecodeTransaction([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_WrongRoot(t *testing.T) {
	b, err := New().SerializeFinalizedSlot(0)
	require.NoError(t, err)

	// The default slot is elided, leaving an empty table.
	_, err = DecodeAccount(b)
	require.ErrorIs(t, err, ErrMalformed)
}
