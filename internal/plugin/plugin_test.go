package plugin

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/internal/config"
	"github.com/marko911/geyser-pulse/internal/dispatch"
	"github.com/marko911/geyser-pulse/internal/host"
	"github.com/marko911/geyser-pulse/internal/serializer/flatbuf"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

var (
	tokenProgram = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	memoProgram  = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
)

func boolPtr(b bool) *bool { return &b }

func baseConfig() *config.Config {
	return &config.Config{
		Broker: config.BrokerKafka,
		Kafka:  map[string]string{"bootstrap.servers": "localhost:9092"},
		KafkaTopics: dispatch.Topics{
			Accounts:        "accounts",
			Transactions:    "transactions",
			BlockMetadata:   "metadata",
			NftOffChainData: "nft",
			FinalizedSlots:  "slots",
		},
		Jobs:                config.Jobs{Limit: 2},
		TransactionPrograms: []string{tokenProgram.String()},
		Serializer:          "flatbuffers",
	}
}

// startPlugin runs a plugin on a mock producer. The returned drain unloads
// it so that every scheduled unit has been published.
func startPlugin(t *testing.T, cfg *config.Config) (*Plugin, *dispatch.MockProducer, func()) {
	t.Helper()

	parts, err := cfg.IntoParts()
	require.NoError(t, err)

	producer := dispatch.NewMockProducer()
	p := New(nil, WithRegistry(prometheus.NewRegistry()))
	require.NoError(t, p.Start(parts, producer))

	drain := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, p.OnUnload(ctx))
	}
	t.Cleanup(func() { _ = p.OnUnload(context.Background()) })
	return p, producer, drain
}

func accountInfo(owner solana.PublicKey, data []byte) *host.ReplicaAccountInfo {
	return &host.ReplicaAccountInfo{
		Pubkey:       solana.NewWallet().PublicKey().Bytes(),
		Lamports:     1000,
		Owner:        owner.Bytes(),
		RentEpoch:    361,
		Data:         data,
		WriteVersion: 9,
	}
}

func metadataAccount(uri string) []byte {
	data := make([]byte, 679)
	data[0] = metadataV1Key
	copy(data[uriOffset:], uri)
	return data
}

func assertPluginError(t *testing.T, err error, kind host.ErrorKind) {
	t.Helper()
	var perr *host.PluginError
	require.True(t, errors.As(err, &perr), "expected *host.PluginError, got %T", err)
	assert.Equal(t, kind, perr.Kind)
}

func TestPlugin_Uninitialized(t *testing.T) {
	p := New(nil, WithRegistry(prometheus.NewRegistry()))

	assert.Equal(t, Name, p.Name())
	assert.True(t, p.AccountDataNotificationsEnabled())
	assert.False(t, p.TransactionNotificationsEnabled())

	err := p.UpdateAccount(accountInfo(tokenProgram, nil), 1, false)
	require.ErrorIs(t, err, host.ErrNotInitialized)
	assertPluginError(t, err, host.KindAccountsUpdate)

	err = p.UpdateSlotStatus(1, nil, host.SlotRooted)
	require.ErrorIs(t, err, host.ErrNotInitialized)
	assertPluginError(t, err, host.KindSlotStatusUpdate)

	err = p.NotifyTransaction(&host.ReplicaTransactionInfo{}, 1)
	require.ErrorIs(t, err, host.ErrNotInitialized)
	assertPluginError(t, err, host.KindCustom)

	err = p.NotifyBlockMetadata(&host.ReplicaBlockInfo{})
	require.ErrorIs(t, err, host.ErrNotInitialized)
	assertPluginError(t, err, host.KindCustom)

	require.NoError(t, p.OnUnload(context.Background()))
}

func TestPlugin_StartTwice(t *testing.T) {
	p, _, _ := startPlugin(t, baseConfig())

	parts, err := baseConfig().IntoParts()
	require.NoError(t, err)
	err = p.Start(parts, dispatch.NewMockProducer())
	require.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestPlugin_OnUnloadClosesProducer(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())
	drain()

	assert.True(t, producer.IsClosed())
	require.ErrorIs(t, p.UpdateSlotStatus(1, nil, host.SlotRooted), host.ErrNotInitialized)
}

func TestPlugin_RestartAfterUnload(t *testing.T) {
	p, _, drain := startPlugin(t, baseConfig())
	drain()

	parts, err := baseConfig().IntoParts()
	require.NoError(t, err)
	producer := dispatch.NewMockProducer()
	require.NoError(t, p.Start(parts, producer))
	defer p.OnUnload(context.Background())

	assert.True(t, p.TransactionNotificationsEnabled())
}

func TestPlugin_OnLoadConfigError(t *testing.T) {
	p := New(nil, WithRegistry(prometheus.NewRegistry()))

	err := p.OnLoad(context.Background(), "/does/not/exist.json")
	require.Error(t, err)
	assertPluginError(t, err, host.KindConfigFile)
	assert.False(t, p.TransactionNotificationsEnabled())
}

func TestUpdateAccount_StartupOwnerSelected(t *testing.T) {
	cfg := baseConfig()
	cfg.Accounts = config.Accounts{
		Owners:  []string{tokenProgram.String()},
		Startup: boolPtr(true),
	}
	p, producer, drain := startPlugin(t, cfg)

	acct := accountInfo(tokenProgram, []byte{1, 2, 3})
	require.NoError(t, p.UpdateAccount(acct, 42, true))
	drain()

	records := producer.RecordsFor("accounts")
	require.Len(t, records, 1)
	assert.Empty(t, producer.RecordsFor("nft"))

	got, err := flatbuf.DecodeAccount(records[0].Value)
	require.NoError(t, err)
	assert.Equal(t, &geyser.AccountUpdate{
		Key:          solana.PublicKeyFromBytes(acct.Pubkey),
		Lamports:     1000,
		Owner:        tokenProgram,
		RentEpoch:    361,
		Data:         []byte{1, 2, 3},
		WriteVersion: 9,
		Slot:         42,
		IsStartup:    true,
	}, got)
}

func TestUpdateAccount_NotSelected(t *testing.T) {
	cfg := baseConfig()
	cfg.Accounts = config.Accounts{
		Owners:  []string{tokenProgram.String()},
		Startup: boolPtr(true),
	}
	p, producer, drain := startPlugin(t, cfg)

	require.NoError(t, p.UpdateAccount(accountInfo(tokenProgram, nil), 1, false))
	require.NoError(t, p.UpdateAccount(accountInfo(memoProgram, nil), 1, true))
	drain()

	assert.Empty(t, producer.Records())
}

func TestUpdateAccount_V2(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())

	sig := solana.Signature{1}
	v2 := &host.ReplicaAccountInfoV2{
		ReplicaAccountInfo: *accountInfo(memoProgram, []byte{7}),
		TxnSignature:       &sig,
	}
	require.NoError(t, p.UpdateAccount(v2, 3, false))
	drain()

	assert.Len(t, producer.RecordsFor("accounts"), 1)
}

func TestUpdateAccount_MalformedKey(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())

	acct := accountInfo(tokenProgram, nil)
	acct.Pubkey = acct.Pubkey[:31]

	err := p.UpdateAccount(acct, 1, false)
	require.Error(t, err)
	assertPluginError(t, err, host.KindAccountsUpdate)
	drain()

	assert.Empty(t, producer.Records())
}

func TestUpdateAccount_DataIsCopied(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())

	data := []byte{1, 2, 3}
	require.NoError(t, p.UpdateAccount(accountInfo(tokenProgram, data), 1, false))
	data[0] = 0xff
	drain()

	records := producer.RecordsFor("accounts")
	require.Len(t, records, 1)
	got, err := flatbuf.DecodeAccount(records[0].Value)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got.Data)
}

func TestUpdateAccount_OffChainMetadata(t *testing.T) {
	uri := "https://arweave.net/abc"

	t.Run("enabled", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Accounts.WithOffchain = true
		p, producer, drain := startPlugin(t, cfg)

		acct := accountInfo(MetadataProgramID, metadataAccount(uri))
		require.NoError(t, p.UpdateAccount(acct, 8, true))
		drain()

		assert.Len(t, producer.RecordsFor("accounts"), 1)
		records := producer.RecordsFor("nft")
		require.Len(t, records, 1)

		got, err := flatbuf.DecodeNftOffChainData(records[0].Value)
		require.NoError(t, err)
		assert.Equal(t, solana.PublicKeyFromBytes(acct.Pubkey).String(), got.Pubkey)
		assert.Len(t, got.URI, uriLen)
		assert.Equal(t, uri, strings.TrimRight(got.URI, "\x00"))
		assert.Equal(t, uint64(8), got.Slot)
		assert.True(t, got.IsStartup)
	})

	t.Run("disabled", func(t *testing.T) {
		p, producer, drain := startPlugin(t, baseConfig())

		require.NoError(t, p.UpdateAccount(accountInfo(MetadataProgramID, metadataAccount(uri)), 8, true))
		drain()

		assert.Len(t, producer.RecordsFor("accounts"), 1)
		assert.Empty(t, producer.RecordsFor("nft"))
	})

	t.Run("other owner", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Accounts.WithOffchain = true
		p, producer, drain := startPlugin(t, cfg)

		require.NoError(t, p.UpdateAccount(accountInfo(tokenProgram, metadataAccount(uri)), 8, true))
		drain()

		assert.Len(t, producer.RecordsFor("accounts"), 1)
		assert.Empty(t, producer.RecordsFor("nft"))
	})

	t.Run("short buffer", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Accounts.WithOffchain = true
		p, producer, drain := startPlugin(t, cfg)

		require.NoError(t, p.UpdateAccount(accountInfo(MetadataProgramID, []byte{metadataV1Key}), 8, true))
		drain()

		assert.Len(t, producer.RecordsFor("accounts"), 1)
		assert.Empty(t, producer.RecordsFor("nft"))
	})
}

func TestUpdateSlotStatus(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())

	parent := uint64(99)
	require.NoError(t, p.UpdateSlotStatus(100, &parent, host.SlotProcessed))
	require.NoError(t, p.UpdateSlotStatus(100, &parent, host.SlotConfirmed))
	require.NoError(t, p.UpdateSlotStatus(100, &parent, host.SlotRooted))
	drain()

	records := producer.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "slots", records[0].Topic)

	slot, err := flatbuf.DecodeFinalizedSlot(records[0].Value)
	require.NoError(t, err)
	assert.Equal(t, geyser.FinalizedSlot(100), slot)
}

func transactionInfo(keys ...solana.PublicKey) *host.ReplicaTransactionInfo {
	return &host.ReplicaTransactionInfo{
		Signature: solana.Signature{5},
		Transaction: geyser.SanitizedTransaction{
			Message: &geyser.LegacyMessage{
				Header:      geyser.MessageHeader{NumRequiredSignatures: 1},
				AccountKeys: keys,
				Instructions: []geyser.CompiledInstruction{
					{ProgramIDIndex: uint8(len(keys) - 1), Accounts: []byte{0}, Data: []byte{1}},
				},
			},
			Signatures: []solana.Signature{{5}},
		},
		TransactionStatusMeta: geyser.TransactionStatusMeta{
			Fee:          5000,
			PreBalances:  []uint64{10},
			PostBalances: []uint64{5},
		},
	}
}

func TestNotifyTransaction(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())
	assert.True(t, p.TransactionNotificationsEnabled())

	payer := solana.NewWallet().PublicKey()

	selected := transactionInfo(payer, tokenProgram)
	require.NoError(t, p.NotifyTransaction(selected, 10))

	unselected := transactionInfo(payer, memoProgram)
	require.NoError(t, p.NotifyTransaction(unselected, 11))

	failed := transactionInfo(payer, tokenProgram)
	failed.TransactionStatusMeta.Err = &geyser.TransactionError{Kind: "InsufficientFundsForFee"}
	require.NoError(t, p.NotifyTransaction(failed, 12))

	v2 := &host.ReplicaTransactionInfoV2{ReplicaTransactionInfo: *transactionInfo(tokenProgram), Index: 3}
	require.NoError(t, p.NotifyTransaction(v2, 13))

	require.NoError(t, p.NotifyTransaction(&host.ReplicaTransactionInfo{}, 14))
	drain()

	records := producer.RecordsFor("transactions")
	require.Len(t, records, 2)

	slots := map[uint64]bool{}
	for _, r := range records {
		tx, err := flatbuf.DecodeTransaction(r.Value)
		require.NoError(t, err)
		assert.True(t, tx.TransactionMeta.IsOk())
		slots[tx.Slot] = true
	}
	assert.Equal(t, map[uint64]bool{10: true, 13: true}, slots)
}

func TestNotifyTransaction_V0LoadedKeys(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())

	tx := &host.ReplicaTransactionInfo{
		Transaction: geyser.SanitizedTransaction{
			Message: &geyser.LoadedMessageV0{
				Message: geyser.MessageV0{
					AccountKeys: []solana.PublicKey{memoProgram},
				},
				LoadedAddresses: geyser.LoadedAddresses{
					Readonly: []solana.PublicKey{tokenProgram},
				},
			},
		},
	}
	require.NoError(t, p.NotifyTransaction(tx, 20))
	drain()

	assert.Len(t, producer.RecordsFor("transactions"), 1)
}

func TestTransactionNotificationsDisabled(t *testing.T) {
	cfg := baseConfig()
	cfg.TransactionPrograms = nil
	p, _, _ := startPlugin(t, cfg)

	assert.False(t, p.TransactionNotificationsEnabled())
}

func TestNotifyBlockMetadata(t *testing.T) {
	p, producer, drain := startPlugin(t, baseConfig())

	blockTime := int64(1700000000)
	height := uint64(250)
	commission := uint8(5)

	require.NoError(t, p.NotifyBlockMetadata(&host.ReplicaBlockInfo{
		Slot:      300,
		Blockhash: "hash-a",
		Rewards: []geyser.Reward{
			{Pubkey: "voter", Lamports: 12, PostBalance: 100, RewardType: geyser.RewardTypeVoting, Commission: &commission},
		},
		BlockTime:   &blockTime,
		BlockHeight: &height,
	}))
	require.NoError(t, p.NotifyBlockMetadata(&host.ReplicaBlockInfoV2{
		ReplicaBlockInfo: host.ReplicaBlockInfo{Slot: 301, Blockhash: "hash-b"},
		ParentSlot:       300,
	}))
	drain()

	records := producer.RecordsFor("metadata")
	require.Len(t, records, 2)

	bySlot := map[uint64]*geyser.MetadataNotify{}
	for _, r := range records {
		m, err := flatbuf.DecodeMetadata(r.Value)
		require.NoError(t, err)
		bySlot[m.Slot] = m
	}

	full := bySlot[300]
	require.NotNil(t, full)
	assert.Equal(t, "hash-a", full.Blockhash)
	assert.Equal(t, blockTime, full.BlockTime)
	assert.Equal(t, height, full.BlockHeight)
	assert.JSONEq(t,
		`[{"pubkey":"voter","lamports":12,"postBalance":100,"rewardType":"Voting","commission":5}]`,
		full.Rewards)

	partial := bySlot[301]
	require.NotNil(t, partial)
	assert.Zero(t, partial.BlockTime)
	assert.Zero(t, partial.BlockHeight)
	assert.Equal(t, "[]", partial.Rewards)
}
