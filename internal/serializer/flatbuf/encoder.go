// Package flatbuf is the compact binary encoding of published messages,
// built on the FlatBuffers tables in package fbs.
package flatbuf

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/marko911/geyser-pulse/internal/serializer/flatbuf/fbs"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// Serializer encodes messages as FlatBuffers. The zero value is ready to use.
type Serializer struct{}

func New() *Serializer {
	return &Serializer{}
}

func (s *Serializer) SerializeAccount(a *geyser.AccountUpdate) ([]byte, error) {
	e := newEncoder(len(a.Data) + 256)

	pubkey := e.pubkey(a.Key[:])
	owner := e.pubkey(a.Owner[:])
	data := e.b.CreateByteVector(a.Data)

	fbs.AccountInfoStart(e.b)
	fbs.AccountInfoAddPubkey(e.b, pubkey)
	fbs.AccountInfoAddLamports(e.b, a.Lamports)
	fbs.AccountInfoAddOwner(e.b, owner)
	fbs.AccountInfoAddExecutable(e.b, a.Executable)
	fbs.AccountInfoAddRentEpoch(e.b, a.RentEpoch)
	fbs.AccountInfoAddData(e.b, data)
	fbs.AccountInfoAddWriteVersion(e.b, a.WriteVersion)
	fbs.AccountInfoAddSlot(e.b, a.Slot)
	fbs.AccountInfoAddIsStartup(e.b, a.IsStartup)

	return e.finish(fbs.AccountInfoEnd(e.b)), nil
}

func (s *Serializer) SerializeMetadata(m *geyser.MetadataNotify) ([]byte, error) {
	e := newEncoder(len(m.Rewards) + 128)

	blockhash := e.b.CreateString(m.Blockhash)
	rewards := e.b.CreateString(m.Rewards)

	fbs.MetadataStart(e.b)
	fbs.MetadataAddSlot(e.b, m.Slot)
	fbs.MetadataAddBlockhash(e.b, blockhash)
	fbs.MetadataAddRewards(e.b, rewards)
	fbs.MetadataAddBlockTime(e.b, m.BlockTime)
	fbs.MetadataAddBlockHeight(e.b, m.BlockHeight)

	return e.finish(fbs.MetadataEnd(e.b)), nil
}

func (s *Serializer) SerializeNftOffChainData(n *geyser.NftOffChainDataNotify) ([]byte, error) {
	e := newEncoder(len(n.URI) + 128)

	pubkey := e.b.CreateString(n.Pubkey)
	uri := e.b.CreateString(n.URI)

	fbs.MetadataOffChainStart(e.b)
	fbs.MetadataOffChainAddPubkey(e.b, pubkey)
	fbs.MetadataOffChainAddUri(e.b, uri)
	fbs.MetadataOffChainAddSlot(e.b, n.Slot)
	fbs.MetadataOffChainAddIsStartup(e.b, n.IsStartup)

	return e.finish(fbs.MetadataOffChainEnd(e.b)), nil
}

func (s *Serializer) SerializeFinalizedSlot(slot geyser.FinalizedSlot) ([]byte, error) {
	e := newEncoder(32)

	fbs.FinalizedSlotStart(e.b)
	fbs.FinalizedSlotAddSlot(e.b, uint64(slot))

	return e.finish(fbs.FinalizedSlotEnd(e.b)), nil
}

func (s *Serializer) SerializeTransaction(tx *geyser.TransactionNotify) ([]byte, error) {
	e := newEncoder(1024)

	transaction, err := e.sanitizedTransaction(&tx.Transaction)
	if err != nil {
		return nil, err
	}
	meta := e.statusMeta(&tx.TransactionMeta)
	signature := e.signature(tx.Signature[:])

	fbs.TransactionInfoStart(e.b)
	fbs.TransactionInfoAddSignature(e.b, signature)
	fbs.TransactionInfoAddIsVote(e.b, tx.IsVote)
	fbs.TransactionInfoAddSlot(e.b, tx.Slot)
	fbs.TransactionInfoAddTransaction(e.b, transaction)
	fbs.TransactionInfoAddTransactionMeta(e.b, meta)

	return e.finish(fbs.TransactionInfoEnd(e.b)), nil
}

// encoder wraps a builder for one message. Children must be created before
// the table that references them is started.
type encoder struct {
	b *flatbuffers.Builder
}

type vectorStart func(*flatbuffers.Builder, int) flatbuffers.UOffsetT

func newEncoder(size int) *encoder {
	return &encoder{b: flatbuffers.NewBuilder(size)}
}

func (e *encoder) finish(root flatbuffers.UOffsetT) []byte {
	e.b.Finish(root)
	return e.b.FinishedBytes()
}

func (e *encoder) offsets(start vectorStart, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	start(e.b, len(offs))
	for i := len(offs) - 1; i >= 0; i-- {
		e.b.PrependUOffsetT(offs[i])
	}
	return e.b.EndVector(len(offs))
}

func (e *encoder) uint64s(start vectorStart, vals []uint64) flatbuffers.UOffsetT {
	start(e.b, len(vals))
	for i := len(vals) - 1; i >= 0; i-- {
		e.b.PrependUint64(vals[i])
	}
	return e.b.EndVector(len(vals))
}

func (e *encoder) strings(start vectorStart, vals []string) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(vals))
	for i, s := range vals {
		offs[i] = e.b.CreateString(s)
	}
	return e.offsets(start, offs)
}

func (e *encoder) pubkey(key []byte) flatbuffers.UOffsetT {
	vec := e.b.CreateByteVector(key)
	fbs.PubkeyStart(e.b)
	fbs.PubkeyAddKey(e.b, vec)
	return fbs.PubkeyEnd(e.b)
}

func (e *encoder) pubkeys(start vectorStart, keys []solana.PublicKey) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(keys))
	for i := range keys {
		offs[i] = e.pubkey(keys[i][:])
	}
	return e.offsets(start, offs)
}

func (e *encoder) signature(sig []byte) flatbuffers.UOffsetT {
	vec := e.b.CreateByteVector(sig)
	fbs.SignatureStart(e.b)
	fbs.SignatureAddKey(e.b, vec)
	return fbs.SignatureEnd(e.b)
}

func (e *encoder) header(h geyser.MessageHeader) flatbuffers.UOffsetT {
	fbs.MessageHeaderStart(e.b)
	fbs.MessageHeaderAddNumRequiredSignatures(e.b, h.NumRequiredSignatures)
	fbs.MessageHeaderAddNumReadonlySignedAccounts(e.b, h.NumReadonlySignedAccounts)
	fbs.MessageHeaderAddNumReadonlyUnsignedAccounts(e.b, h.NumReadonlyUnsignedAccounts)
	return fbs.MessageHeaderEnd(e.b)
}

func (e *encoder) instructions(start vectorStart, ixs []geyser.CompiledInstruction) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(ixs))
	for i, ix := range ixs {
		accounts := e.b.CreateByteVector(ix.Accounts)
		data := e.b.CreateByteVector(ix.Data)

		fbs.CompiledInstructionStart(e.b)
		fbs.CompiledInstructionAddProgramIdIndex(e.b, ix.ProgramIDIndex)
		fbs.CompiledInstructionAddAccounts(e.b, accounts)
		fbs.CompiledInstructionAddData(e.b, data)
		offs[i] = fbs.CompiledInstructionEnd(e.b)
	}
	return e.offsets(start, offs)
}

func (e *encoder) legacyMessage(m *geyser.LegacyMessage) flatbuffers.UOffsetT {
	header := e.header(m.Header)
	keys := e.pubkeys(fbs.LegacyMessageStartAccountKeysVector, m.AccountKeys)
	blockhash := e.b.CreateByteVector(m.RecentBlockhash[:])
	instructions := e.instructions(fbs.LegacyMessageStartInstructionsVector, m.Instructions)

	fbs.LegacyMessageStart(e.b)
	fbs.LegacyMessageAddHeader(e.b, header)
	fbs.LegacyMessageAddAccountKeys(e.b, keys)
	fbs.LegacyMessageAddRecentBlockhash(e.b, blockhash)
	fbs.LegacyMessageAddInstructions(e.b, instructions)
	return fbs.LegacyMessageEnd(e.b)
}

func (e *encoder) loadedMessageV0(m *geyser.LoadedMessageV0) flatbuffers.UOffsetT {
	lookups := make([]flatbuffers.UOffsetT, len(m.Message.AddressTableLookups))
	for i, l := range m.Message.AddressTableLookups {
		accountKey := e.pubkey(l.AccountKey[:])
		writable := e.b.CreateByteVector(l.WritableIndexes)
		readonly := e.b.CreateByteVector(l.ReadonlyIndexes)

		fbs.MessageAddressTableLookupStart(e.b)
		fbs.MessageAddressTableLookupAddAccountKey(e.b, accountKey)
		fbs.MessageAddressTableLookupAddWritableIndexes(e.b, writable)
		fbs.MessageAddressTableLookupAddReadonlyIndexes(e.b, readonly)
		lookups[i] = fbs.MessageAddressTableLookupEnd(e.b)
	}
	lookupsVec := e.offsets(fbs.MessageV0StartAddressTableLookupsVector, lookups)

	header := e.header(m.Message.Header)
	keys := e.pubkeys(fbs.MessageV0StartAccountKeysVector, m.Message.AccountKeys)
	blockhash := e.b.CreateByteVector(m.Message.RecentBlockhash[:])
	instructions := e.instructions(fbs.MessageV0StartInstructionsVector, m.Message.Instructions)

	fbs.MessageV0Start(e.b)
	fbs.MessageV0AddHeader(e.b, header)
	fbs.MessageV0AddAccountKeys(e.b, keys)
	fbs.MessageV0AddRecentBlockhash(e.b, blockhash)
	fbs.MessageV0AddInstructions(e.b, instructions)
	fbs.MessageV0AddAddressTableLookups(e.b, lookupsVec)
	message := fbs.MessageV0End(e.b)

	writable := e.pubkeys(fbs.LoadedAddressesStartWritableVector, m.LoadedAddresses.Writable)
	readonly := e.pubkeys(fbs.LoadedAddressesStartReadonlyVector, m.LoadedAddresses.Readonly)
	fbs.LoadedAddressesStart(e.b)
	fbs.LoadedAddressesAddWritable(e.b, writable)
	fbs.LoadedAddressesAddReadonly(e.b, readonly)
	loaded := fbs.LoadedAddressesEnd(e.b)

	fbs.LoadedMessageV0Start(e.b)
	fbs.LoadedMessageV0AddMessage(e.b, message)
	fbs.LoadedMessageV0AddLoadedAddresses(e.b, loaded)
	return fbs.LoadedMessageV0End(e.b)
}

func (e *encoder) sanitizedTransaction(tx *geyser.SanitizedTransaction) (flatbuffers.UOffsetT, error) {
	var (
		messageType fbs.SanitizedMessage
		message     flatbuffers.UOffsetT
	)
	switch m := tx.Message.(type) {
	case *geyser.LegacyMessage:
		messageType = fbs.SanitizedMessageLegacy
		message = e.legacyMessage(m)
	case *geyser.LoadedMessageV0:
		messageType = fbs.SanitizedMessageV0
		message = e.loadedMessageV0(m)
	default:
		return 0, fmt.Errorf("serialize transaction: unexpected message %T", tx.Message)
	}

	hash := e.b.CreateByteVector(tx.MessageHash[:])
	sigs := make([]flatbuffers.UOffsetT, len(tx.Signatures))
	for i := range tx.Signatures {
		sigs[i] = e.signature(tx.Signatures[i][:])
	}
	signatures := e.offsets(fbs.SanitizedTransactionStartSignaturesVector, sigs)

	fbs.SanitizedTransactionStart(e.b)
	fbs.SanitizedTransactionAddMessageType(e.b, messageType)
	fbs.SanitizedTransactionAddMessage(e.b, message)
	fbs.SanitizedTransactionAddMessageHash(e.b, hash)
	fbs.SanitizedTransactionAddIsSimpleVoteTx(e.b, tx.IsSimpleVoteTx)
	fbs.SanitizedTransactionAddSignatures(e.b, signatures)
	return fbs.SanitizedTransactionEnd(e.b), nil
}

func (e *encoder) tokenBalances(start vectorStart, balances []geyser.TransactionTokenBalance) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(balances))
	for i, tb := range balances {
		amount := e.b.CreateString(tb.UiTokenAmount.Amount)
		uiAmountString := e.b.CreateString(tb.UiTokenAmount.UiAmountString)
		fbs.UiTokenAmountStart(e.b)
		if tb.UiTokenAmount.UiAmount != nil {
			fbs.UiTokenAmountAddUiAmount(e.b, *tb.UiTokenAmount.UiAmount)
		}
		fbs.UiTokenAmountAddDecimals(e.b, tb.UiTokenAmount.Decimals)
		fbs.UiTokenAmountAddAmount(e.b, amount)
		fbs.UiTokenAmountAddUiAmountString(e.b, uiAmountString)
		uiTokenAmount := fbs.UiTokenAmountEnd(e.b)

		mint := e.b.CreateString(tb.Mint)
		owner := e.b.CreateString(tb.Owner)
		programID := e.b.CreateString(tb.ProgramID)

		fbs.TransactionTokenBalanceStart(e.b)
		fbs.TransactionTokenBalanceAddAccountIndex(e.b, tb.AccountIndex)
		fbs.TransactionTokenBalanceAddMint(e.b, mint)
		fbs.TransactionTokenBalanceAddUiTokenAmount(e.b, uiTokenAmount)
		fbs.TransactionTokenBalanceAddOwner(e.b, owner)
		fbs.TransactionTokenBalanceAddProgramId(e.b, programID)
		offs[i] = fbs.TransactionTokenBalanceEnd(e.b)
	}
	return e.offsets(start, offs)
}

func (e *encoder) rewards(rewards []geyser.Reward) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(rewards))
	for i, r := range rewards {
		pubkey := e.b.CreateString(r.Pubkey)

		fbs.RewardStart(e.b)
		fbs.RewardAddPubkey(e.b, pubkey)
		fbs.RewardAddLamports(e.b, r.Lamports)
		fbs.RewardAddPostBalance(e.b, r.PostBalance)
		fbs.RewardAddRewardType(e.b, fbs.RewardType(r.RewardType))
		if r.Commission != nil {
			fbs.RewardAddCommission(e.b, *r.Commission)
		}
		offs[i] = fbs.RewardEnd(e.b)
	}
	return e.offsets(fbs.TransactionStatusMetaStartRewardsVector, offs)
}

func (e *encoder) transactionError(te *geyser.TransactionError) flatbuffers.UOffsetT {
	kind := e.b.CreateString(te.Kind)
	detail := e.b.CreateString(te.Detail)

	fbs.TransactionErrorStart(e.b)
	fbs.TransactionErrorAddKind(e.b, kind)
	if te.InstructionIndex != nil {
		fbs.TransactionErrorAddInstructionIndex(e.b, *te.InstructionIndex)
	}
	fbs.TransactionErrorAddDetail(e.b, detail)
	return fbs.TransactionErrorEnd(e.b)
}

// statusMeta writes the optional lists only when present so that decoding
// keeps absent and empty apart.
func (e *encoder) statusMeta(m *geyser.TransactionStatusMeta) flatbuffers.UOffsetT {
	var inner, logs, preTokens, postTokens, rewards, txErr flatbuffers.UOffsetT

	if m.InnerInstructions != nil {
		offs := make([]flatbuffers.UOffsetT, len(m.InnerInstructions))
		for i, in := range m.InnerInstructions {
			ixs := e.instructions(fbs.InnerInstructionsStartInstructionsVector, in.Instructions)
			fbs.InnerInstructionsStart(e.b)
			fbs.InnerInstructionsAddIndex(e.b, in.Index)
			fbs.InnerInstructionsAddInstructions(e.b, ixs)
			offs[i] = fbs.InnerInstructionsEnd(e.b)
		}
		inner = e.offsets(fbs.TransactionStatusMetaStartInnerInstructionsVector, offs)
	}
	if m.LogMessages != nil {
		logs = e.strings(fbs.TransactionStatusMetaStartLogMessagesVector, m.LogMessages)
	}
	if m.PreTokenBalances != nil {
		preTokens = e.tokenBalances(fbs.TransactionStatusMetaStartPreTokenBalancesVector, m.PreTokenBalances)
	}
	if m.PostTokenBalances != nil {
		postTokens = e.tokenBalances(fbs.TransactionStatusMetaStartPostTokenBalancesVector, m.PostTokenBalances)
	}
	if m.Rewards != nil {
		rewards = e.rewards(m.Rewards)
	}
	if m.Err != nil {
		txErr = e.transactionError(m.Err)
	}
	pre := e.uint64s(fbs.TransactionStatusMetaStartPreBalancesVector, m.PreBalances)
	post := e.uint64s(fbs.TransactionStatusMetaStartPostBalancesVector, m.PostBalances)

	fbs.TransactionStatusMetaStart(e.b)
	fbs.TransactionStatusMetaAddStatus(e.b, m.IsOk())
	fbs.TransactionStatusMetaAddFee(e.b, m.Fee)
	fbs.TransactionStatusMetaAddPreBalances(e.b, pre)
	fbs.TransactionStatusMetaAddPostBalances(e.b, post)
	if m.InnerInstructions != nil {
		fbs.TransactionStatusMetaAddInnerInstructions(e.b, inner)
	}
	if m.LogMessages != nil {
		fbs.TransactionStatusMetaAddLogMessages(e.b, logs)
	}
	if m.PreTokenBalances != nil {
		fbs.TransactionStatusMetaAddPreTokenBalances(e.b, preTokens)
	}
	if m.PostTokenBalances != nil {
		fbs.TransactionStatusMetaAddPostTokenBalances(e.b, postTokens)
	}
	if m.Rewards != nil {
		fbs.TransactionStatusMetaAddRewards(e.b, rewards)
	}
	if m.Err != nil {
		fbs.TransactionStatusMetaAddErr(e.b, txErr)
	}
	return fbs.TransactionStatusMetaEnd(e.b)
}
