package flatbuf

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/marko911/geyser-pulse/internal/serializer/flatbuf/fbs"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// ErrMalformed is returned when a buffer is not a valid encoding of the
// requested message.
var ErrMalformed = errors.New("malformed flatbuffer")

// decode guards fn against the out-of-range panics the generated accessors
// raise on truncated or foreign input.
func decode[T any](buf []byte, fn func() (T, error)) (v T, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return v, fmt.Errorf("%w: %d bytes", ErrMalformed, len(buf))
	}
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()
	return fn()
}

func DecodeAccount(buf []byte) (*geyser.AccountUpdate, error) {
	return decode(buf, func() (*geyser.AccountUpdate, error) {
		info := fbs.GetRootAsAccountInfo(buf, 0)

		key, err := pubkey(info.Pubkey(nil))
		if err != nil {
			return nil, fmt.Errorf("account pubkey: %w", err)
		}
		owner, err := pubkey(info.Owner(nil))
		if err != nil {
			return nil, fmt.Errorf("account owner: %w", err)
		}

		return &geyser.AccountUpdate{
			Key:          key,
			Lamports:     info.Lamports(),
			Owner:        owner,
			Executable:   info.Executable(),
			RentEpoch:    info.RentEpoch(),
			Data:         clone(info.DataBytes()),
			WriteVersion: info.WriteVersion(),
			Slot:         info.Slot(),
			IsStartup:    info.IsStartup(),
		}, nil
	})
}

func DecodeMetadata(buf []byte) (*geyser.MetadataNotify, error) {
	return decode(buf, func() (*geyser.MetadataNotify, error) {
		m := fbs.GetRootAsMetadata(buf, 0)
		return &geyser.MetadataNotify{
			Slot:        m.Slot(),
			Blockhash:   string(m.Blockhash()),
			Rewards:     string(m.Rewards()),
			BlockTime:   m.BlockTime(),
			BlockHeight: m.BlockHeight(),
		}, nil
	})
}

func DecodeNftOffChainData(buf []byte) (*geyser.NftOffChainDataNotify, error) {
	return decode(buf, func() (*geyser.NftOffChainDataNotify, error) {
		m := fbs.GetRootAsMetadataOffChain(buf, 0)
		return &geyser.NftOffChainDataNotify{
			Pubkey:    string(m.Pubkey()),
			URI:       string(m.Uri()),
			Slot:      m.Slot(),
			IsStartup: m.IsStartup(),
		}, nil
	})
}

func DecodeFinalizedSlot(buf []byte) (geyser.FinalizedSlot, error) {
	return decode(buf, func() (geyser.FinalizedSlot, error) {
		return geyser.FinalizedSlot(fbs.GetRootAsFinalizedSlot(buf, 0).Slot()), nil
	})
}

func DecodeTransaction(buf []byte) (*geyser.TransactionNotify, error) {
	return decode(buf, func() (*geyser.TransactionNotify, error) {
		info := fbs.GetRootAsTransactionInfo(buf, 0)

		sig := info.Signature(nil)
		if sig == nil {
			return nil, fmt.Errorf("%w: missing signature", ErrMalformed)
		}
		signature, err := signatureFrom(sig.KeyBytes())
		if err != nil {
			return nil, err
		}

		fbTx := info.Transaction(nil)
		if fbTx == nil {
			return nil, fmt.Errorf("%w: missing transaction", ErrMalformed)
		}
		tx, err := sanitizedTransaction(fbTx)
		if err != nil {
			return nil, err
		}

		fbMeta := info.TransactionMeta(nil)
		if fbMeta == nil {
			return nil, fmt.Errorf("%w: missing transaction meta", ErrMalformed)
		}

		return &geyser.TransactionNotify{
			Signature:       signature,
			IsVote:          info.IsVote(),
			Slot:            info.Slot(),
			Transaction:     tx,
			TransactionMeta: statusMeta(fbMeta),
		}, nil
	})
}

// present reports whether field number slot was written.
func present(tab flatbuffers.Table, slot int) bool {
	return tab.Offset(flatbuffers.VOffsetT(4+2*slot)) != 0
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}

func pubkey(p *fbs.Pubkey) (solana.PublicKey, error) {
	if p == nil {
		return solana.PublicKey{}, fmt.Errorf("%w: missing pubkey", ErrMalformed)
	}
	b := p.KeyBytes()
	if len(b) != solana.PublicKeyLength {
		return solana.PublicKey{}, fmt.Errorf("%w: pubkey of %d bytes", ErrMalformed, len(b))
	}
	return solana.PublicKeyFromBytes(b), nil
}

func signatureFrom(b []byte) (solana.Signature, error) {
	var sig solana.Signature
	if len(b) != len(sig) {
		return sig, fmt.Errorf("%w: signature of %d bytes", ErrMalformed, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

func hashFrom(b []byte) (solana.Hash, error) {
	var h solana.Hash
	if len(b) != len(h) {
		return h, fmt.Errorf("%w: hash of %d bytes", ErrMalformed, len(b))
	}
	copy(h[:], b)
	return h, nil
}

func pubkeys(n int, at func(*fbs.Pubkey, int) bool) ([]solana.PublicKey, error) {
	if n == 0 {
		return nil, nil
	}
	keys := make([]solana.PublicKey, n)
	var p fbs.Pubkey
	for i := range keys {
		at(&p, i)
		key, err := pubkey(&p)
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

func header(h *fbs.MessageHeader) geyser.MessageHeader {
	if h == nil {
		return geyser.MessageHeader{}
	}
	return geyser.MessageHeader{
		NumRequiredSignatures:       h.NumRequiredSignatures(),
		NumReadonlySignedAccounts:   h.NumReadonlySignedAccounts(),
		NumReadonlyUnsignedAccounts: h.NumReadonlyUnsignedAccounts(),
	}
}

func instructions(n int, at func(*fbs.CompiledInstruction, int) bool) []geyser.CompiledInstruction {
	if n == 0 {
		return nil
	}
	ixs := make([]geyser.CompiledInstruction, n)
	var ix fbs.CompiledInstruction
	for i := range ixs {
		at(&ix, i)
		ixs[i] = geyser.CompiledInstruction{
			ProgramIDIndex: ix.ProgramIdIndex(),
			Accounts:       clone(ix.AccountsBytes()),
			Data:           clone(ix.DataBytes()),
		}
	}
	return ixs
}

func legacyMessage(m *fbs.LegacyMessage) (*geyser.LegacyMessage, error) {
	keys, err := pubkeys(m.AccountKeysLength(), m.AccountKeys)
	if err != nil {
		return nil, fmt.Errorf("legacy account keys: %w", err)
	}
	blockhash, err := hashFrom(m.RecentBlockhashBytes())
	if err != nil {
		return nil, err
	}
	return &geyser.LegacyMessage{
		Header:          header(m.Header(nil)),
		AccountKeys:     keys,
		RecentBlockhash: blockhash,
		Instructions:    instructions(m.InstructionsLength(), m.Instructions),
	}, nil
}

func loadedMessageV0(m *fbs.LoadedMessageV0) (*geyser.LoadedMessageV0, error) {
	msg := m.Message(nil)
	if msg == nil {
		return nil, fmt.Errorf("%w: missing v0 message", ErrMalformed)
	}

	keys, err := pubkeys(msg.AccountKeysLength(), msg.AccountKeys)
	if err != nil {
		return nil, fmt.Errorf("v0 account keys: %w", err)
	}
	blockhash, err := hashFrom(msg.RecentBlockhashBytes())
	if err != nil {
		return nil, err
	}

	var lookups []geyser.MessageAddressTableLookup
	if n := msg.AddressTableLookupsLength(); n > 0 {
		lookups = make([]geyser.MessageAddressTableLookup, n)
		var l fbs.MessageAddressTableLookup
		for i := range lookups {
			msg.AddressTableLookups(&l, i)
			key, err := pubkey(l.AccountKey(nil))
			if err != nil {
				return nil, fmt.Errorf("address table lookup: %w", err)
			}
			lookups[i] = geyser.MessageAddressTableLookup{
				AccountKey:      key,
				WritableIndexes: clone(l.WritableIndexesBytes()),
				ReadonlyIndexes: clone(l.ReadonlyIndexesBytes()),
			}
		}
	}

	out := &geyser.LoadedMessageV0{
		Message: geyser.MessageV0{
			Header:              header(msg.Header(nil)),
			AccountKeys:         keys,
			RecentBlockhash:     blockhash,
			Instructions:        instructions(msg.InstructionsLength(), msg.Instructions),
			AddressTableLookups: lookups,
		},
	}

	if loaded := m.LoadedAddresses(nil); loaded != nil {
		if out.LoadedAddresses.Writable, err = pubkeys(loaded.WritableLength(), loaded.Writable); err != nil {
			return nil, fmt.Errorf("loaded writable: %w", err)
		}
		if out.LoadedAddresses.Readonly, err = pubkeys(loaded.ReadonlyLength(), loaded.Readonly); err != nil {
			return nil, fmt.Errorf("loaded readonly: %w", err)
		}
	}
	return out, nil
}

func sanitizedTransaction(t *fbs.SanitizedTransaction) (geyser.SanitizedTransaction, error) {
	var tx geyser.SanitizedTransaction

	var union flatbuffers.Table
	if !t.Message(&union) {
		return tx, fmt.Errorf("%w: missing sanitized message", ErrMalformed)
	}
	switch t.MessageType() {
	case fbs.SanitizedMessageLegacy:
		var m fbs.LegacyMessage
		m.Init(union.Bytes, union.Pos)
		msg, err := legacyMessage(&m)
		if err != nil {
			return tx, err
		}
		tx.Message = msg
	case fbs.SanitizedMessageV0:
		var m fbs.LoadedMessageV0
		m.Init(union.Bytes, union.Pos)
		msg, err := loadedMessageV0(&m)
		if err != nil {
			return tx, err
		}
		tx.Message = msg
	default:
		return tx, fmt.Errorf("%w: sanitized message type %s", ErrMalformed, t.MessageType())
	}

	hash, err := hashFrom(t.MessageHashBytes())
	if err != nil {
		return tx, err
	}
	tx.MessageHash = hash
	tx.IsSimpleVoteTx = t.IsSimpleVoteTx()

	if n := t.SignaturesLength(); n > 0 {
		tx.Signatures = make([]solana.Signature, n)
		var s fbs.Signature
		for i := range tx.Signatures {
			t.Signatures(&s, i)
			if tx.Signatures[i], err = signatureFrom(s.KeyBytes()); err != nil {
				return tx, err
			}
		}
	}
	return tx, nil
}

func tokenBalances(n int, at func(*fbs.TransactionTokenBalance, int) bool) []geyser.TransactionTokenBalance {
	out := make([]geyser.TransactionTokenBalance, n)
	var tb fbs.TransactionTokenBalance
	for i := range out {
		at(&tb, i)
		out[i] = geyser.TransactionTokenBalance{
			AccountIndex: tb.AccountIndex(),
			Mint:         string(tb.Mint()),
			Owner:        string(tb.Owner()),
			ProgramID:    string(tb.ProgramId()),
		}
		if amount := tb.UiTokenAmount(nil); amount != nil {
			out[i].UiTokenAmount = geyser.UiTokenAmount{
				UiAmount:       amount.UiAmount(),
				Decimals:       amount.Decimals(),
				Amount:         string(amount.Amount()),
				UiAmountString: string(amount.UiAmountString()),
			}
		}
	}
	return out
}

func statusMeta(m *fbs.TransactionStatusMeta) geyser.TransactionStatusMeta {
	tab := m.Table()
	meta := geyser.TransactionStatusMeta{
		Fee: m.Fee(),
	}

	if n := m.PreBalancesLength(); n > 0 {
		meta.PreBalances = make([]uint64, n)
		for i := range meta.PreBalances {
			meta.PreBalances[i] = m.PreBalances(i)
		}
	}
	if n := m.PostBalancesLength(); n > 0 {
		meta.PostBalances = make([]uint64, n)
		for i := range meta.PostBalances {
			meta.PostBalances[i] = m.PostBalances(i)
		}
	}

	if present(tab, 4) {
		meta.InnerInstructions = make([]geyser.InnerInstructions, m.InnerInstructionsLength())
		var in fbs.InnerInstructions
		for i := range meta.InnerInstructions {
			m.InnerInstructions(&in, i)
			meta.InnerInstructions[i] = geyser.InnerInstructions{
				Index:        in.Index(),
				Instructions: instructions(in.InstructionsLength(), in.Instructions),
			}
		}
	}
	if present(tab, 5) {
		meta.LogMessages = make([]string, m.LogMessagesLength())
		for i := range meta.LogMessages {
			meta.LogMessages[i] = string(m.LogMessages(i))
		}
	}
	if present(tab, 6) {
		meta.PreTokenBalances = tokenBalances(m.PreTokenBalancesLength(), m.PreTokenBalances)
	}
	if present(tab, 7) {
		meta.PostTokenBalances = tokenBalances(m.PostTokenBalancesLength(), m.PostTokenBalances)
	}
	if present(tab, 8) {
		meta.Rewards = make([]geyser.Reward, m.RewardsLength())
		var r fbs.Reward
		for i := range meta.Rewards {
			m.Rewards(&r, i)
			meta.Rewards[i] = geyser.Reward{
				Pubkey:      string(r.Pubkey()),
				Lamports:    r.Lamports(),
				PostBalance: r.PostBalance(),
				RewardType:  geyser.RewardType(r.RewardType()),
				Commission:  r.Commission(),
			}
		}
	}

	if te := m.Err(nil); te != nil {
		meta.Err = &geyser.TransactionError{
			Kind:             string(te.Kind()),
			InstructionIndex: te.InstructionIndex(),
			Detail:           string(te.Detail()),
		}
	} else if !m.Status() {
		meta.Err = &geyser.TransactionError{Kind: "Unknown"}
	}
	return meta
}
