package geyser

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// MessageHeader describes how the account keys of a message are partitioned.
type MessageHeader struct {
	NumRequiredSignatures       uint8 `json:"num_required_signatures"`
	NumReadonlySignedAccounts   uint8 `json:"num_readonly_signed_accounts"`
	NumReadonlyUnsignedAccounts uint8 `json:"num_readonly_unsigned_accounts"`
}

// CompiledInstruction references its program and accounts by index into the
// message account keys.
type CompiledInstruction struct {
	ProgramIDIndex uint8  `json:"program_id_index"`
	Accounts       []byte `json:"accounts"`
	Data           []byte `json:"data"`
}

// MessageAddressTableLookup selects keys from an on-chain address lookup table.
type MessageAddressTableLookup struct {
	AccountKey      solana.PublicKey `json:"account_key"`
	WritableIndexes []byte           `json:"writable_indexes"`
	ReadonlyIndexes []byte           `json:"readonly_indexes"`
}

// SanitizedMessage is either a *LegacyMessage or a *LoadedMessageV0.
type SanitizedMessage interface {
	// Keys returns every key the message can reference, including keys
	// loaded from lookup tables.
	Keys() []solana.PublicKey
	isSanitizedMessage()
}

type LegacyMessage struct {
	Header          MessageHeader         `json:"header"`
	AccountKeys     []solana.PublicKey    `json:"account_keys"`
	RecentBlockhash solana.Hash           `json:"recent_blockhash"`
	Instructions    []CompiledInstruction `json:"instructions"`
}

type MessageV0 struct {
	Header              MessageHeader               `json:"header"`
	AccountKeys         []solana.PublicKey          `json:"account_keys"`
	RecentBlockhash     solana.Hash                 `json:"recent_blockhash"`
	Instructions        []CompiledInstruction       `json:"instructions"`
	AddressTableLookups []MessageAddressTableLookup `json:"address_table_lookups"`
}

// LoadedAddresses are the lookup-table keys the host resolved for a V0 message.
type LoadedAddresses struct {
	Writable []solana.PublicKey `json:"writable"`
	Readonly []solana.PublicKey `json:"readonly"`
}

type LoadedMessageV0 struct {
	Message         MessageV0       `json:"message"`
	LoadedAddresses LoadedAddresses `json:"loaded_addresses"`
}

func (m *LegacyMessage) Keys() []solana.PublicKey { return m.AccountKeys }

func (m *LoadedMessageV0) Keys() []solana.PublicKey {
	keys := make([]solana.PublicKey, 0,
		len(m.Message.AccountKeys)+len(m.LoadedAddresses.Writable)+len(m.LoadedAddresses.Readonly))
	keys = append(keys, m.Message.AccountKeys...)
	keys = append(keys, m.LoadedAddresses.Writable...)
	keys = append(keys, m.LoadedAddresses.Readonly...)
	return keys
}

func (*LegacyMessage) isSanitizedMessage()   {}
func (*LoadedMessageV0) isSanitizedMessage() {}

type SanitizedTransaction struct {
	Message        SanitizedMessage   `json:"message"`
	MessageHash    solana.Hash        `json:"message_hash"`
	IsSimpleVoteTx bool               `json:"is_simple_vote_tx"`
	Signatures     []solana.Signature `json:"signatures"`
}

// InnerInstructions groups the instructions invoked by the top-level
// instruction at Index.
type InnerInstructions struct {
	Index        uint8                 `json:"index"`
	Instructions []CompiledInstruction `json:"instructions"`
}

type UiTokenAmount struct {
	UiAmount       *float64 `json:"uiAmount"`
	Decimals       uint8    `json:"decimals"`
	Amount         string   `json:"amount"`
	UiAmountString string   `json:"uiAmountString"`
}

type TransactionTokenBalance struct {
	AccountIndex  uint8         `json:"accountIndex"`
	Mint          string        `json:"mint"`
	UiTokenAmount UiTokenAmount `json:"uiTokenAmount"`
	Owner         string        `json:"owner"`
	ProgramID     string        `json:"programId"`
}

// TransactionError describes why a transaction failed. InstructionIndex is set
// when a specific instruction failed; Detail then names the instruction error.
type TransactionError struct {
	Kind             string `json:"kind"`
	InstructionIndex *uint8 `json:"instruction_index,omitempty"`
	Detail           string `json:"detail,omitempty"`
}

func (e *TransactionError) Error() string {
	switch {
	case e.InstructionIndex != nil:
		return fmt.Sprintf("%s(%d, %s)", e.Kind, *e.InstructionIndex, e.Detail)
	case e.Detail != "":
		return fmt.Sprintf("%s(%s)", e.Kind, e.Detail)
	default:
		return e.Kind
	}
}

// TransactionStatusMeta is the execution result of a transaction. Nil optional
// lists mean the host did not record them.
type TransactionStatusMeta struct {
	Err               *TransactionError         `json:"err"`
	Fee               uint64                    `json:"fee"`
	PreBalances       []uint64                  `json:"pre_balances"`
	PostBalances      []uint64                  `json:"post_balances"`
	InnerInstructions []InnerInstructions       `json:"inner_instructions"`
	LogMessages       []string                  `json:"log_messages"`
	PreTokenBalances  []TransactionTokenBalance `json:"pre_token_balances"`
	PostTokenBalances []TransactionTokenBalance `json:"post_token_balances"`
	Rewards           []Reward                  `json:"rewards"`
}

// IsOk reports whether the transaction executed successfully.
func (m *TransactionStatusMeta) IsOk() bool {
	return m.Err == nil
}
