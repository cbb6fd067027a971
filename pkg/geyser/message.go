// Package geyser defines the messages published by the bridge: one payload
// shape per notification kind and the exchange each kind is routed to.
package geyser

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ExchangeType routes a message to one of the five topics.
type ExchangeType uint8

const (
	ExchangeAccount ExchangeType = iota
	ExchangeTransaction
	ExchangeMetadata
	ExchangeNftData
	ExchangeSlot
)

// ExchangeTypes lists every exchange in topic-table order.
var ExchangeTypes = []ExchangeType{
	ExchangeAccount,
	ExchangeTransaction,
	ExchangeMetadata,
	ExchangeNftData,
	ExchangeSlot,
}

func (e ExchangeType) String() string {
	switch e {
	case ExchangeAccount:
		return "account"
	case ExchangeTransaction:
		return "transaction"
	case ExchangeMetadata:
		return "metadata"
	case ExchangeNftData:
		return "nft_data"
	case ExchangeSlot:
		return "slot"
	default:
		return fmt.Sprintf("exchange(%d)", uint8(e))
	}
}

// Message is the closed set of payloads the bridge publishes. The exchange is
// fixed by the payload type, so it is decided when the message is built.
type Message interface {
	Exchange() ExchangeType
	isMessage()
}

// FinalizedSlot signals that a slot has been rooted.
type FinalizedSlot uint64

func (*AccountUpdate) Exchange() ExchangeType         { return ExchangeAccount }
func (*TransactionNotify) Exchange() ExchangeType     { return ExchangeTransaction }
func (*MetadataNotify) Exchange() ExchangeType        { return ExchangeMetadata }
func (*NftOffChainDataNotify) Exchange() ExchangeType { return ExchangeNftData }
func (FinalizedSlot) Exchange() ExchangeType          { return ExchangeSlot }

func (*AccountUpdate) isMessage()         {}
func (*TransactionNotify) isMessage()     {}
func (*MetadataNotify) isMessage()        {}
func (*NftOffChainDataNotify) isMessage() {}
func (FinalizedSlot) isMessage()          {}

// AccountUpdate is one account write.
type AccountUpdate struct {
	Key          solana.PublicKey `json:"key"`
	Lamports     uint64           `json:"lamports"`
	Owner        solana.PublicKey `json:"owner"`
	Executable   bool             `json:"executable"`
	RentEpoch    uint64           `json:"rent_epoch"`
	Data         []byte           `json:"data"`
	WriteVersion uint64           `json:"write_version"`
	Slot         uint64           `json:"slot"`
	IsStartup    bool             `json:"is_startup"`
}

// MetadataNotify carries metadata of a finished block. Rewards are already
// rendered as JSON text by the time the message is built.
type MetadataNotify struct {
	Slot        uint64 `json:"slot"`
	Blockhash   string `json:"blockhash"`
	Rewards     string `json:"rewards"`
	BlockTime   int64  `json:"block_time"`
	BlockHeight uint64 `json:"block_height"`
}

// NftOffChainDataNotify points at the off-chain JSON of a token metadata account.
type NftOffChainDataNotify struct {
	Pubkey    string `json:"pubkey"`
	URI       string `json:"uri"`
	Slot      uint64 `json:"slot"`
	IsStartup bool   `json:"is_startup"`
}

// TransactionNotify is a successfully executed transaction with its status meta.
type TransactionNotify struct {
	Signature       solana.Signature      `json:"signature"`
	IsVote          bool                  `json:"is_vote"`
	Slot            uint64                `json:"slot"`
	Transaction     SanitizedTransaction  `json:"transaction"`
	TransactionMeta TransactionStatusMeta `json:"transaction_meta"`
}
