// Package host describes the notification shapes a validator hands to the
// plugin and the errors the plugin reports back.
package host

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// ReplicaAccountInfo is an account write as the host delivers it. Keys are
// raw byte slices and are validated when a message is built from them.
type ReplicaAccountInfo struct {
	Pubkey       []byte
	Lamports     uint64
	Owner        []byte
	Executable   bool
	RentEpoch    uint64
	Data         []byte
	WriteVersion uint64
}

// ReplicaAccountInfoV2 additionally carries the signature of the transaction
// that caused the write, when there is one.
type ReplicaAccountInfoV2 struct {
	ReplicaAccountInfo
	TxnSignature *solana.Signature
}

// ReplicaAccountInfoVersions is implemented by every account info version.
type ReplicaAccountInfoVersions interface {
	Account() *ReplicaAccountInfo
}

func (a *ReplicaAccountInfo) Account() *ReplicaAccountInfo { return a }

// SlotStatus is the commitment state reported for a slot.
type SlotStatus int

const (
	SlotProcessed SlotStatus = iota
	SlotConfirmed
	SlotRooted
)

func (s SlotStatus) String() string {
	switch s {
	case SlotProcessed:
		return "processed"
	case SlotConfirmed:
		return "confirmed"
	case SlotRooted:
		return "rooted"
	default:
		return "unknown"
	}
}

// ParseSlotStatus is the inverse of SlotStatus.String.
func ParseSlotStatus(s string) (SlotStatus, error) {
	switch s {
	case "processed":
		return SlotProcessed, nil
	case "confirmed":
		return SlotConfirmed, nil
	case "rooted":
		return SlotRooted, nil
	default:
		return 0, fmt.Errorf("unknown slot status %q", s)
	}
}

type ReplicaTransactionInfo struct {
	Signature             solana.Signature
	IsVote                bool
	Transaction           geyser.SanitizedTransaction
	TransactionStatusMeta geyser.TransactionStatusMeta
}

// ReplicaTransactionInfoV2 adds the transaction's position within its block.
type ReplicaTransactionInfoV2 struct {
	ReplicaTransactionInfo
	Index uint64
}

type ReplicaTransactionInfoVersions interface {
	TransactionInfo() *ReplicaTransactionInfo
}

func (t *ReplicaTransactionInfo) TransactionInfo() *ReplicaTransactionInfo { return t }

// ReplicaBlockInfo is block metadata. BlockTime and BlockHeight are nil when
// the host has not computed them.
type ReplicaBlockInfo struct {
	Slot        uint64
	Blockhash   string
	Rewards     []geyser.Reward
	BlockTime   *int64
	BlockHeight *uint64
}

// ReplicaBlockInfoV2 adds the parent block and the executed transaction count.
type ReplicaBlockInfoV2 struct {
	ReplicaBlockInfo
	ParentSlot               uint64
	ParentBlockhash          string
	ExecutedTransactionCount uint64
}

type ReplicaBlockInfoVersions interface {
	BlockInfo() *ReplicaBlockInfo
}

func (b *ReplicaBlockInfo) BlockInfo() *ReplicaBlockInfo { return b }
