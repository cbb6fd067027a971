package plugin

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/marko911/geyser-pulse/internal/host"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// UpdateAccount forwards a selected account write, plus its off-chain
// metadata pointer when extraction is enabled.
func (p *Plugin) UpdateAccount(info host.ReplicaAccountInfoVersions, slot uint64, isStartup bool) error {
	return p.with(host.KindAccountsUpdate, func(in *inner) error {
		if !in.accounts.IsSelected(info, isStartup) {
			return nil
		}

		acct := info.Account()
		key, err := publicKey("pubkey", acct.Pubkey)
		if err != nil {
			return err
		}
		owner, err := publicKey("owner", acct.Owner)
		if err != nil {
			return err
		}

		in.spawn(&geyser.AccountUpdate{
			Key:          key,
			Lamports:     acct.Lamports,
			Owner:        owner,
			Executable:   acct.Executable,
			RentEpoch:    acct.RentEpoch,
			Data:         bytes.Clone(acct.Data),
			WriteVersion: acct.WriteVersion,
			Slot:         slot,
			IsStartup:    isStartup,
		})

		if !in.accounts.WithOffchain() || !owner.Equals(MetadataProgramID) {
			return nil
		}
		if uri, ok := MetadataURI(acct.Data); ok {
			in.spawn(&geyser.NftOffChainDataNotify{
				Pubkey:    key.String(),
				URI:       uri,
				Slot:      slot,
				IsStartup: isStartup,
			})
		}
		return nil
	})
}

// UpdateSlotStatus publishes rooted slots. Other statuses are ignored.
func (p *Plugin) UpdateSlotStatus(slot uint64, parent *uint64, status host.SlotStatus) error {
	return p.with(host.KindSlotStatusUpdate, func(in *inner) error {
		if status == host.SlotRooted {
			in.spawn(geyser.FinalizedSlot(slot))
		}
		return nil
	})
}

// NotifyTransaction forwards successful transactions touching an allowlisted
// program. Failed transactions are never published.
func (p *Plugin) NotifyTransaction(info host.ReplicaTransactionInfoVersions, slot uint64) error {
	return p.with(host.KindCustom, func(in *inner) error {
		tx := info.TransactionInfo()
		if !tx.TransactionStatusMeta.IsOk() {
			return nil
		}

		msg := tx.Transaction.Message
		if msg == nil || !in.transactions.IsSelectedInRange(msg.Keys()) {
			return nil
		}

		in.spawn(&geyser.TransactionNotify{
			Signature:       tx.Signature,
			IsVote:          tx.IsVote,
			Slot:            slot,
			Transaction:     tx.Transaction,
			TransactionMeta: tx.TransactionStatusMeta,
		})
		return nil
	})
}

// NotifyBlockMetadata publishes block metadata. A block time or height the
// host has not computed yet is sent as zero.
func (p *Plugin) NotifyBlockMetadata(info host.ReplicaBlockInfoVersions) error {
	return p.with(host.KindCustom, func(in *inner) error {
		block := info.BlockInfo()

		rewards := block.Rewards
		if rewards == nil {
			rewards = []geyser.Reward{}
		}
		encoded, err := json.Marshal(rewards)
		if err != nil {
			return fmt.Errorf("encode block rewards: %w", err)
		}

		var blockTime int64
		if block.BlockTime != nil {
			blockTime = *block.BlockTime
		} else {
			in.logger.Warn("block time missing, defaulting to 0", "slot", block.Slot)
		}

		var blockHeight uint64
		if block.BlockHeight != nil {
			blockHeight = *block.BlockHeight
		} else {
			in.logger.Warn("block height missing, defaulting to 0", "slot", block.Slot)
		}

		in.spawn(&geyser.MetadataNotify{
			Slot:        block.Slot,
			Blockhash:   block.Blockhash,
			Rewards:     string(encoded),
			BlockTime:   blockTime,
			BlockHeight: blockHeight,
		})
		return nil
	})
}

func publicKey(field string, b []byte) (solana.PublicKey, error) {
	if len(b) != solana.PublicKeyLength {
		return solana.PublicKey{}, fmt.Errorf("account %s: expected %d bytes, got %d", field, solana.PublicKeyLength, len(b))
	}
	return solana.PublicKey(b), nil
}
