// Package synthetic generates random host notifications at a fixed rate for
// load testing the dispatch path.
package synthetic

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/marko911/geyser-pulse/internal/adapter"
	"github.com/marko911/geyser-pulse/internal/host"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

type Config struct {
	// Rate is notifications per second outside bursts.
	Rate int
	// Duration bounds the run; zero runs until ctx is done or Limit is hit.
	Duration time.Duration
	// Limit stops after this many notifications; zero is unlimited.
	Limit int

	BurstMode   bool
	BurstRatio  float64
	BurstPeriod time.Duration

	// Owners are picked for account writes; a random owner is used when empty.
	Owners []solana.PublicKey
	// Programs are invoked by generated transactions.
	Programs []solana.PublicKey

	// SlotEvery advances the slot, emitting block metadata and a rooted slot,
	// every this many notifications.
	SlotEvery int
	StartSlot uint64
	Seed      int64
}

// Source implements adapter.Source with generated notifications.
type Source struct {
	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger

	slot         uint64
	writeVersion uint64
	emitted      int
}

func NewSource(cfg Config, logger *slog.Logger) (*Source, error) {
	if cfg.Rate <= 0 {
		return nil, errors.New("synthetic source rate must be positive")
	}
	if cfg.SlotEvery <= 0 {
		cfg.SlotEvery = 100
	}
	if cfg.BurstRatio < 1 {
		cfg.BurstRatio = 1
	}
	if cfg.BurstPeriod <= 0 {
		cfg.BurstPeriod = 30 * time.Second
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger.With("source", "synthetic"),
		slot:   cfg.StartSlot,
	}, nil
}

func (s *Source) Name() string {
	return "synthetic"
}

// Stream emits notifications until Duration or Limit is reached.
func (s *Source) Stream(ctx context.Context, notifications chan<- adapter.Notification) error {
	s.logger.Info("starting synthetic stream",
		"rate", s.cfg.Rate,
		"duration", s.cfg.Duration,
		"limit", s.cfg.Limit,
		"burst_mode", s.cfg.BurstMode,
	)

	var deadline <-chan time.Time
	if s.cfg.Duration > 0 {
		timer := time.NewTimer(s.cfg.Duration)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.Rate))
	defer ticker.Stop()

	burstTicker := time.NewTicker(s.cfg.BurstPeriod)
	defer burstTicker.Stop()

	inBurst := false
	var burstEnd time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-deadline:
			s.logger.Info("synthetic stream completed", "emitted", s.emitted)
			return nil

		case <-burstTicker.C:
			if s.cfg.BurstMode && !inBurst {
				inBurst = true
				burstEnd = time.Now().Add(5 * time.Second)
				s.logger.Info("burst started", "ratio", s.cfg.BurstRatio)
			}

		case <-ticker.C:
			if inBurst && time.Now().After(burstEnd) {
				inBurst = false
				s.logger.Info("burst ended")
			}

			count := 1
			if inBurst {
				count = int(s.cfg.BurstRatio)
			}

			for range count {
				for _, n := range s.next() {
					if s.cfg.Limit > 0 && s.emitted >= s.cfg.Limit {
						s.logger.Info("synthetic stream completed", "emitted", s.emitted)
						return nil
					}
					select {
					case <-ctx.Done():
						return ctx.Err()
					case notifications <- n:
						s.emitted++
					}
				}
			}
		}
	}
}

// next returns the notifications for one generation step: a slot boundary
// yields block metadata and the rooted slot, otherwise one account write or
// transaction.
func (s *Source) next() []adapter.Notification {
	if s.emitted > 0 && s.emitted%s.cfg.SlotEvery == 0 {
		return s.advanceSlot()
	}
	if len(s.cfg.Programs) > 0 && s.rng.Intn(4) == 0 {
		return []adapter.Notification{s.transaction()}
	}
	return []adapter.Notification{s.account()}
}

func (s *Source) advanceSlot() []adapter.Notification {
	rooted := s.slot
	s.slot++

	var parent *uint64
	if rooted > 0 {
		p := rooted - 1
		parent = &p
	}

	blockTime := time.Now().Unix()
	height := rooted
	return []adapter.Notification{
		{
			Kind: adapter.KindBlock,
			Slot: rooted,
			Block: &host.ReplicaBlockInfo{
				Slot:        rooted,
				Blockhash:   s.randomKey().String(),
				Rewards:     []geyser.Reward{},
				BlockTime:   &blockTime,
				BlockHeight: &height,
			},
		},
		{Kind: adapter.KindSlot, Slot: rooted, Parent: parent, Status: host.SlotRooted},
	}
}

func (s *Source) account() adapter.Notification {
	owner := s.randomKey()
	if len(s.cfg.Owners) > 0 {
		owner = s.cfg.Owners[s.rng.Intn(len(s.cfg.Owners))]
	}

	data := make([]byte, 32+s.rng.Intn(200))
	s.rng.Read(data)
	s.writeVersion++

	key := s.randomKey()
	return adapter.Notification{
		Kind: adapter.KindAccount,
		Slot: s.slot,
		Account: &host.ReplicaAccountInfo{
			Pubkey:       key[:],
			Lamports:     uint64(1 + s.rng.Int63n(1e12)),
			Owner:        owner[:],
			RentEpoch:    361,
			Data:         data,
			WriteVersion: s.writeVersion,
		},
	}
}

func (s *Source) transaction() adapter.Notification {
	payer := s.randomKey()
	program := s.cfg.Programs[s.rng.Intn(len(s.cfg.Programs))]

	var sig solana.Signature
	s.rng.Read(sig[:])

	fee := uint64(5000)
	balance := uint64(1e9 + s.rng.Int63n(1e9))
	return adapter.Notification{
		Kind: adapter.KindTransaction,
		Slot: s.slot,
		Transaction: &host.ReplicaTransactionInfo{
			Signature: sig,
			Transaction: geyser.SanitizedTransaction{
				Message: &geyser.LegacyMessage{
					Header:          geyser.MessageHeader{NumRequiredSignatures: 1, NumReadonlyUnsignedAccounts: 1},
					AccountKeys:     []solana.PublicKey{payer, program},
					RecentBlockhash: solana.Hash(s.randomKey()),
					Instructions: []geyser.CompiledInstruction{
						{ProgramIDIndex: 1, Accounts: []byte{0}, Data: []byte{byte(s.rng.Intn(256))}},
					},
				},
				MessageHash: solana.Hash(s.randomKey()),
				Signatures:  []solana.Signature{sig},
			},
			TransactionStatusMeta: geyser.TransactionStatusMeta{
				Fee:          fee,
				PreBalances:  []uint64{balance, 1},
				PostBalances: []uint64{balance - fee, 1},
				LogMessages:  []string{"Program " + program.String() + " invoke [1]"},
			},
		},
	}
}

func (s *Source) randomKey() solana.PublicKey {
	var key solana.PublicKey
	s.rng.Read(key[:])
	return key
}

// Ensure Source implements adapter.Source.
var _ adapter.Source = (*Source)(nil)
