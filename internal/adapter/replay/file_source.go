// Package replay provides a FileSource implementation for replaying
// recorded host notifications during testing and development.
package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/marko911/geyser-pulse/internal/adapter"
	"github.com/marko911/geyser-pulse/internal/host"
	"github.com/marko911/geyser-pulse/pkg/geyser"
)

// Fixture is one recorded file. Data holds a list of notifications of Type.
type Fixture struct {
	Type       adapter.Kind    `json:"type"`
	RecordedAt time.Time       `json:"recorded_at"`
	Data       json.RawMessage `json:"data"`
}

// AccountFixture is a recorded account write. Data is base64.
type AccountFixture struct {
	Pubkey       solana.PublicKey  `json:"pubkey"`
	Lamports     uint64            `json:"lamports"`
	Owner        solana.PublicKey  `json:"owner"`
	Executable   bool              `json:"executable"`
	RentEpoch    uint64            `json:"rent_epoch"`
	Data         []byte            `json:"data"`
	WriteVersion uint64            `json:"write_version"`
	Slot         uint64            `json:"slot"`
	IsStartup    bool              `json:"is_startup"`
	TxnSignature *solana.Signature `json:"txn_signature,omitempty"`
}

// TransactionFixture is a recorded transaction in the model JSON shape.
// Index selects the versioned host form.
type TransactionFixture struct {
	geyser.TransactionNotify
	Index *uint64 `json:"index,omitempty"`
}

type BlockFixture struct {
	Slot        uint64          `json:"slot"`
	Blockhash   string          `json:"blockhash"`
	Rewards     []geyser.Reward `json:"rewards"`
	BlockTime   *int64          `json:"block_time"`
	BlockHeight *uint64         `json:"block_height"`

	ParentSlot               *uint64 `json:"parent_slot,omitempty"`
	ParentBlockhash          string  `json:"parent_blockhash,omitempty"`
	ExecutedTransactionCount uint64  `json:"executed_transaction_count,omitempty"`
}

type SlotFixture struct {
	Slot   uint64  `json:"slot"`
	Parent *uint64 `json:"parent"`
	Status string  `json:"status"`
}

// FileSourceConfig holds configuration for FileSource.
type FileSourceConfig struct {
	// Path to fixtures directory
	FixturesDir string

	// Whether to loop continuously
	Loop bool

	// Playback speed (0 = instant, 1.0 = realtime based on recorded_at)
	PlaybackSpeed float64
}

// FileSource implements adapter.Source by streaming notifications from
// fixture files.
type FileSource struct {
	cfg    FileSourceConfig
	logger *slog.Logger
}

// NewFileSource creates a new FileSource for replaying fixtures.
func NewFileSource(cfg FileSourceConfig, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		cfg:    cfg,
		logger: logger.With("source", "file"),
	}
}

func (s *FileSource) Name() string {
	return "file"
}

// Stream reads fixture files in filename order and sends their
// notifications. Files that fail to parse are skipped with a warning.
// The channel is NOT closed by Stream - caller is responsible for cleanup.
func (s *FileSource) Stream(ctx context.Context, notifications chan<- adapter.Notification) error {
	s.logger.Info("starting file source stream",
		"fixtures_dir", s.cfg.FixturesDir,
		"loop", s.cfg.Loop,
		"playback_speed", s.cfg.PlaybackSpeed,
	)

	for {
		files, err := s.findFixtureFiles()
		if err != nil {
			return fmt.Errorf("find fixture files: %w", err)
		}

		if len(files) == 0 {
			s.logger.Warn("no fixture files found", "dir", s.cfg.FixturesDir)
			return nil
		}

		s.logger.Info("found fixture files", "count", len(files))

		var last time.Time
		for _, file := range files {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			batch, recordedAt, err := LoadFile(file)
			if err != nil {
				s.logger.Warn("failed to load fixture", "file", file, "error", err)
				continue
			}

			if s.cfg.PlaybackSpeed > 0 && !last.IsZero() && recordedAt.After(last) {
				delay := time.Duration(float64(recordedAt.Sub(last)) / s.cfg.PlaybackSpeed)
				if delay > 0 && delay < 60*time.Second {
					s.logger.Debug("playback delay", "delay", delay)
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(delay):
					}
				}
			}
			last = recordedAt

			for _, n := range batch {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case notifications <- n:
				}
			}
		}

		if !s.cfg.Loop {
			break
		}

		s.logger.Info("looping fixtures")
	}

	s.logger.Info("file source stream completed")
	return nil
}

// findFixtureFiles returns the sorted .json files under the fixtures dir.
func (s *FileSource) findFixtureFiles() ([]string, error) {
	var files []string

	err := filepath.Walk(s.cfg.FixturesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// LoadFile parses one fixture file into notifications.
func LoadFile(path string) ([]adapter.Notification, time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, err
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, time.Time{}, fmt.Errorf("parse fixture: %w", err)
	}

	notifications, err := parseFixture(fixture)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse %s fixture: %w", fixture.Type, err)
	}
	return notifications, fixture.RecordedAt, nil
}

func parseFixture(fixture Fixture) ([]adapter.Notification, error) {
	switch fixture.Type {
	case adapter.KindAccount:
		return parseList(fixture.Data, accountNotification)
	case adapter.KindTransaction:
		return parseList(fixture.Data, transactionNotification)
	case adapter.KindBlock:
		return parseList(fixture.Data, blockNotification)
	case adapter.KindSlot:
		return parseList(fixture.Data, slotNotification)
	default:
		return nil, fmt.Errorf("unsupported fixture type %q", fixture.Type)
	}
}

func parseList[T any](raw json.RawMessage, convert func(T) (adapter.Notification, error)) ([]adapter.Notification, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	out := make([]adapter.Notification, 0, len(items))
	for i, item := range items {
		n, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func accountNotification(f AccountFixture) (adapter.Notification, error) {
	info := host.ReplicaAccountInfo{
		Pubkey:       f.Pubkey.Bytes(),
		Lamports:     f.Lamports,
		Owner:        f.Owner.Bytes(),
		Executable:   f.Executable,
		RentEpoch:    f.RentEpoch,
		Data:         f.Data,
		WriteVersion: f.WriteVersion,
	}

	var versioned host.ReplicaAccountInfoVersions = &info
	if f.TxnSignature != nil {
		versioned = &host.ReplicaAccountInfoV2{ReplicaAccountInfo: info, TxnSignature: f.TxnSignature}
	}

	return adapter.Notification{
		Kind:      adapter.KindAccount,
		Slot:      f.Slot,
		Account:   versioned,
		IsStartup: f.IsStartup,
	}, nil
}

func transactionNotification(f TransactionFixture) (adapter.Notification, error) {
	info := host.ReplicaTransactionInfo{
		Signature:             f.Signature,
		IsVote:                f.IsVote,
		Transaction:           f.Transaction,
		TransactionStatusMeta: f.TransactionMeta,
	}

	var versioned host.ReplicaTransactionInfoVersions = &info
	if f.Index != nil {
		versioned = &host.ReplicaTransactionInfoV2{ReplicaTransactionInfo: info, Index: *f.Index}
	}

	return adapter.Notification{
		Kind:        adapter.KindTransaction,
		Slot:        f.Slot,
		Transaction: versioned,
	}, nil
}

func blockNotification(f BlockFixture) (adapter.Notification, error) {
	info := host.ReplicaBlockInfo{
		Slot:        f.Slot,
		Blockhash:   f.Blockhash,
		Rewards:     f.Rewards,
		BlockTime:   f.BlockTime,
		BlockHeight: f.BlockHeight,
	}

	var versioned host.ReplicaBlockInfoVersions = &info
	if f.ParentSlot != nil {
		versioned = &host.ReplicaBlockInfoV2{
			ReplicaBlockInfo:         info,
			ParentSlot:               *f.ParentSlot,
			ParentBlockhash:          f.ParentBlockhash,
			ExecutedTransactionCount: f.ExecutedTransactionCount,
		}
	}

	return adapter.Notification{
		Kind:  adapter.KindBlock,
		Slot:  f.Slot,
		Block: versioned,
	}, nil
}

func slotNotification(f SlotFixture) (adapter.Notification, error) {
	status, err := host.ParseSlotStatus(f.Status)
	if err != nil {
		return adapter.Notification{}, err
	}
	return adapter.Notification{
		Kind:   adapter.KindSlot,
		Slot:   f.Slot,
		Parent: f.Parent,
		Status: status,
	}, nil
}

// Ensure FileSource implements adapter.Source.
var _ adapter.Source = (*FileSource)(nil)
