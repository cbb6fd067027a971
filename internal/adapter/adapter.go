// Package adapter feeds host notifications to the plugin when it runs outside
// a validator.
package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/marko911/geyser-pulse/internal/host"
)

// Kind names the entry point a notification is delivered to.
type Kind string

const (
	KindAccount     Kind = "account"
	KindTransaction Kind = "transaction"
	KindBlock       Kind = "block"
	KindSlot        Kind = "slot"
)

// Notification is one host callback. Only the fields of its Kind are set.
type Notification struct {
	Kind Kind
	Slot uint64

	Account   host.ReplicaAccountInfoVersions
	IsStartup bool

	Transaction host.ReplicaTransactionInfoVersions

	Block host.ReplicaBlockInfoVersions

	Parent *uint64
	Status host.SlotStatus
}

// Plugin is the host-facing side of the bridge.
type Plugin interface {
	UpdateAccount(info host.ReplicaAccountInfoVersions, slot uint64, isStartup bool) error
	UpdateSlotStatus(slot uint64, parent *uint64, status host.SlotStatus) error
	NotifyTransaction(info host.ReplicaTransactionInfoVersions, slot uint64) error
	NotifyBlockMetadata(info host.ReplicaBlockInfoVersions) error
	AccountDataNotificationsEnabled() bool
	TransactionNotificationsEnabled() bool
}

// Source produces notifications in host order.
type Source interface {
	Name() string

	// Stream sends notifications until the source is exhausted or ctx is
	// done. It does not close the channel.
	Stream(ctx context.Context, notifications chan<- Notification) error
}

// Deliver invokes the entry point for n, honoring the capability queries the
// way a validator does.
func Deliver(p Plugin, n Notification) error {
	switch n.Kind {
	case KindAccount:
		if !p.AccountDataNotificationsEnabled() {
			return nil
		}
		return p.UpdateAccount(n.Account, n.Slot, n.IsStartup)
	case KindTransaction:
		if !p.TransactionNotificationsEnabled() {
			return nil
		}
		return p.NotifyTransaction(n.Transaction, n.Slot)
	case KindBlock:
		return p.NotifyBlockMetadata(n.Block)
	case KindSlot:
		return p.UpdateSlotStatus(n.Slot, n.Parent, n.Status)
	default:
		return fmt.Errorf("unknown notification kind %q", n.Kind)
	}
}

// Run streams src into p until the source is exhausted. Entry point failures
// are logged and do not stop the stream.
func Run(ctx context.Context, src Source, p Plugin, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("source", src.Name())

	notifications := make(chan Notification, 256)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(notifications)
		return src.Stream(ctx, notifications)
	})

	g.Go(func() error {
		var delivered, failed int
		for n := range notifications {
			if err := Deliver(p, n); err != nil {
				failed++
				logger.Warn("notification rejected",
					"kind", n.Kind,
					"slot", n.Slot,
					"error", err,
				)
				continue
			}
			delivered++
		}
		logger.Info("source drained", "delivered", delivered, "failed", failed)
		return nil
	})

	return g.Wait()
}
