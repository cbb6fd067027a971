package adapter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/internal/host"
)

type call struct {
	kind Kind
	slot uint64
}

type fakePlugin struct {
	mu           sync.Mutex
	calls        []call
	transactions bool
	failSlots    bool
}

func (f *fakePlugin) record(kind Kind, slot uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{kind, slot})
}

func (f *fakePlugin) UpdateAccount(_ host.ReplicaAccountInfoVersions, slot uint64, _ bool) error {
	f.record(KindAccount, slot)
	return nil
}

func (f *fakePlugin) UpdateSlotStatus(slot uint64, _ *uint64, _ host.SlotStatus) error {
	f.record(KindSlot, slot)
	if f.failSlots {
		return host.NewError(host.KindSlotStatusUpdate, errors.New("boom"))
	}
	return nil
}

func (f *fakePlugin) NotifyTransaction(_ host.ReplicaTransactionInfoVersions, slot uint64) error {
	f.record(KindTransaction, slot)
	return nil
}

func (f *fakePlugin) NotifyBlockMetadata(info host.ReplicaBlockInfoVersions) error {
	f.record(KindBlock, info.BlockInfo().Slot)
	return nil
}

func (f *fakePlugin) AccountDataNotificationsEnabled() bool { return true }
func (f *fakePlugin) TransactionNotificationsEnabled() bool { return f.transactions }

// sliceSource replays a fixed list.
type sliceSource []Notification

func (s sliceSource) Name() string { return "slice" }

func (s sliceSource) Stream(ctx context.Context, out chan<- Notification) error {
	for _, n := range s {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- n:
		}
	}
	return nil
}

func sample() sliceSource {
	return sliceSource{
		{Kind: KindAccount, Slot: 1, Account: &host.ReplicaAccountInfo{}},
		{Kind: KindTransaction, Slot: 2, Transaction: &host.ReplicaTransactionInfo{}},
		{Kind: KindBlock, Slot: 3, Block: &host.ReplicaBlockInfo{Slot: 3}},
		{Kind: KindSlot, Slot: 4, Status: host.SlotRooted},
	}
}

func TestDeliver_UnknownKind(t *testing.T) {
	err := Deliver(&fakePlugin{}, Notification{Kind: "vote"})
	require.Error(t, err)
}

func TestRun_DeliversInOrder(t *testing.T) {
	p := &fakePlugin{transactions: true}

	require.NoError(t, Run(context.Background(), sample(), p, nil))

	assert.Equal(t, []call{
		{KindAccount, 1},
		{KindTransaction, 2},
		{KindBlock, 3},
		{KindSlot, 4},
	}, p.calls)
}

func TestRun_TransactionsDisabled(t *testing.T) {
	p := &fakePlugin{}

	require.NoError(t, Run(context.Background(), sample(), p, nil))

	for _, c := range p.calls {
		assert.NotEqual(t, KindTransaction, c.kind)
	}
	assert.Len(t, p.calls, 3)
}

func TestRun_RejectionsDoNotStop(t *testing.T) {
	p := &fakePlugin{transactions: true, failSlots: true}
	src := append(sample(), Notification{Kind: KindAccount, Slot: 5, Account: &host.ReplicaAccountInfo{}})

	require.NoError(t, Run(context.Background(), src, p, nil))
	assert.Len(t, p.calls, 5)
}

func TestRun_SourceError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The source only returns once ctx is done.
	err := Run(ctx, blockingSource{}, &fakePlugin{}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

type blockingSource struct{}

func (blockingSource) Name() string { return "blocking" }

func (blockingSource) Stream(ctx context.Context, _ chan<- Notification) error {
	<-ctx.Done()
	return ctx.Err()
}
