package synthetic

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/internal/adapter"
	"github.com/marko911/geyser-pulse/internal/host"
)

var memoProgram = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

func drain(t *testing.T, src *Source) []adapter.Notification {
	t.Helper()

	ch := make(chan adapter.Notification, 1024)
	require.NoError(t, src.Stream(context.Background(), ch))
	close(ch)

	var out []adapter.Notification
	for n := range ch {
		out = append(out, n)
	}
	return out
}

func TestNewSource_Validation(t *testing.T) {
	_, err := NewSource(Config{}, nil)
	require.Error(t, err)
}

func TestSource_Limit(t *testing.T) {
	src, err := NewSource(Config{
		Rate:      100000,
		Limit:     250,
		Owners:    []solana.PublicKey{solana.TokenProgramID},
		Programs:  []solana.PublicKey{memoProgram},
		SlotEvery: 50,
		StartSlot: 1000,
		Seed:      7,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "synthetic", src.Name())

	got := drain(t, src)
	require.Len(t, got, 250)

	counts := map[adapter.Kind]int{}
	for _, n := range got {
		counts[n.Kind]++
		switch n.Kind {
		case adapter.KindAccount:
			owner := solana.PublicKeyFromBytes(n.Account.Account().Owner)
			assert.Equal(t, solana.TokenProgramID, owner)
			assert.Len(t, n.Account.Account().Pubkey, solana.PublicKeyLength)
		case adapter.KindTransaction:
			keys := n.Transaction.TransactionInfo().Transaction.Message.Keys()
			assert.Contains(t, keys, memoProgram)
		case adapter.KindSlot:
			assert.Equal(t, host.SlotRooted, n.Status)
			assert.GreaterOrEqual(t, n.Slot, uint64(1000))
		}
	}

	assert.Positive(t, counts[adapter.KindAccount])
	assert.Positive(t, counts[adapter.KindTransaction])
	assert.Equal(t, counts[adapter.KindBlock], counts[adapter.KindSlot])
	assert.Positive(t, counts[adapter.KindSlot])
}

func TestSource_NoProgramsMeansNoTransactions(t *testing.T) {
	src, err := NewSource(Config{Rate: 100000, Limit: 100, Seed: 1}, nil)
	require.NoError(t, err)

	for _, n := range drain(t, src) {
		assert.NotEqual(t, adapter.KindTransaction, n.Kind)
	}
}

func TestSource_Duration(t *testing.T) {
	src, err := NewSource(Config{Rate: 1000, Duration: 30 * time.Millisecond, Seed: 1}, nil)
	require.NoError(t, err)

	got := drain(t, src)
	assert.NotEmpty(t, got)
	assert.Less(t, len(got), 1000)
}

func TestSource_Cancel(t *testing.T) {
	src, err := NewSource(Config{Rate: 1000, Seed: 1}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = src.Stream(ctx, make(chan adapter.Notification, 1024))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
