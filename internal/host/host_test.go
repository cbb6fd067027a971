package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStatus_RoundTrip(t *testing.T) {
	for _, s := range []SlotStatus{SlotProcessed, SlotConfirmed, SlotRooted} {
		got, err := ParseSlotStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseSlotStatus("frozen")
	require.Error(t, err)
	assert.Equal(t, "unknown", SlotStatus(9).String())
}

func TestPluginError(t *testing.T) {
	err := NewError(KindSlotStatusUpdate, ErrNotInitialized)

	assert.Equal(t, "slot status update error: geyser plugin not initialized yet", err.Error())
	assert.True(t, errors.Is(err, ErrNotInitialized))

	var perr *PluginError
	require.True(t, errors.As(error(err), &perr))
	assert.Equal(t, KindSlotStatusUpdate, perr.Kind)
}

func TestVersionsShareFields(t *testing.T) {
	v2 := &ReplicaAccountInfoV2{ReplicaAccountInfo: ReplicaAccountInfo{Lamports: 7}}
	var versioned ReplicaAccountInfoVersions = v2
	assert.Equal(t, uint64(7), versioned.Account().Lamports)

	block := &ReplicaBlockInfoV2{ReplicaBlockInfo: ReplicaBlockInfo{Slot: 3}, ParentSlot: 2}
	var blockVersioned ReplicaBlockInfoVersions = block
	assert.Equal(t, uint64(3), blockVersioned.BlockInfo().Slot)

	tx := &ReplicaTransactionInfoV2{Index: 4}
	var txVersioned ReplicaTransactionInfoVersions = tx
	assert.True(t, txVersioned.TransactionInfo().TransactionStatusMeta.IsOk())
}
