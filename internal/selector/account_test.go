package selector

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/internal/host"
)

var (
	tokenProgram = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	otherProgram = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
)

func boolPtr(b bool) *bool { return &b }

func account(owner solana.PublicKey, lamports uint64, data []byte) *host.ReplicaAccountInfo {
	key := solana.NewWallet().PublicKey()
	return &host.ReplicaAccountInfo{
		Pubkey:   key.Bytes(),
		Lamports: lamports,
		Owner:    owner.Bytes(),
		Data:     data,
	}
}

func TestAccountSelector_DeletionShortCircuits(t *testing.T) {
	sel, err := NewAccountSelector(AccountOptions{
		Owners:   []string{tokenProgram.String()},
		Startup:  boolPtr(true),
		Deletion: true,
	})
	require.NoError(t, err)

	tombstone := account(SystemProgramID, 0, nil)

	// Owner is not allowlisted and the startup flag does not match, yet the
	// tombstone is still forwarded.
	assert.True(t, sel.IsSelected(tombstone, false))
	assert.True(t, sel.IsSelected(tombstone, true))
}

func TestAccountSelector_DeletionDisabled(t *testing.T) {
	sel, err := NewAccountSelector(AccountOptions{
		Owners: []string{tokenProgram.String()},
	})
	require.NoError(t, err)

	assert.False(t, sel.IsSelected(account(SystemProgramID, 0, nil), false))
}

func TestAccountSelector_NotATombstone(t *testing.T) {
	sel, err := NewAccountSelector(AccountOptions{
		Owners:   []string{tokenProgram.String()},
		Deletion: true,
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		acct *host.ReplicaAccountInfo
	}{
		{"has lamports", account(SystemProgramID, 1, nil)},
		{"has data", account(SystemProgramID, 0, []byte{1})},
		{"other owner", account(otherProgram, 0, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, sel.IsSelected(tt.acct, false))
		})
	}
}

func TestAccountSelector_EmptyAllowlistSelectsAnyOwner(t *testing.T) {
	sel, err := NewAccountSelector(AccountOptions{})
	require.NoError(t, err)

	for _, owner := range []solana.PublicKey{tokenProgram, otherProgram, SystemProgramID} {
		assert.True(t, sel.IsSelected(account(owner, 10, []byte{1, 2}), false), owner.String())
	}
}

func TestAccountSelector_AllowlistMembership(t *testing.T) {
	sel, err := NewAccountSelector(AccountOptions{
		Owners: []string{tokenProgram.String()},
	})
	require.NoError(t, err)

	assert.True(t, sel.IsSelected(account(tokenProgram, 10, nil), false))
	assert.False(t, sel.IsSelected(account(otherProgram, 10, nil), false))
}

func TestAccountSelector_StartupFilter(t *testing.T) {
	tests := []struct {
		name      string
		startup   *bool
		isStartup bool
		want      bool
	}{
		{"ignored, startup", nil, true, true},
		{"ignored, live", nil, false, true},
		{"startup only, startup", boolPtr(true), true, true},
		{"startup only, live", boolPtr(true), false, false},
		{"live only, startup", boolPtr(false), true, false},
		{"live only, live", boolPtr(false), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := NewAccountSelector(AccountOptions{
				Owners:  []string{tokenProgram.String()},
				Startup: tt.startup,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, sel.IsSelected(account(tokenProgram, 1, nil), tt.isStartup))
		})
	}
}

func TestAccountSelector_VersionsAgree(t *testing.T) {
	sel, err := NewAccountSelector(AccountOptions{
		Owners:   []string{tokenProgram.String()},
		Deletion: true,
	})
	require.NoError(t, err)

	sig := solana.Signature{1, 2, 3}
	for _, v1 := range []*host.ReplicaAccountInfo{
		account(tokenProgram, 5, []byte{1}),
		account(otherProgram, 5, []byte{1}),
		account(SystemProgramID, 0, nil),
	} {
		v2 := &host.ReplicaAccountInfoV2{ReplicaAccountInfo: *v1, TxnSignature: &sig}
		for _, startup := range []bool{true, false} {
			assert.Equal(t, sel.IsSelected(v1, startup), sel.IsSelected(v2, startup))
		}
	}
}

func TestAccountSelector_Modes(t *testing.T) {
	t.Run("all ignores owners", func(t *testing.T) {
		sel, err := NewAccountSelector(AccountOptions{
			Owners: []string{tokenProgram.String()},
			Mode:   ModeAll,
		})
		require.NoError(t, err)
		assert.True(t, sel.IsSelected(account(otherProgram, 1, nil), false))
	})

	t.Run("owners requires a list", func(t *testing.T) {
		_, err := NewAccountSelector(AccountOptions{Mode: ModeOwners})
		require.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := NewAccountSelector(AccountOptions{Mode: "some"})
		require.Error(t, err)
	})
}

func TestAccountSelector_MalformedOwner(t *testing.T) {
	_, err := NewAccountSelector(AccountOptions{Owners: []string{"not-a-key!"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse account owner key")
}

func TestAccountSelector_WithOffchainIndependent(t *testing.T) {
	on, err := NewAccountSelector(AccountOptions{WithOffchain: true})
	require.NoError(t, err)
	off, err := NewAccountSelector(AccountOptions{})
	require.NoError(t, err)

	acct := account(otherProgram, 3, []byte{4})
	assert.True(t, on.WithOffchain())
	assert.False(t, off.WithOffchain())
	assert.Equal(t, on.IsSelected(acct, false), off.IsSelected(acct, false))
}
