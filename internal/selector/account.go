// Package selector decides which account writes and transactions are
// forwarded to the message queues.
package selector

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gagliardetto/solana-go"

	"github.com/marko911/geyser-pulse/internal/host"
)

// SystemProgramID owns every account the runtime deletes.
var SystemProgramID = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")

// Mode chooses how account owners are matched.
type Mode string

const (
	// ModeAuto selects by owner when the allowlist is non-empty, otherwise
	// everything.
	ModeAuto   Mode = ""
	ModeOwners Mode = "owners"
	ModeAll    Mode = "all"
)

// AccountOptions configures an AccountSelector.
type AccountOptions struct {
	// Owners are base58 program keys.
	Owners []string
	Mode   Mode
	// Startup filters on the is_startup flag: nil ignores it, otherwise the
	// flag must match.
	Startup *bool
	// Deletion forwards deleted accounts regardless of the other rules.
	Deletion bool
	// WithOffchain enables off-chain metadata extraction for selected
	// token metadata accounts.
	WithOffchain bool
}

type AccountSelector struct {
	owners       mapset.Set[solana.PublicKey]
	selectAll    bool
	startup      *bool
	deletion     bool
	withOffchain bool
}

// NewAccountSelector parses the owner keys. A malformed key is an error.
func NewAccountSelector(opts AccountOptions) (*AccountSelector, error) {
	owners := mapset.NewThreadUnsafeSet[solana.PublicKey]()
	for _, s := range opts.Owners {
		key, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("parse account owner key %q: %w", s, err)
		}
		owners.Add(key)
	}

	var selectAll bool
	switch opts.Mode {
	case ModeAuto:
		selectAll = owners.Cardinality() == 0
	case ModeAll:
		selectAll = true
	case ModeOwners:
		if owners.Cardinality() == 0 {
			return nil, fmt.Errorf("account selection mode %q requires at least one owner", ModeOwners)
		}
	default:
		return nil, fmt.Errorf("unknown account selection mode %q", opts.Mode)
	}

	return &AccountSelector{
		owners:       owners,
		selectAll:    selectAll,
		startup:      opts.Startup,
		deletion:     opts.Deletion,
		withOffchain: opts.WithOffchain,
	}, nil
}

// IsSelected reports whether an account write should be forwarded. Both host
// account versions are judged on the same fields.
func (s *AccountSelector) IsSelected(info host.ReplicaAccountInfoVersions, isStartup bool) bool {
	acct := info.Account()

	if s.deletion && isDeletion(acct) {
		return true
	}

	if s.startup != nil && *s.startup != isStartup {
		return false
	}

	if s.selectAll {
		return true
	}

	owner, ok := keyFromBytes(acct.Owner)
	return ok && s.owners.Contains(owner)
}

// WithOffchain reports whether off-chain metadata extraction is enabled.
func (s *AccountSelector) WithOffchain() bool {
	return s.withOffchain
}

// isDeletion matches the tombstone the runtime writes for a closed account.
func isDeletion(acct *host.ReplicaAccountInfo) bool {
	if acct.Lamports != 0 || len(acct.Data) != 0 {
		return false
	}
	owner, ok := keyFromBytes(acct.Owner)
	return ok && owner.Equals(SystemProgramID)
}

func keyFromBytes(b []byte) (solana.PublicKey, bool) {
	if len(b) != solana.PublicKeyLength {
		return solana.PublicKey{}, false
	}
	return solana.PublicKeyFromBytes(b), true
}
