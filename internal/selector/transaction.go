package selector

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gagliardetto/solana-go"
)

// TransactionSelector forwards transactions that touch an allowlisted program.
type TransactionSelector struct {
	programs mapset.Set[solana.PublicKey]
}

func NewTransactionSelector(programs []string) (*TransactionSelector, error) {
	set := mapset.NewThreadUnsafeSet[solana.PublicKey]()
	for _, s := range programs {
		key, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("parse transaction program key %q: %w", s, err)
		}
		set.Add(key)
	}
	return &TransactionSelector{programs: set}, nil
}

// IsEmpty reports whether no program is allowlisted. Transaction
// notifications should then be disabled altogether.
func (s *TransactionSelector) IsEmpty() bool {
	return s.programs.Cardinality() == 0
}

func (s *TransactionSelector) IsSelected(program solana.PublicKey) bool {
	return s.programs.Contains(program)
}

// IsSelectedInRange reports whether any of keys is allowlisted.
func (s *TransactionSelector) IsSelectedInRange(keys []solana.PublicKey) bool {
	for _, key := range keys {
		if s.IsSelected(key) {
			return true
		}
	}
	return false
}
