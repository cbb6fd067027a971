package geyser

import (
	"encoding/json"
	"fmt"
)

// RewardType classifies a reward. RewardTypeNone stands for "not reported".
type RewardType uint8

const (
	RewardTypeNone RewardType = iota
	RewardTypeFee
	RewardTypeRent
	RewardTypeStaking
	RewardTypeVoting
)

func (r RewardType) String() string {
	switch r {
	case RewardTypeFee:
		return "Fee"
	case RewardTypeRent:
		return "Rent"
	case RewardTypeStaking:
		return "Staking"
	case RewardTypeVoting:
		return "Voting"
	default:
		return "None"
	}
}

// MarshalJSON renders the host's representation: the variant name, or null.
func (r RewardType) MarshalJSON() ([]byte, error) {
	if r == RewardTypeNone {
		return []byte("null"), nil
	}
	return json.Marshal(r.String())
}

func (r *RewardType) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = RewardTypeNone
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("reward type: %w", err)
	}
	switch s {
	case "Fee":
		*r = RewardTypeFee
	case "Rent":
		*r = RewardTypeRent
	case "Staking":
		*r = RewardTypeStaking
	case "Voting":
		*r = RewardTypeVoting
	default:
		return fmt.Errorf("unknown reward type %q", s)
	}
	return nil
}

type Reward struct {
	Pubkey      string     `json:"pubkey"`
	Lamports    int64      `json:"lamports"`
	PostBalance uint64     `json:"postBalance"`
	RewardType  RewardType `json:"rewardType"`
	Commission  *uint8     `json:"commission"`
}
