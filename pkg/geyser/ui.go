package geyser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// UiStatus is the descriptive execution status: {"Ok":null} or {"Err":"..."}.
type UiStatus struct {
	Err *string
}

func (s UiStatus) MarshalJSON() ([]byte, error) {
	if s.Err == nil {
		return []byte(`{"Ok":null}`), nil
	}
	return json.Marshal(map[string]string{"Err": *s.Err})
}

func (s *UiStatus) UnmarshalJSON(b []byte) error {
	var wire map[string]*string
	if err := json.Unmarshal(b, &wire); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if _, ok := wire["Ok"]; ok {
		s.Err = nil
		return nil
	}
	msg, ok := wire["Err"]
	if !ok || msg == nil {
		return fmt.Errorf("status: expected Ok or Err, got %s", bytes.TrimSpace(b))
	}
	s.Err = msg
	return nil
}

// UiCompiledInstruction is a compiled instruction with base58 data.
type UiCompiledInstruction struct {
	ProgramIDIndex uint8    `json:"programIdIndex"`
	Accounts       []uint16 `json:"accounts"`
	Data           string   `json:"data"`
}

type UiInnerInstructions struct {
	Index        uint8                   `json:"index"`
	Instructions []UiCompiledInstruction `json:"instructions"`
}

// UiTransactionStatusMeta is the presentation form of TransactionStatusMeta.
// The failure reason survives only as its descriptive string.
type UiTransactionStatusMeta struct {
	Err               *string                   `json:"err"`
	Status            UiStatus                  `json:"status"`
	Fee               uint64                    `json:"fee"`
	PreBalances       []uint64                  `json:"preBalances"`
	PostBalances      []uint64                  `json:"postBalances"`
	InnerInstructions []UiInnerInstructions     `json:"innerInstructions"`
	LogMessages       []string                  `json:"logMessages"`
	PreTokenBalances  []TransactionTokenBalance `json:"preTokenBalances"`
	PostTokenBalances []TransactionTokenBalance `json:"postTokenBalances"`
	Rewards           []Reward                  `json:"rewards"`
}

// NewUiTransactionStatusMeta converts the status meta to its presentation form.
func NewUiTransactionStatusMeta(m *TransactionStatusMeta) UiTransactionStatusMeta {
	ui := UiTransactionStatusMeta{
		Fee:               m.Fee,
		PreBalances:       m.PreBalances,
		PostBalances:      m.PostBalances,
		LogMessages:       m.LogMessages,
		PreTokenBalances:  m.PreTokenBalances,
		PostTokenBalances: m.PostTokenBalances,
		Rewards:           m.Rewards,
	}
	if m.Err != nil {
		desc := m.Err.Error()
		ui.Err = &desc
		ui.Status = UiStatus{Err: &desc}
	}

	if m.InnerInstructions != nil {
		ui.InnerInstructions = make([]UiInnerInstructions, len(m.InnerInstructions))
		for i, inner := range m.InnerInstructions {
			ui.InnerInstructions[i] = UiInnerInstructions{
				Index:        inner.Index,
				Instructions: uiInstructions(inner.Instructions),
			}
		}
	}

	return ui
}

func uiInstructions(ixs []CompiledInstruction) []UiCompiledInstruction {
	if ixs == nil {
		return nil
	}
	out := make([]UiCompiledInstruction, len(ixs))
	for i, ix := range ixs {
		accounts := make([]uint16, len(ix.Accounts))
		for j, a := range ix.Accounts {
			accounts[j] = uint16(a)
		}
		out[i] = UiCompiledInstruction{
			ProgramIDIndex: ix.ProgramIDIndex,
			Accounts:       accounts,
			Data:           base58.Encode(ix.Data),
		}
	}
	return out
}

// UiTransactionNotify is TransactionNotify with its status meta in
// presentation form, as published by the textual encoder.
type UiTransactionNotify struct {
	Signature       solana.Signature        `json:"signature"`
	IsVote          bool                    `json:"is_vote"`
	Slot            uint64                  `json:"slot"`
	Transaction     SanitizedTransaction    `json:"transaction"`
	TransactionMeta UiTransactionStatusMeta `json:"transaction_meta"`
}

func NewUiTransactionNotify(tx *TransactionNotify) *UiTransactionNotify {
	return &UiTransactionNotify{
		Signature:       tx.Signature,
		IsVote:          tx.IsVote,
		Slot:            tx.Slot,
		Transaction:     tx.Transaction,
		TransactionMeta: NewUiTransactionStatusMeta(&tx.TransactionMeta),
	}
}
