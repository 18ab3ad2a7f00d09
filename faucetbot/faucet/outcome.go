package faucet

import (
	"github.com/shopspring/decimal"
)

// OutcomeKind tags a ClaimOutcome. A policy denial is a normal negative
// result; Failed means a collaborator fault, never a rule.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeDenied
	OutcomeFailed
)

type ClaimOutcome struct {
	Kind        OutcomeKind
	Amount      decimal.Decimal
	TxHash      string
	ExplorerURL string
	Reason      string // set when Kind == OutcomeDenied
	Err         error  // set when Kind == OutcomeFailed
}

func Success(amount decimal.Decimal, txHash, explorerURL string) ClaimOutcome {
	return ClaimOutcome{Kind: OutcomeSuccess, Amount: amount, TxHash: txHash, ExplorerURL: explorerURL}
}

func Denied(reason string) ClaimOutcome {
	return ClaimOutcome{Kind: OutcomeDenied, Reason: reason}
}

func Failed(err error) ClaimOutcome {
	return ClaimOutcome{Kind: OutcomeFailed, Err: err}
}
