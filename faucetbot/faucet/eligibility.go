package faucet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/textrp/faucetbot/faucetbot/database/repositories"
)

// Decision is the evaluator's answer. Eligible is authoritative;
// Reason is only set on a denial.
type Decision struct {
	Eligible bool
	Reason   string
}

// Evaluator decides whether a wallet may claim, from ledger state and
// the clock alone. Balance and trust-line preconditions need network
// lookups and are enforced by the orchestrator instead.
type Evaluator struct {
	ledger   Ledger
	cooldown time.Duration
}

func NewEvaluator(ledger Ledger, cooldown time.Duration) *Evaluator {
	return &Evaluator{ledger: ledger, cooldown: cooldown}
}

// Evaluate applies the rules in a fixed order: blacklist first, then
// first-ever claim, then cooldown. A storage fault is returned as an
// error; callers deny by default rather than letting a claim through.
func (e *Evaluator) Evaluate(ctx context.Context, wallet string, now time.Time) (Decision, error) {
	blacklisted, err := e.ledger.IsBlacklisted(ctx, wallet)
	if err != nil {
		return Decision{}, fmt.Errorf("blacklist check failed: %w", err)
	}
	if blacklisted {
		return Decision{Reason: "Wallet is blacklisted from faucet"}, nil
	}

	record, err := e.ledger.GetClaimRecord(ctx, wallet)
	if errors.Is(err, repositories.ErrNoClaimRecord) {
		return Decision{Eligible: true}, nil
	}
	if err != nil {
		return Decision{}, fmt.Errorf("claim record lookup failed: %w", err)
	}

	elapsed := now.Sub(record.LastClaimAt)
	if elapsed < e.cooldown {
		remaining := (e.cooldown - elapsed).Hours()
		return Decision{Reason: fmt.Sprintf("Please wait %.1f hours before claiming again", remaining)}, nil
	}

	return Decision{Eligible: true}, nil
}
