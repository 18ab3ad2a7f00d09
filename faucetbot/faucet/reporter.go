package faucet

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/textrp/faucetbot/faucetbot/database/repositories"
)

// Summary is the operator-facing aggregate view.
type Summary struct {
	TotalClaims      int64
	TotalDistributed decimal.Decimal
	UniqueWallets    int64
	ClaimsLast24h    int
	BlacklistedCount int
	LastUpdated      time.Time
}

// Reporter aggregates ledger rows for the admin commands. Read-only.
type Reporter struct {
	repo repositories.FaucetRepository
}

func NewReporter(repo repositories.FaucetRepository) *Reporter {
	return &Reporter{repo: repo}
}

// Report builds the summary at query time. ClaimsLast24h counts claim
// rows whose last_claim_at falls in the trailing 24 hours; a wallet
// that claimed twice in the window still counts once, because only its
// latest claim timestamp is kept.
func (r *Reporter) Report(ctx context.Context) (*Summary, error) {
	stats, err := r.repo.GetAggregateStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aggregate stats: %w", err)
	}

	recent, err := r.repo.CountClaimsSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent claims: %w", err)
	}

	blacklisted, err := r.repo.CountBlacklisted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count blacklist: %w", err)
	}

	return &Summary{
		TotalClaims:      stats.TotalClaims,
		TotalDistributed: stats.TotalDistributed,
		UniqueWallets:    stats.UniqueWallets,
		ClaimsLast24h:    recent,
		BlacklistedCount: blacklisted,
		LastUpdated:      stats.LastUpdated,
	}, nil
}
