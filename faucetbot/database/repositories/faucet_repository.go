package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/textrp/faucetbot/faucetbot/database/models"
	"github.com/uptrace/bun"
)

var (
	ErrNoClaimRecord = errors.New("no claim record for wallet")
	ErrInvalidAmount = errors.New("claim amount must be positive")
)

// FaucetRepository is the claim ledger: the single owner of the claims,
// blacklist and faucet_stats tables. All mutations go through it;
// record_claim applies the claim row and the aggregate row in one
// transaction so partial updates are never observable.
type FaucetRepository interface {
	GetClaimRecord(ctx context.Context, wallet string) (*models.ClaimRecord, error)
	IsBlacklisted(ctx context.Context, wallet string) (bool, error)
	RecordClaim(ctx context.Context, wallet string, amount decimal.Decimal, txHash string) error
	AddToBlacklist(ctx context.Context, wallet, reason, actor string) error
	RemoveFromBlacklist(ctx context.Context, wallet string) error
	GetAggregateStats(ctx context.Context) (*models.FaucetStats, error)
	GetRecentClaims(ctx context.Context, limit int) ([]*models.ClaimRecord, error)
	GetBlacklist(ctx context.Context) ([]*models.BlacklistEntry, error)
	CountClaimsSince(ctx context.Context, since time.Time) (int, error)
	CountBlacklisted(ctx context.Context) (int, error)
}

type faucetRepository struct {
	db *bun.DB
}

func NewFaucetRepository(db *bun.DB) FaucetRepository {
	return &faucetRepository{db: db}
}

func (r *faucetRepository) GetClaimRecord(ctx context.Context, wallet string) (*models.ClaimRecord, error) {
	record := new(models.ClaimRecord)
	err := r.db.NewSelect().
		Model(record).
		Where("wallet = ?", wallet).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoClaimRecord
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim record: %w", err)
	}
	return record, nil
}

func (r *faucetRepository) IsBlacklisted(ctx context.Context, wallet string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.BlacklistEntry)(nil)).
		Where("wallet = ?", wallet).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return exists, nil
}

func (r *faucetRepository) RecordClaim(ctx context.Context, wallet string, amount decimal.Decimal, txHash string) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	// First try to update an existing claim row.
	result, err := tx.NewUpdate().
		Model((*models.ClaimRecord)(nil)).
		Set("claim_count = claim_count + 1").
		Set("total_claimed = total_claimed + ?", amount).
		Set("last_claim_at = ?", now).
		Set("last_tx_hash = ?", txHash).
		Where("wallet = ?", wallet).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update claim record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	firstClaim := rowsAffected == 0
	if firstClaim {
		record := &models.ClaimRecord{
			Wallet:       wallet,
			LastClaimAt:  now,
			FirstClaimAt: now,
			ClaimCount:   1,
			TotalClaimed: amount,
			LastTxHash:   txHash,
		}
		if _, err = tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert claim record: %w", err)
		}
	}

	// Aggregate row moves in the same transaction.
	statsUpdate := tx.NewUpdate().
		Model((*models.FaucetStats)(nil)).
		Set("total_claims = total_claims + 1").
		Set("total_distributed = total_distributed + ?", amount).
		Set("last_updated = ?", now).
		Where("id = ?", models.FaucetStatsID)
	if firstClaim {
		statsUpdate = statsUpdate.Set("unique_wallets = unique_wallets + 1")
	}
	if _, err = statsUpdate.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update faucet stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit claim: %w", err)
	}
	return nil
}

func (r *faucetRepository) AddToBlacklist(ctx context.Context, wallet, reason, actor string) error {
	if actor == "" {
		actor = "system"
	}
	entry := &models.BlacklistEntry{
		Wallet:        wallet,
		Reason:        reason,
		BlacklistedAt: time.Now(),
		BlacklistedBy: actor,
	}

	_, err := r.db.NewInsert().
		Model(entry).
		On("CONFLICT (wallet) DO UPDATE").
		Set("reason = EXCLUDED.reason").
		Set("blacklisted_at = EXCLUDED.blacklisted_at").
		Set("blacklisted_by = EXCLUDED.blacklisted_by").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to blacklist wallet: %w", err)
	}
	return nil
}

func (r *faucetRepository) RemoveFromBlacklist(ctx context.Context, wallet string) error {
	// Deleting a wallet that is not blacklisted is not an error.
	_, err := r.db.NewDelete().
		Model((*models.BlacklistEntry)(nil)).
		Where("wallet = ?", wallet).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove wallet from blacklist: %w", err)
	}
	return nil
}

func (r *faucetRepository) GetAggregateStats(ctx context.Context) (*models.FaucetStats, error) {
	stats := new(models.FaucetStats)
	err := r.db.NewSelect().
		Model(stats).
		Where("id = ?", models.FaucetStatsID).
		Scan(ctx)

	// A missing row means the schema was never initialized; report
	// zeroes rather than failing the stats command.
	if errors.Is(err, sql.ErrNoRows) {
		return &models.FaucetStats{ID: models.FaucetStatsID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get faucet stats: %w", err)
	}
	return stats, nil
}

func (r *faucetRepository) GetRecentClaims(ctx context.Context, limit int) ([]*models.ClaimRecord, error) {
	var claims []*models.ClaimRecord
	err := r.db.NewSelect().
		Model(&claims).
		Order("last_claim_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent claims: %w", err)
	}
	return claims, nil
}

func (r *faucetRepository) GetBlacklist(ctx context.Context) ([]*models.BlacklistEntry, error) {
	var entries []*models.BlacklistEntry
	err := r.db.NewSelect().
		Model(&entries).
		Order("blacklisted_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get blacklist: %w", err)
	}
	return entries, nil
}

func (r *faucetRepository) CountClaimsSince(ctx context.Context, since time.Time) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.ClaimRecord)(nil)).
		Where("last_claim_at > ?", since).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent claims: %w", err)
	}
	return count, nil
}

func (r *faucetRepository) CountBlacklisted(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.BlacklistEntry)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count blacklist: %w", err)
	}
	return count, nil
}
