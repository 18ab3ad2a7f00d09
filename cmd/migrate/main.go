// Command migrate imports the legacy faucet's SQLite database into
// Postgres. The legacy bot stored claim amounts as TEXT; they are
// parsed as decimals here so nothing is lost in transit.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/database"
	"github.com/textrp/faucetbot/faucetbot/database/models"
	"github.com/textrp/faucetbot/faucetbot/logger"
	"github.com/textrp/faucetbot/faucetbot/utils"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config")
	sqlitePath := flag.String("sqlite", "faucet.db", "path to the legacy SQLite database")
	flag.Parse()

	slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))

	if err := run(*configPath, *sqlitePath); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migration completed successfully")
}

func run(configPath, sqlitePath string) error {
	cfg, err := faucetbot.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(sqlitePath); err != nil {
		return fmt.Errorf("legacy database not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	legacy, err := sql.Open("sqlite3", sqlitePath)
	if err != nil {
		return fmt.Errorf("failed to open legacy database: %w", err)
	}
	defer legacy.Close()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db.BunDB().RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		claims, err := importClaims(ctx, legacy, tx)
		if err != nil {
			return err
		}
		banned, err := importBlacklist(ctx, legacy, tx)
		if err != nil {
			return err
		}
		if err := importStats(ctx, legacy, tx); err != nil {
			return err
		}
		slog.Info("Imported legacy data",
			slog.String("type", "db"),
			slog.Int("claims", claims),
			slog.Int("blacklisted", banned))
		return nil
	})
}

func importClaims(ctx context.Context, legacy *sql.DB, tx bun.Tx) (int, error) {
	rows, err := legacy.QueryContext(ctx,
		`SELECT wallet, last_claim, first_claim, claim_count, total_claimed, COALESCE(last_tx_hash, '') FROM claims`)
	if err != nil {
		return 0, fmt.Errorf("failed to read legacy claims: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var record models.ClaimRecord
		var lastClaim, firstClaim, totalClaimed string
		if err := rows.Scan(&record.Wallet, &lastClaim, &firstClaim, &record.ClaimCount, &totalClaimed, &record.LastTxHash); err != nil {
			return count, fmt.Errorf("failed to scan claim row: %w", err)
		}
		if record.LastClaimAt, err = parseLegacyTime(lastClaim); err != nil {
			return count, fmt.Errorf("claim %s: bad last_claim: %w", record.Wallet, err)
		}
		if record.FirstClaimAt, err = parseLegacyTime(firstClaim); err != nil {
			return count, fmt.Errorf("claim %s: bad first_claim: %w", record.Wallet, err)
		}
		if record.TotalClaimed, err = decimal.NewFromString(totalClaimed); err != nil {
			return count, fmt.Errorf("claim %s: bad total_claimed %q: %w", record.Wallet, totalClaimed, err)
		}
		record.LastTxHash = sanitizeLegacyHash(record.Wallet, record.LastTxHash)

		if _, err := tx.NewInsert().
			Model(&record).
			On("CONFLICT (wallet) DO UPDATE").
			Set("last_claim_at = EXCLUDED.last_claim_at").
			Set("claim_count = EXCLUDED.claim_count").
			Set("total_claimed = EXCLUDED.total_claimed").
			Set("last_tx_hash = EXCLUDED.last_tx_hash").
			Exec(ctx); err != nil {
			return count, fmt.Errorf("failed to insert claim %s: %w", record.Wallet, err)
		}
		count++
	}
	return count, rows.Err()
}

func importBlacklist(ctx context.Context, legacy *sql.DB, tx bun.Tx) (int, error) {
	rows, err := legacy.QueryContext(ctx,
		`SELECT wallet, COALESCE(reason, ''), blacklisted_at, COALESCE(blacklisted_by, 'system') FROM blacklist`)
	if err != nil {
		return 0, fmt.Errorf("failed to read legacy blacklist: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var entry models.BlacklistEntry
		var at string
		if err := rows.Scan(&entry.Wallet, &entry.Reason, &at, &entry.BlacklistedBy); err != nil {
			return count, fmt.Errorf("failed to scan blacklist row: %w", err)
		}
		if entry.BlacklistedAt, err = parseLegacyTime(at); err != nil {
			return count, fmt.Errorf("blacklist %s: bad blacklisted_at: %w", entry.Wallet, err)
		}

		if _, err := tx.NewInsert().
			Model(&entry).
			On("CONFLICT (wallet) DO UPDATE").
			Set("reason = EXCLUDED.reason").
			Set("blacklisted_at = EXCLUDED.blacklisted_at").
			Set("blacklisted_by = EXCLUDED.blacklisted_by").
			Exec(ctx); err != nil {
			return count, fmt.Errorf("failed to insert blacklist entry %s: %w", entry.Wallet, err)
		}
		count++
	}
	return count, rows.Err()
}

func importStats(ctx context.Context, legacy *sql.DB, tx bun.Tx) error {
	var totalClaims, uniqueWallets int64
	var totalDistributed string
	err := legacy.QueryRowContext(ctx,
		`SELECT total_claims, total_distributed, unique_wallets FROM faucet_stats WHERE id = 1`).
		Scan(&totalClaims, &totalDistributed, &uniqueWallets)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read legacy stats: %w", err)
	}

	distributed, err := decimal.NewFromString(totalDistributed)
	if err != nil {
		return fmt.Errorf("bad total_distributed %q: %w", totalDistributed, err)
	}

	stats := models.FaucetStats{
		ID:               models.FaucetStatsID,
		TotalClaims:      totalClaims,
		TotalDistributed: distributed,
		UniqueWallets:    uniqueWallets,
		LastUpdated:      time.Now().UTC(),
	}
	if _, err := tx.NewInsert().
		Model(&stats).
		On("CONFLICT (id) DO UPDATE").
		Set("total_claims = EXCLUDED.total_claims").
		Set("total_distributed = EXCLUDED.total_distributed").
		Set("unique_wallets = EXCLUDED.unique_wallets").
		Set("last_updated = EXCLUDED.last_updated").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}
	return nil
}

// sanitizeLegacyHash drops transaction hashes the old bot recorded
// that are not 64 hex characters; a blank hash is better than a
// corrupt one in explorer links.
func sanitizeLegacyHash(wallet, hash string) string {
	if hash == "" || utils.ValidateTxHash(hash) {
		return hash
	}
	slog.Warn("Dropping malformed legacy tx hash",
		slog.String("type", "db"),
		slog.String("wallet", wallet),
		slog.String("tx_hash", utils.SanitizeForLogging(hash, 80)))
	return ""
}

// parseLegacyTime accepts the timestamp shapes SQLite's DATETIME
// affinity actually produced in the old database.
func parseLegacyTime(s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
