package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// FaucetStatsID is the primary key of the singleton stats row.
const FaucetStatsID = 1

// FaucetStats is the singleton aggregate row, updated in the same
// transaction as each claim so it never disagrees with the claims table.
type FaucetStats struct {
	bun.BaseModel `bun:"table:faucet_stats,alias:fs"`

	ID               int             `bun:"id,pk"`
	TotalClaims      int64           `bun:"total_claims,notnull,default:0"`
	TotalDistributed decimal.Decimal `bun:"total_distributed,type:numeric,notnull"`
	UniqueWallets    int64           `bun:"unique_wallets,notnull,default:0"`
	LastUpdated      time.Time       `bun:"last_updated,notnull,default:current_timestamp"`
}
