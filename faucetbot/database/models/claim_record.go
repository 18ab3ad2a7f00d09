package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// ClaimRecord is the one-row-per-wallet claim history. Amounts are
// NUMERIC in the database; float accumulation would drift over many
// claims, so TotalClaimed stays a decimal end to end.
type ClaimRecord struct {
	bun.BaseModel `bun:"table:claims,alias:c"`

	Wallet       string          `bun:"wallet,pk"`
	LastClaimAt  time.Time       `bun:"last_claim_at,notnull"`
	FirstClaimAt time.Time       `bun:"first_claim_at,notnull"`
	ClaimCount   int             `bun:"claim_count,notnull,default:1"`
	TotalClaimed decimal.Decimal `bun:"total_claimed,type:numeric,notnull"`
	LastTxHash   string          `bun:"last_tx_hash"`
}
