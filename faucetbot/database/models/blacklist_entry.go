package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BlacklistEntry bans a wallet from the faucet. Row presence is
// authoritative; removal deletes the row outright.
type BlacklistEntry struct {
	bun.BaseModel `bun:"table:blacklist,alias:bl"`

	Wallet        string    `bun:"wallet,pk"`
	Reason        string    `bun:"reason"`
	BlacklistedAt time.Time `bun:"blacklisted_at,notnull"`
	BlacklistedBy string    `bun:"blacklisted_by,notnull,default:'system'"`
}
