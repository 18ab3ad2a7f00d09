package faucet

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/textrp/faucetbot/faucetbot/database/models"
)

//go:generate mockgen -source=collaborators.go -destination=mock/collaborators.go -package=mock

// Ledger is the slice of the claim ledger the faucet core needs. The
// repository behind it owns the tables; nothing here mutates storage
// except RecordClaim.
type Ledger interface {
	GetClaimRecord(ctx context.Context, wallet string) (*models.ClaimRecord, error)
	IsBlacklisted(ctx context.Context, wallet string) (bool, error)
	RecordClaim(ctx context.Context, wallet string, amount decimal.Decimal, txHash string) error
}

// BalanceSource reports the native XRP balance of a wallet. found is
// false when the balance could not be determined; that is a denial,
// not a zero balance.
type BalanceSource interface {
	GetBalance(ctx context.Context, wallet string) (balance decimal.Decimal, found bool, err error)
}

// TrustLine is an on-ledger authorization to hold an issued currency.
type TrustLine struct {
	Currency string
	Issuer   string
	Balance  decimal.Decimal
	Limit    decimal.Decimal
}

// TrustLineSource checks whether a wallet holds a trust line for the
// given currency/issuer pair. A nil TrustLine means absent.
type TrustLineSource interface {
	CheckTrustLine(ctx context.Context, wallet, currency, issuer string) (*TrustLine, error)
}

// NFTCounter counts NFTs owned by the wallet whose (issuer, taxon)
// pair appears in the configured allow-list.
type NFTCounter interface {
	CountMatchingNFTs(ctx context.Context, wallet string) (int, error)
}

type PaymentRequest struct {
	Destination string
	Amount      decimal.Decimal
	Currency    string
	Issuer      string
	Memo        string
}

type PaymentResult struct {
	TxHash      string
	ExplorerURL string
}

// PaymentSender submits the on-chain disbursement. Only the
// orchestrator may call it.
type PaymentSender interface {
	SendPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}
