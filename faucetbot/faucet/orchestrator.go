package faucet

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

// Config carries the claim policy. It is built once at startup and
// passed in explicitly; the faucet core has no ambient state.
type Config struct {
	Cooldown      time.Duration
	BaseAmount    int64
	MinXRPBalance decimal.Decimal
	Currency      string
	Issuer        string
}

// Orchestrator runs a claim attempt end to end. It is the only
// component allowed to invoke the payment sender, and it holds the
// per-wallet lock across the whole sequence so two concurrent attempts
// for the same wallet cannot both pass the eligibility check.
type Orchestrator struct {
	cfg       Config
	ledger    Ledger
	evaluator *Evaluator
	balances  BalanceSource
	trust     TrustLineSource
	nfts      NFTCounter
	payments  PaymentSender

	locks sync.Map // wallet -> *semaphore.Weighted(1)
}

func NewOrchestrator(cfg Config, ledger Ledger, balances BalanceSource, trust TrustLineSource, nfts NFTCounter, payments PaymentSender) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		ledger:    ledger,
		evaluator: NewEvaluator(ledger, cfg.Cooldown),
		balances:  balances,
		trust:     trust,
		nfts:      nfts,
		payments:  payments,
	}
}

// Evaluator exposes the eligibility rules for read-only status
// commands.
func (o *Orchestrator) Evaluator() *Evaluator {
	return o.evaluator
}

func (o *Orchestrator) walletLock(wallet string) *semaphore.Weighted {
	sem, _ := o.locks.LoadOrStore(wallet, semaphore.NewWeighted(1))
	return sem.(*semaphore.Weighted)
}

// Claim attempts a single faucet claim for wallet. Every collaborator
// fault is translated into a Denied or Failed outcome here; no raw
// error type escapes to the chat layer.
func (o *Orchestrator) Claim(ctx context.Context, wallet string) ClaimOutcome {
	sem := o.walletLock(wallet)
	if !sem.TryAcquire(1) {
		// Another attempt for this wallet is in flight.
		return Denied("A claim for this wallet is already being processed. Please try again shortly.")
	}
	defer sem.Release(1)

	balance, found, err := o.balances.GetBalance(ctx, wallet)
	if err != nil {
		return Failed(fmt.Errorf("balance lookup failed: %w", err))
	}
	if !found {
		return Denied("Could not determine your XRP balance. Please try again later.")
	}
	if balance.LessThan(o.cfg.MinXRPBalance) {
		return Denied(fmt.Sprintf("You need at least %s XRP to claim. Your wallet needs XRP for transaction fees.", o.cfg.MinXRPBalance.String()))
	}

	line, err := o.trust.CheckTrustLine(ctx, wallet, o.cfg.Currency, o.cfg.Issuer)
	if err != nil {
		return Failed(fmt.Errorf("trust line lookup failed: %w", err))
	}
	if line == nil {
		return Denied(fmt.Sprintf("You need to set up a trust line for %s tokens first. Currency: %s, Issuer: %s", o.cfg.Currency, o.cfg.Currency, o.cfg.Issuer))
	}

	decision, err := o.evaluator.Evaluate(ctx, wallet, time.Now())
	if err != nil {
		return Failed(fmt.Errorf("eligibility check failed: %w", err))
	}
	if !decision.Eligible {
		return Denied(decision.Reason)
	}

	nftCount, err := o.nfts.CountMatchingNFTs(ctx, wallet)
	if err != nil {
		return Failed(fmt.Errorf("NFT count lookup failed: %w", err))
	}

	amount := ComputeReward(o.cfg.BaseAmount, nftCount)

	result, err := o.payments.SendPayment(ctx, PaymentRequest{
		Destination: wallet,
		Amount:      amount,
		Currency:    o.cfg.Currency,
		Issuer:      o.cfg.Issuer,
		Memo:        fmt.Sprintf("Daily faucet claim - %s", time.Now().Format("2006-01-02")),
	})
	if err != nil {
		// Nothing was recorded; the caller just sees a failed claim.
		return Failed(fmt.Errorf("payment failed: %w", err))
	}

	if err := o.ledger.RecordClaim(ctx, wallet, amount, result.TxHash); err != nil {
		// The payment is on chain and cannot be undone; keep the tx
		// hash visible for manual reconciliation.
		slog.Error("Claim paid but not recorded, manual reconciliation required",
			slog.String("type", "error"),
			slog.String("wallet", wallet),
			slog.String("tx_hash", result.TxHash),
			slog.String("amount", amount.String()),
			slog.Any("error", err),
		)
	}

	slog.Info("Faucet claim completed",
		slog.String("type", "cmd"),
		slog.String("wallet", wallet),
		slog.String("amount", amount.String()),
		slog.Int("nft_count", nftCount),
		slog.String("tx_hash", result.TxHash),
	)

	return Success(amount, result.TxHash, result.ExplorerURL)
}
