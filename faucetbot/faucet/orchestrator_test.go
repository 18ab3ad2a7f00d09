package faucet_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/textrp/faucetbot/faucetbot/database/repositories"
	"github.com/textrp/faucetbot/faucetbot/faucet"
	"github.com/textrp/faucetbot/faucetbot/faucet/mock"
	"go.uber.org/mock/gomock"
)

func testConfig() faucet.Config {
	return faucet.Config{
		Cooldown:      24 * time.Hour,
		BaseAmount:    100,
		MinXRPBalance: decimal.RequireFromString("0.1"),
		Currency:      "TXT",
		Issuer:        "rIssuerTestAddressXXXXXXXXXXXXXXXX",
	}
}

type collaborators struct {
	ledger   *mock.MockLedger
	balances *mock.MockBalanceSource
	trust    *mock.MockTrustLineSource
	nfts     *mock.MockNFTCounter
	payments *mock.MockPaymentSender
}

func newCollaborators(t *testing.T) collaborators {
	ctrl := gomock.NewController(t)
	return collaborators{
		ledger:   mock.NewMockLedger(ctrl),
		balances: mock.NewMockBalanceSource(ctrl),
		trust:    mock.NewMockTrustLineSource(ctrl),
		nfts:     mock.NewMockNFTCounter(ctrl),
		payments: mock.NewMockPaymentSender(ctrl),
	}
}

func newOrchestrator(c collaborators) *faucet.Orchestrator {
	return faucet.NewOrchestrator(testConfig(), c.ledger, c.balances, c.trust, c.nfts, c.payments)
}

// expectEligible primes the ledger for a wallet that has never claimed
// and is not blacklisted.
func expectEligible(c collaborators) {
	c.ledger.EXPECT().
		IsBlacklisted(gomock.Any(), testWallet).
		Return(false, nil).
		AnyTimes()
	c.ledger.EXPECT().
		GetClaimRecord(gomock.Any(), testWallet).
		Return(nil, repositories.ErrNoClaimRecord).
		AnyTimes()
}

func TestClaim_Success(t *testing.T) {
	c := newCollaborators(t)
	expectEligible(c)
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		Return(decimal.RequireFromString("25"), true, nil)
	c.trust.EXPECT().
		CheckTrustLine(gomock.Any(), testWallet, "TXT", gomock.Any()).
		Return(&faucet.TrustLine{Currency: "TXT"}, nil)
	c.nfts.EXPECT().
		CountMatchingNFTs(gomock.Any(), testWallet).
		Return(0, nil)
	c.payments.EXPECT().
		SendPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req faucet.PaymentRequest) (*faucet.PaymentResult, error) {
			if req.Destination != testWallet {
				t.Errorf("SendPayment destination = %s", req.Destination)
			}
			if req.Amount.String() != "100" {
				t.Errorf("SendPayment amount = %s, want 100", req.Amount.String())
			}
			if !strings.HasPrefix(req.Memo, "Daily faucet claim - ") {
				t.Errorf("SendPayment memo = %q", req.Memo)
			}
			return &faucet.PaymentResult{TxHash: "ABC123", ExplorerURL: "https://example.org/transactions/ABC123"}, nil
		})
	c.ledger.EXPECT().
		RecordClaim(gomock.Any(), testWallet, gomock.Any(), "ABC123").
		Return(nil)

	outcome := newOrchestrator(c).Claim(context.Background(), testWallet)
	if outcome.Kind != faucet.OutcomeSuccess {
		t.Fatalf("Claim() kind = %v, reason %q, err %v", outcome.Kind, outcome.Reason, outcome.Err)
	}
	if outcome.Amount.String() != "100" {
		t.Errorf("Claim() amount = %s, want 100", outcome.Amount.String())
	}
	if outcome.TxHash != "ABC123" {
		t.Errorf("Claim() tx hash = %s", outcome.TxHash)
	}
}

func TestClaim_NFTBonusIncreasesAmount(t *testing.T) {
	c := newCollaborators(t)
	expectEligible(c)
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		Return(decimal.RequireFromString("25"), true, nil)
	c.trust.EXPECT().
		CheckTrustLine(gomock.Any(), testWallet, "TXT", gomock.Any()).
		Return(&faucet.TrustLine{Currency: "TXT"}, nil)
	c.nfts.EXPECT().
		CountMatchingNFTs(gomock.Any(), testWallet).
		Return(3, nil)
	c.payments.EXPECT().
		SendPayment(gomock.Any(), gomock.Any()).
		Return(&faucet.PaymentResult{TxHash: "DEF456"}, nil)
	c.ledger.EXPECT().
		RecordClaim(gomock.Any(), testWallet, gomock.Any(), "DEF456").
		Return(nil)

	outcome := newOrchestrator(c).Claim(context.Background(), testWallet)
	if outcome.Kind != faucet.OutcomeSuccess {
		t.Fatalf("Claim() kind = %v", outcome.Kind)
	}
	if outcome.Amount.String() != "300" {
		t.Errorf("Claim() amount = %s, want 300 for 3 NFTs", outcome.Amount.String())
	}
}

func TestClaim_InsufficientXRPDenied(t *testing.T) {
	c := newCollaborators(t)
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		Return(decimal.RequireFromString("0.05"), true, nil)

	outcome := newOrchestrator(c).Claim(context.Background(), testWallet)
	if outcome.Kind != faucet.OutcomeDenied {
		t.Fatalf("Claim() kind = %v, want denied", outcome.Kind)
	}
	if !strings.Contains(outcome.Reason, "You need at least 0.1 XRP") {
		t.Errorf("Claim() reason = %q", outcome.Reason)
	}
}

func TestClaim_BalanceNotFoundDenied(t *testing.T) {
	c := newCollaborators(t)
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		Return(decimal.Zero, false, nil)

	outcome := newOrchestrator(c).Claim(context.Background(), testWallet)
	if outcome.Kind != faucet.OutcomeDenied {
		t.Fatalf("Claim() kind = %v, want denied", outcome.Kind)
	}
	if !strings.Contains(outcome.Reason, "Could not determine your XRP balance") {
		t.Errorf("Claim() reason = %q", outcome.Reason)
	}
}

func TestClaim_MissingTrustLineDenied(t *testing.T) {
	c := newCollaborators(t)
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		Return(decimal.RequireFromString("25"), true, nil)
	c.trust.EXPECT().
		CheckTrustLine(gomock.Any(), testWallet, "TXT", gomock.Any()).
		Return(nil, nil)

	outcome := newOrchestrator(c).Claim(context.Background(), testWallet)
	if outcome.Kind != faucet.OutcomeDenied {
		t.Fatalf("Claim() kind = %v, want denied", outcome.Kind)
	}
	if !strings.Contains(outcome.Reason, "trust line") {
		t.Errorf("Claim() reason = %q", outcome.Reason)
	}
}

func TestClaim_PaymentFailureDoesNotRecord(t *testing.T) {
	c := newCollaborators(t)
	expectEligible(c)
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		Return(decimal.RequireFromString("25"), true, nil)
	c.trust.EXPECT().
		CheckTrustLine(gomock.Any(), testWallet, "TXT", gomock.Any()).
		Return(&faucet.TrustLine{Currency: "TXT"}, nil)
	c.nfts.EXPECT().
		CountMatchingNFTs(gomock.Any(), testWallet).
		Return(0, nil)
	c.payments.EXPECT().
		SendPayment(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("tecPATH_DRY"))
	// No RecordClaim expectation: recording a failed payment would be a bug.

	outcome := newOrchestrator(c).Claim(context.Background(), testWallet)
	if outcome.Kind != faucet.OutcomeFailed {
		t.Fatalf("Claim() kind = %v, want failed", outcome.Kind)
	}
	if outcome.Err == nil {
		t.Error("Claim() err = nil, want payment error")
	}
}

func TestClaim_RecordFailureStillSuccess(t *testing.T) {
	c := newCollaborators(t)
	expectEligible(c)
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		Return(decimal.RequireFromString("25"), true, nil)
	c.trust.EXPECT().
		CheckTrustLine(gomock.Any(), testWallet, "TXT", gomock.Any()).
		Return(&faucet.TrustLine{Currency: "TXT"}, nil)
	c.nfts.EXPECT().
		CountMatchingNFTs(gomock.Any(), testWallet).
		Return(0, nil)
	c.payments.EXPECT().
		SendPayment(gomock.Any(), gomock.Any()).
		Return(&faucet.PaymentResult{TxHash: "GHI789"}, nil)
	c.ledger.EXPECT().
		RecordClaim(gomock.Any(), testWallet, gomock.Any(), "GHI789").
		Return(errors.New("connection reset"))

	// The payment went out; the user must still see their tx hash.
	outcome := newOrchestrator(c).Claim(context.Background(), testWallet)
	if outcome.Kind != faucet.OutcomeSuccess {
		t.Fatalf("Claim() kind = %v, want success despite record failure", outcome.Kind)
	}
	if outcome.TxHash != "GHI789" {
		t.Errorf("Claim() tx hash = %s", outcome.TxHash)
	}
}

func TestClaim_ConcurrentSameWalletSingleWinner(t *testing.T) {
	c := newCollaborators(t)
	expectEligible(c)

	entered := make(chan struct{})
	release := make(chan struct{})
	c.balances.EXPECT().
		GetBalance(gomock.Any(), testWallet).
		DoAndReturn(func(_ context.Context, _ string) (decimal.Decimal, bool, error) {
			// Hold the wallet lock until the colliding attempt has run.
			close(entered)
			<-release
			return decimal.RequireFromString("25"), true, nil
		})
	c.trust.EXPECT().
		CheckTrustLine(gomock.Any(), testWallet, "TXT", gomock.Any()).
		Return(&faucet.TrustLine{Currency: "TXT"}, nil)
	c.nfts.EXPECT().
		CountMatchingNFTs(gomock.Any(), testWallet).
		Return(0, nil)
	c.payments.EXPECT().
		SendPayment(gomock.Any(), gomock.Any()).
		Return(&faucet.PaymentResult{TxHash: "JKL012"}, nil)
	c.ledger.EXPECT().
		RecordClaim(gomock.Any(), testWallet, gomock.Any(), "JKL012").
		Return(nil)

	o := newOrchestrator(c)

	var wg sync.WaitGroup
	first := make(chan faucet.ClaimOutcome, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first <- o.Claim(context.Background(), testWallet)
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first claim never reached the balance lookup")
	}

	// The second attempt must bounce off the held wallet lock.
	second := o.Claim(context.Background(), testWallet)
	if second.Kind != faucet.OutcomeDenied {
		t.Fatalf("concurrent claim kind = %v, want denied", second.Kind)
	}
	if !strings.Contains(second.Reason, "already being processed") {
		t.Errorf("concurrent claim reason = %q", second.Reason)
	}

	close(release)
	wg.Wait()
	if outcome := <-first; outcome.Kind != faucet.OutcomeSuccess {
		t.Errorf("first claim kind = %v, want success", outcome.Kind)
	}
}
