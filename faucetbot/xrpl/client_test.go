package xrpl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/textrp/faucetbot/faucetbot/faucet"
)

func paymentRequest(destination, amount string) faucet.PaymentRequest {
	return faucet.PaymentRequest{
		Destination: destination,
		Amount:      decimal.RequireFromString(amount),
		Currency:    "TXT",
		Issuer:      "rIssuer",
		Memo:        "Daily faucet claim - 2026-03-01",
	}
}

// fakeRippled answers each JSON-RPC method with a canned result body.
func fakeRippled(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		body, ok := responses[req.Method]
		if !ok {
			t.Errorf("unexpected method %q", req.Method)
			http.Error(w, "unknown method", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":` + body + `}`))
	}))
}

func TestGetBalance(t *testing.T) {
	srv := fakeRippled(t, map[string]string{
		"account_info": `{"status":"success","account_data":{"Balance":"25000000"}}`,
	})
	defer srv.Close()

	c := NewClient(Config{RPCURL: srv.URL})
	balance, found, err := c.GetBalance(context.Background(), "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if !found {
		t.Fatal("GetBalance() found = false for funded account")
	}
	if balance.String() != "25" {
		t.Errorf("GetBalance() = %s, want 25", balance.String())
	}
}

func TestGetBalance_UnfundedAccount(t *testing.T) {
	srv := fakeRippled(t, map[string]string{
		"account_info": `{"status":"error","error":"actNotFound","error_message":"Account not found."}`,
	})
	defer srv.Close()

	c := NewClient(Config{RPCURL: srv.URL})
	_, found, err := c.GetBalance(context.Background(), "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	if err != nil {
		t.Fatalf("GetBalance() error = %v, want nil for unfunded account", err)
	}
	if found {
		t.Error("GetBalance() found = true for unfunded account")
	}
}

func TestGetBalance_CachesAccountInfo(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"result":{"status":"success","account_data":{"Balance":"1000000"}}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{RPCURL: srv.URL})
	for i := 0; i < 3; i++ {
		if _, _, err := c.GetBalance(context.Background(), "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"); err != nil {
			t.Fatalf("GetBalance() error = %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("rippled saw %d account_info calls, want 1 (cached)", calls)
	}
}

func TestCheckTrustLine(t *testing.T) {
	srv := fakeRippled(t, map[string]string{
		"account_lines": `{"status":"success","lines":[
			{"account":"rIssuer1","currency":"USD","balance":"10","limit":"100"},
			{"account":"rIssuer2","currency":"5458540000000000000000000000000000000000","balance":"42.5","limit":"1000000"}
		]}`,
	})
	defer srv.Close()

	c := NewClient(Config{RPCURL: srv.URL})

	line, err := c.CheckTrustLine(context.Background(), "rWallet", "TXT", "rIssuer2")
	if err != nil {
		t.Fatalf("CheckTrustLine() error = %v", err)
	}
	if line == nil {
		t.Fatal("CheckTrustLine() = nil, want hex-encoded TXT line found")
	}
	if line.Balance.String() != "42.5" {
		t.Errorf("CheckTrustLine() balance = %s, want 42.5", line.Balance.String())
	}

	line, err = c.CheckTrustLine(context.Background(), "rWallet", "TXT", "rOtherIssuer")
	if err != nil {
		t.Fatalf("CheckTrustLine() error = %v", err)
	}
	if line != nil {
		t.Error("CheckTrustLine() found a line for the wrong issuer")
	}
}

func TestCountMatchingNFTs(t *testing.T) {
	srv := fakeRippled(t, map[string]string{
		"account_nfts": `{"status":"success","account_nfts":[
			{"Issuer":"rCollection1","NFTokenTaxon":7},
			{"Issuer":"rCollection1","NFTokenTaxon":7},
			{"Issuer":"rCollection1","NFTokenTaxon":8},
			{"Issuer":"rSomeoneElse","NFTokenTaxon":7}
		]}`,
	})
	defer srv.Close()

	c := NewClient(Config{
		RPCURL:       srv.URL,
		NFTAllowList: []NFTCollection{{Issuer: "rCollection1", Taxon: 7}},
	})
	count, err := c.CountMatchingNFTs(context.Background(), "rWallet")
	if err != nil {
		t.Fatalf("CountMatchingNFTs() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountMatchingNFTs() = %d, want 2", count)
	}
}

func TestCountMatchingNFTs_EmptyAllowListSkipsLookup(t *testing.T) {
	c := NewClient(Config{RPCURL: "http://127.0.0.1:1"}) // unreachable on purpose
	count, err := c.CountMatchingNFTs(context.Background(), "rWallet")
	if err != nil {
		t.Fatalf("CountMatchingNFTs() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountMatchingNFTs() = %d, want 0", count)
	}
}

func TestSendPayment(t *testing.T) {
	var submitted gjson.Result
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		submitted = gjson.ParseBytes(body)
		_, _ = w.Write([]byte(`{"result":{"status":"success","engine_result":"tesSUCCESS","tx_json":{"hash":"DEADBEEF"}}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{
		RPCURL:        srv.URL,
		ExplorerURL:   "https://explorer.example.org/",
		FaucetAddress: "rFaucet",
		FaucetSeed:    "sSeed",
	})
	result, err := c.SendPayment(context.Background(), paymentRequest("rDest", "150"))
	if err != nil {
		t.Fatalf("SendPayment() error = %v", err)
	}
	if result.TxHash != "DEADBEEF" {
		t.Errorf("SendPayment() tx hash = %s", result.TxHash)
	}
	if result.ExplorerURL != "https://explorer.example.org/transactions/DEADBEEF" {
		t.Errorf("SendPayment() explorer url = %s", result.ExplorerURL)
	}

	tx := submitted.Get("params.0.tx_json")
	if tx.Get("TransactionType").String() != "Payment" {
		t.Errorf("submitted tx type = %s", tx.Get("TransactionType").String())
	}
	if tx.Get("Amount.value").String() != "150" {
		t.Errorf("submitted amount = %s, want 150", tx.Get("Amount.value").String())
	}
	if tx.Get("Memos.0.Memo.MemoData").String() == "" {
		t.Error("submitted tx is missing the memo")
	}
}

func TestSendPayment_EngineRejection(t *testing.T) {
	srv := fakeRippled(t, map[string]string{
		"submit": `{"status":"success","engine_result":"tecPATH_DRY","engine_result_message":"Path could not send partial amount."}`,
	})
	defer srv.Close()

	c := NewClient(Config{RPCURL: srv.URL, FaucetAddress: "rFaucet", FaucetSeed: "sSeed"})
	if _, err := c.SendPayment(context.Background(), paymentRequest("rDest", "100")); err == nil {
		t.Error("SendPayment() error = nil, want engine rejection")
	}
}

func TestSendPayment_UnconfiguredWallet(t *testing.T) {
	c := NewClient(Config{RPCURL: "http://127.0.0.1:1"})
	if _, err := c.SendPayment(context.Background(), paymentRequest("rDest", "100")); err == nil {
		t.Error("SendPayment() error = nil, want unconfigured wallet error")
	}
}

func TestEncodeMemo(t *testing.T) {
	if got := encodeMemo("hi"); got != "6869" {
		t.Errorf("encodeMemo(hi) = %s, want 6869", got)
	}
}
