package xrpl

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/textrp/faucetbot/faucetbot/faucet"
)

const (
	defaultRequestTimeout = 10 * time.Second
	accountCacheSize      = 256
	accountCacheTTL       = 10 * time.Second
	maxRPCRetries         = 3
)

// NFTCollection identifies an allow-listed NFT collection by its
// issuer and taxon.
type NFTCollection struct {
	Issuer string `toml:"issuer"`
	Taxon  int64  `toml:"taxon"`
}

type Config struct {
	RPCURL        string          `toml:"rpc_url"`
	Network       string          `toml:"network"`
	ExplorerURL   string          `toml:"explorer_url"`
	FaucetAddress string          `toml:"faucet_address"`
	FaucetSeed    string          `toml:"faucet_seed"`
	NFTAllowList  []NFTCollection `toml:"nft_allow_list"`
}

// Client talks JSON-RPC to a rippled server. It satisfies the faucet
// package's balance, trust-line, NFT-count and payment interfaces.
type Client struct {
	httpClient *http.Client
	cfg        Config
	cache      *lru.Cache
}

type cacheEntry struct {
	raw       string
	expiresAt time.Time
}

func NewClient(cfg Config) *Client {
	cache, _ := lru.New(accountCacheSize)
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		cfg:        cfg,
		cache:      cache,
	}
}

// request performs one JSON-RPC call with retries on transport
// failures. Application-level rippled errors are not retried.
func (c *Client) request(ctx context.Context, method string, params map[string]interface{}) (gjson.Result, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"method": method,
		"params": []interface{}{params},
	})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	var result gjson.Result
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.RPCURL, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			return err
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("rippled returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("rippled returned status %d", resp.StatusCode))
		}

		body := buf.String()
		res := gjson.Get(body, "result")
		if res.Get("status").String() == "error" {
			// Application errors (actNotFound etc.) won't change on retry.
			return backoff.Permanent(&rpcError{
				Code:    res.Get("error").String(),
				Message: res.Get("error_message").String(),
			})
		}

		result = res
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRPCRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return gjson.Result{}, err
	}
	return result, nil
}

type rpcError struct {
	Code    string
	Message string
}

func (e *rpcError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rippled error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("rippled error %s", e.Code)
}

func isAccountNotFound(err error) bool {
	var rpcErr *rpcError
	return errors.As(err, &rpcErr) && rpcErr.Code == "actNotFound"
}

// accountInfo fetches account_info for address, serving repeat lookups
// from a short-lived cache. Status commands hammer the same accounts;
// claim-critical callers tolerate the 10s staleness because the
// cooldown is measured in hours.
func (c *Client) accountInfo(ctx context.Context, address string) (gjson.Result, error) {
	key := "account_info:" + address
	if entry, ok := c.cache.Get(key); ok {
		cached := entry.(cacheEntry)
		if time.Now().Before(cached.expiresAt) {
			return gjson.Parse(cached.raw), nil
		}
		c.cache.Remove(key)
	}

	result, err := c.request(ctx, "account_info", map[string]interface{}{
		"account":      address,
		"ledger_index": "validated",
	})
	if err != nil {
		return gjson.Result{}, err
	}

	c.cache.Add(key, cacheEntry{raw: result.Raw, expiresAt: time.Now().Add(accountCacheTTL)})
	return result, nil
}

// GetBalance returns the native XRP balance. found is false for
// unfunded accounts; the faucet treats that as "could not determine",
// not as zero.
func (c *Client) GetBalance(ctx context.Context, wallet string) (decimal.Decimal, bool, error) {
	result, err := c.accountInfo(ctx, wallet)
	if err != nil {
		if isAccountNotFound(err) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	drops := result.Get("account_data.Balance").String()
	if drops == "" {
		return decimal.Zero, false, nil
	}

	xrp, err := DropsToXRP(drops)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("bad balance %q: %w", drops, err)
	}
	return xrp, true, nil
}

// TokenBalance is one issued-currency position on a trust line.
type TokenBalance struct {
	Currency string
	Issuer   string
	Balance  decimal.Decimal
	Limit    decimal.Decimal
}

// GetTrustLines returns all trust lines for an account.
func (c *Client) GetTrustLines(ctx context.Context, wallet string) ([]TokenBalance, error) {
	result, err := c.request(ctx, "account_lines", map[string]interface{}{
		"account":      wallet,
		"ledger_index": "validated",
		"limit":        200,
	})
	if err != nil {
		if isAccountNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var lines []TokenBalance
	for _, line := range result.Get("lines").Array() {
		balance, err := decimal.NewFromString(line.Get("balance").String())
		if err != nil {
			continue
		}
		limit, _ := decimal.NewFromString(line.Get("limit").String())
		lines = append(lines, TokenBalance{
			Currency: line.Get("currency").String(),
			Issuer:   line.Get("account").String(),
			Balance:  balance,
			Limit:    limit,
		})
	}
	return lines, nil
}

// CheckTrustLine reports the trust line for currency/issuer, or nil if
// the wallet has none.
func (c *Client) CheckTrustLine(ctx context.Context, wallet, currency, issuer string) (*faucet.TrustLine, error) {
	lines, err := c.GetTrustLines(ctx, wallet)
	if err != nil {
		return nil, err
	}

	want := NormalizeCurrency(currency)
	for _, line := range lines {
		if NormalizeCurrency(line.Currency) == want && line.Issuer == issuer {
			return &faucet.TrustLine{
				Currency: want,
				Issuer:   line.Issuer,
				Balance:  line.Balance,
				Limit:    line.Limit,
			}, nil
		}
	}
	return nil, nil
}

// CountMatchingNFTs counts NFTs owned by wallet whose (issuer, taxon)
// pair appears in the configured allow-list.
func (c *Client) CountMatchingNFTs(ctx context.Context, wallet string) (int, error) {
	if len(c.cfg.NFTAllowList) == 0 {
		return 0, nil
	}

	result, err := c.request(ctx, "account_nfts", map[string]interface{}{
		"account":      wallet,
		"ledger_index": "validated",
		"limit":        400,
	})
	if err != nil {
		if isAccountNotFound(err) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, nft := range result.Get("account_nfts").Array() {
		issuer := nft.Get("Issuer").String()
		taxon := nft.Get("NFTokenTaxon").Int()
		for _, allowed := range c.cfg.NFTAllowList {
			if issuer == allowed.Issuer && taxon == allowed.Taxon {
				count++
				break
			}
		}
	}
	return count, nil
}

// GetServerInfo returns rippled's server_info block, used by the
// connectivity check at startup.
func (c *Client) GetServerInfo(ctx context.Context) (gjson.Result, error) {
	result, err := c.request(ctx, "server_info", map[string]interface{}{})
	if err != nil {
		return gjson.Result{}, err
	}
	return result.Get("info"), nil
}

// Ping verifies the RPC endpoint answers.
func (c *Client) Ping(ctx context.Context) error {
	info, err := c.GetServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("xrpl server unreachable: %w", err)
	}
	slog.Info("Connected to XRPL",
		slog.String("type", "xrpl"),
		slog.String("network", c.cfg.Network),
		slog.String("build_version", info.Get("build_version").String()),
	)
	return nil
}

// NormalizeCurrency maps 160-bit hex currency codes back to their
// ASCII form; short codes pass through unchanged.
func NormalizeCurrency(code string) string {
	if len(code) != 40 {
		return code
	}
	raw, err := hex.DecodeString(code)
	if err != nil {
		return code
	}
	trimmed := strings.TrimRight(string(raw), "\x00")
	for _, r := range trimmed {
		if r < 0x20 || r > 0x7e {
			return code
		}
	}
	if trimmed == "" {
		return code
	}
	return trimmed
}
