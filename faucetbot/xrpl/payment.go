package xrpl

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"log/slog"

	"github.com/textrp/faucetbot/faucetbot/faucet"
)

// SendPayment submits an issued-currency payment from the faucet
// wallet. Signing is delegated to rippled's sign-and-submit mode; the
// bot never handles key material beyond passing the configured seed
// through to the server it trusts.
func (c *Client) SendPayment(ctx context.Context, req faucet.PaymentRequest) (*faucet.PaymentResult, error) {
	if c.cfg.FaucetSeed == "" || c.cfg.FaucetAddress == "" {
		return nil, fmt.Errorf("faucet wallet is not configured")
	}

	txJSON := map[string]interface{}{
		"TransactionType": "Payment",
		"Account":         c.cfg.FaucetAddress,
		"Destination":     req.Destination,
		"Amount": map[string]interface{}{
			"currency": req.Currency,
			"issuer":   req.Issuer,
			"value":    req.Amount.String(),
		},
	}
	if req.Memo != "" {
		txJSON["Memos"] = []map[string]interface{}{
			{
				"Memo": map[string]interface{}{
					"MemoData": encodeMemo(req.Memo),
				},
			},
		}
	}

	result, err := c.request(ctx, "submit", map[string]interface{}{
		"secret":  c.cfg.FaucetSeed,
		"tx_json": txJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("payment submission failed: %w", err)
	}

	engineResult := result.Get("engine_result").String()
	if engineResult != "tesSUCCESS" {
		return nil, fmt.Errorf("payment rejected: %s (%s)",
			engineResult, result.Get("engine_result_message").String())
	}

	txHash := result.Get("tx_json.hash").String()
	slog.Info("Payment submitted",
		slog.String("type", "xrpl"),
		slog.String("destination", req.Destination),
		slog.String("amount", req.Amount.String()),
		slog.String("currency", req.Currency),
		slog.String("tx_hash", txHash),
	)

	return &faucet.PaymentResult{
		TxHash:      txHash,
		ExplorerURL: c.ExplorerTxURL(txHash),
	}, nil
}

// ExplorerTxURL builds a block-explorer link for a transaction hash.
func (c *Client) ExplorerTxURL(txHash string) string {
	base := strings.TrimSuffix(c.cfg.ExplorerURL, "/")
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s/transactions/%s", base, txHash)
}

func encodeMemo(memo string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(memo)))
}
