package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
)

const lookupTimeout = 15 * time.Second

// TrustHandler checks whether the sender holds a trust line for the
// faucet token.
func TrustHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		if cmd.Wallet == "" || !xrpl.IsValidAddress(cmd.Wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Could not extract a valid wallet address from your account.")
		}

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		currency := b.Cfg.Faucet.CurrencyCode
		issuer := b.Cfg.Faucet.TokenIssuer

		line, err := b.XRPL.CheckTrustLine(ctx, cmd.Wallet, currency, issuer)
		if err != nil {
			return fmt.Errorf("trust line check failed: %w", err)
		}

		if line == nil {
			msg := fmt.Sprintf(`You do **not** have a trust line for %s tokens yet.

To receive faucet tokens, set one up first:
- Currency: %s
- Issuer: %s`, currency, currency, issuer)
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID, msg)
		}

		msg := fmt.Sprintf(`**Trust line found for %s**

**Balance:** %s %s
**Limit:** %s

You are ready to claim from the faucet.`,
			currency, line.Balance.String(), currency, line.Limit.String())
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, msg)
	}
}

// TrustDebugHandler lists every trust line on the sender's account,
// for diagnosing issuer or currency-code mismatches.
func TrustDebugHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		if cmd.Wallet == "" || !xrpl.IsValidAddress(cmd.Wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Could not extract a valid wallet address from your account.")
		}

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		lines, err := b.XRPL.GetTrustLines(ctx, cmd.Wallet)
		if err != nil {
			return fmt.Errorf("trust line lookup failed: %w", err)
		}

		if len(lines) == 0 {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Your account has no trust lines at all.")
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "**Trust lines for `%s`** (%d total)\n\n", cmd.Wallet, len(lines))
		fmt.Fprintf(&sb, "Looking for currency `%s` issued by `%s`.\n\n",
			b.Cfg.Faucet.CurrencyCode, b.Cfg.Faucet.TokenIssuer)
		for _, line := range lines {
			fmt.Fprintf(&sb, "- `%s` from `%s`: balance %s, limit %s\n",
				xrpl.NormalizeCurrency(line.Currency), line.Issuer,
				line.Balance.String(), line.Limit.String())
		}
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, sb.String())
	}
}
