package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/utils"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
)

// FaucetStatsHandler reports the aggregate claim statistics plus the
// most recent claims. Admin-only.
func FaucetStatsHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		summary, err := b.Reporter.Report(ctx)
		if err != nil {
			return fmt.Errorf("stats report failed: %w", err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "**Faucet Statistics**\n\n")
		fmt.Fprintf(&sb, "**Total claims:** %s\n", utils.FormatNumber(summary.TotalClaims))
		fmt.Fprintf(&sb, "**Total distributed:** %s %s\n", summary.TotalDistributed.String(), b.Cfg.Faucet.CurrencyCode)
		fmt.Fprintf(&sb, "**Unique wallets:** %s\n", utils.FormatNumber(summary.UniqueWallets))
		fmt.Fprintf(&sb, "**Claims in last 24h:** %d\n", summary.ClaimsLast24h)
		fmt.Fprintf(&sb, "**Blacklisted wallets:** %d\n", summary.BlacklistedCount)
		if !summary.LastUpdated.IsZero() {
			fmt.Fprintf(&sb, "**Last updated:** %s\n", summary.LastUpdated.Format("2006-01-02 15:04:05 MST"))
		}

		recent, err := b.FaucetRepository.GetRecentClaims(ctx, 5)
		if err != nil {
			return fmt.Errorf("recent claims lookup failed: %w", err)
		}
		if len(recent) > 0 {
			sb.WriteString("\n**Recent claims:**\n")
			for _, claim := range recent {
				fmt.Fprintf(&sb, "- `%s` claimed %s (total %s over %d claims)\n",
					claim.Wallet, claim.LastClaimAt.Format("2006-01-02 15:04"),
					claim.TotalClaimed.String(), claim.ClaimCount)
			}
		}

		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, sb.String())
	}
}

// FaucetBalanceHandler shows the faucet wallet's own balances so the
// operator can see when it needs a refill. Admin-only.
func FaucetBalanceHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		faucetAddr := b.Cfg.XRPL.FaucetAddress
		if faucetAddr == "" {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID, "The faucet wallet is not configured.")
		}

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		var sb strings.Builder
		fmt.Fprintf(&sb, "**Faucet Wallet `%s`**\n\n", faucetAddr)

		balance, found, err := b.XRPL.GetBalance(ctx, faucetAddr)
		if err != nil {
			return fmt.Errorf("faucet balance lookup failed: %w", err)
		}
		if !found {
			sb.WriteString("Faucet account not found on the ledger.\n")
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID, sb.String())
		}
		fmt.Fprintf(&sb, "**XRP:** %s\n", utils.FormatXRP(balance))

		lines, err := b.XRPL.GetTrustLines(ctx, faucetAddr)
		if err != nil {
			return fmt.Errorf("faucet trust line lookup failed: %w", err)
		}
		for _, line := range lines {
			if xrpl.NormalizeCurrency(line.Currency) == b.Cfg.Faucet.CurrencyCode {
				fmt.Fprintf(&sb, "**%s:** %s\n", b.Cfg.Faucet.CurrencyCode, line.Balance.String())
			}
		}

		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, sb.String())
	}
}

// BotStatsHandler shows in-process command analytics. Admin-only.
func BotStatsHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, b.Analytics.Report())
	}
}
