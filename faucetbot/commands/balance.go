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

// BalanceHandler shows the sender's native XRP balance.
func BalanceHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		if cmd.Wallet == "" || !xrpl.IsValidAddress(cmd.Wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Could not extract a valid wallet address from your account.")
		}

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		balance, found, err := b.XRPL.GetBalance(ctx, cmd.Wallet)
		if err != nil {
			return fmt.Errorf("balance lookup failed: %w", err)
		}
		if !found {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Your account was not found on the ledger. It may not be activated yet.")
		}

		return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
			fmt.Sprintf("**Balance for `%s`:** %s", cmd.Wallet, utils.FormatXRP(balance)))
	}
}

// WalletHandler shows a summary of the sender's account: XRP balance
// plus all issued-token positions.
func WalletHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		if cmd.Wallet == "" || !xrpl.IsValidAddress(cmd.Wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Could not extract a valid wallet address from your account.")
		}

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		var sb strings.Builder
		fmt.Fprintf(&sb, "**Wallet Summary for `%s`**\n\n", cmd.Wallet)

		balance, found, err := b.XRPL.GetBalance(ctx, cmd.Wallet)
		if err != nil {
			return fmt.Errorf("balance lookup failed: %w", err)
		}
		if !found {
			fmt.Fprintf(&sb, "Account not found on the ledger.\n")
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID, sb.String())
		}
		fmt.Fprintf(&sb, "**XRP:** %s\n", utils.FormatXRP(balance))

		lines, err := b.XRPL.GetTrustLines(ctx, cmd.Wallet)
		if err != nil {
			return fmt.Errorf("trust line lookup failed: %w", err)
		}
		var tokens []string
		for _, line := range lines {
			if line.Balance.IsZero() {
				continue
			}
			tokens = append(tokens, fmt.Sprintf("- %s %s (issuer `%s`)",
				line.Balance.String(), xrpl.NormalizeCurrency(line.Currency), line.Issuer))
		}
		if len(tokens) > 0 {
			fmt.Fprintf(&sb, "\n**Tokens:**\n%s\n", strings.Join(tokens, "\n"))
		}
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, sb.String())
	}
}
