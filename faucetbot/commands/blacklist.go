package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/database/models"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
)

func renderBlacklist(entries []*models.BlacklistEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Blacklisted wallets** (%d)\n\n", len(entries))
	for _, entry := range entries {
		fmt.Fprintf(&sb, "- `%s` - %s (by %s, %s)\n",
			entry.Wallet, entry.Reason, entry.BlacklistedBy,
			entry.BlacklistedAt.Format("2006-01-02"))
	}
	return sb.String()
}

// BlacklistHandler bans a wallet from the faucet. With no arguments it
// lists the current blacklist. Admin-only.
func BlacklistHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		if len(cmd.Args) == 0 {
			entries, err := b.FaucetRepository.GetBlacklist(ctx)
			if err != nil {
				return fmt.Errorf("blacklist lookup failed: %w", err)
			}
			if len(entries) == 0 {
				return b.Matrix.SendMarkdown(ctx, cmd.RoomID, "The blacklist is empty.")
			}
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID, renderBlacklist(entries))
		}

		wallet := cmd.Args[0]
		if !xrpl.IsValidAddress(wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				fmt.Sprintf("`%s` is not a valid XRPL address.", wallet))
		}

		reason := "blacklisted by admin"
		if len(cmd.Args) > 1 {
			reason = strings.Join(cmd.Args[1:], " ")
		}

		if err := b.FaucetRepository.AddToBlacklist(ctx, wallet, reason, cmd.Sender.String()); err != nil {
			return fmt.Errorf("blacklist update failed: %w", err)
		}
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
			fmt.Sprintf("Wallet `%s` has been blacklisted: %s", wallet, reason))
	}
}

// WhitelistHandler removes a wallet from the blacklist. Removing a
// wallet that is not blacklisted succeeds quietly. Admin-only.
func WhitelistHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		if len(cmd.Args) == 0 {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				fmt.Sprintf("Usage: `%swhitelist <address>`", b.Cfg.Bot.CommandPrefix))
		}

		wallet := cmd.Args[0]
		if !xrpl.IsValidAddress(wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				fmt.Sprintf("`%s` is not a valid XRPL address.", wallet))
		}

		if err := b.FaucetRepository.RemoveFromBlacklist(ctx, wallet); err != nil {
			return fmt.Errorf("blacklist removal failed: %w", err)
		}
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
			fmt.Sprintf("Wallet `%s` has been removed from the blacklist.", wallet))
	}
}
