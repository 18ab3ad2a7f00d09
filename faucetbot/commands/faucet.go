package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/faucet"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/utils"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
)

const claimTimeout = 30 * time.Second

// FaucetHandler runs the daily claim for the sender's wallet.
func FaucetHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, claimTimeout)
		defer cancel()

		if cmd.Wallet == "" || !xrpl.IsValidAddress(cmd.Wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Could not extract a valid wallet address from your account.")
		}

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		outcome := b.Orchestrator.Claim(ctx, cmd.Wallet)
		switch outcome.Kind {
		case faucet.OutcomeSuccess:
			msg := fmt.Sprintf(`**Faucet Claim Successful!**

You received **%s %s** tokens!

**Transaction:** %s`,
				outcome.Amount.String(), b.Cfg.Faucet.CurrencyCode, utils.ShortHash(outcome.TxHash))
			if outcome.ExplorerURL != "" {
				msg += fmt.Sprintf("\n**Explorer:** %s", outcome.ExplorerURL)
			}
			msg += fmt.Sprintf("\n\nCome back in %d hours for your next claim!", b.Cfg.Faucet.CooldownHours)
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID, msg)

		case faucet.OutcomeDenied:
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID, "Cannot claim: "+outcome.Reason)

		default:
			// The orchestrator already logged the fault with details.
			return fmt.Errorf("claim failed for %s: %w", cmd.Wallet, outcome.Err)
		}
	}
}
