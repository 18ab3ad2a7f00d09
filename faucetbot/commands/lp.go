package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/faucet"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
)

// LPHandler shows the sender's allow-listed NFT holdings and the
// faucet multiplier they earn, without claiming anything.
func LPHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		if cmd.Wallet == "" || !xrpl.IsValidAddress(cmd.Wallet) {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Could not extract a valid wallet address from your account.")
		}

		b.Matrix.SetTyping(ctx, cmd.RoomID, true)
		defer b.Matrix.SetTyping(ctx, cmd.RoomID, false)

		count, err := b.XRPL.CountMatchingNFTs(ctx, cmd.Wallet)
		if err != nil {
			return fmt.Errorf("NFT count failed: %w", err)
		}

		base := b.Cfg.Faucet.BaseAmount
		multiplier := faucet.RewardMultiplier(count)
		withBonus := faucet.ComputeReward(base, count)
		currency := b.Cfg.Faucet.CurrencyCode

		bonusNote := "(no bonus)"
		if count > 0 {
			bonusNote = "(bonus active)"
		}

		msg := fmt.Sprintf(`**LP NFT Status**

**NFTs Owned:** %d
**Faucet Multiplier:** %sx %s

**Base Amount:** %d %s
**With Bonus:** %s %s`,
			count, multiplier.String(), bonusNote,
			base, currency,
			withBonus.String(), currency)
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, msg)
	}
}
