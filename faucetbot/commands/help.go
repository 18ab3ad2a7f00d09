package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/matrix"
)

var commandSummaries = map[string]string{
	"faucet":        "Claim your daily token reward",
	"trust":         "Check your trust line for the faucet token",
	"trustdebug":    "List every trust line on your wallet",
	"lp":            "Show your NFT bonus multiplier",
	"balance":       "Show your XRP balance",
	"wallet":        "Show your XRP and token balances",
	"weather":       "Current weather for a city or zip code",
	"help":          "Show this help message",
	"faucetstats":   "Faucet distribution statistics (admin)",
	"faucetbalance": "Faucet wallet balances (admin)",
	"blacklist":     "Ban a wallet from the faucet (admin)",
	"whitelist":     "Un-ban a wallet (admin)",
	"botstats":      "Bot uptime and command metrics (admin)",
}

// HelpHandler lists every command the sender can use.
func HelpHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		body := renderHelp(b.Cfg.Bot.CommandPrefix, b.Router.Names(), cmd.IsAdmin)
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, body)
	}
}

func renderHelp(prefix string, names []string, isAdmin bool) string {
	var sb strings.Builder
	sb.WriteString("**TextRP Faucet Bot**\n\n")
	for _, name := range names {
		summary := commandSummaries[name]
		if !isAdmin && strings.HasSuffix(summary, "(admin)") {
			continue
		}
		fmt.Fprintf(&sb, "- `%s%s` - %s\n", prefix, name, summary)
	}
	return sb.String()
}
