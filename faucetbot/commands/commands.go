// Package commands wires chat command handlers to the bot's services.
package commands

import (
	"github.com/textrp/faucetbot/faucetbot"
)

// Register attaches every command handler to the bot's router.
func Register(b *faucetbot.Bot) {
	b.Router.Register("faucet", FaucetHandler(b))
	b.Router.Register("trust", TrustHandler(b))
	b.Router.Register("trustdebug", TrustDebugHandler(b))
	b.Router.Register("lp", LPHandler(b))
	b.Router.Register("balance", BalanceHandler(b))
	b.Router.Register("wallet", WalletHandler(b))
	b.Router.Register("weather", WeatherHandler(b))
	b.Router.Register("help", HelpHandler(b))

	b.Router.RegisterAdmin("faucetstats", FaucetStatsHandler(b))
	b.Router.RegisterAdmin("faucetbalance", FaucetBalanceHandler(b))
	b.Router.RegisterAdmin("blacklist", BlacklistHandler(b))
	b.Router.RegisterAdmin("whitelist", WhitelistHandler(b))
	b.Router.RegisterAdmin("botstats", BotStatsHandler(b))
}
