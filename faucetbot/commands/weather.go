package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/utils"
)

// WeatherHandler looks up current conditions for a city name or US zip
// code via OpenWeatherMap.
func WeatherHandler(b *faucetbot.Bot) matrix.HandlerFunc {
	return func(ctx context.Context, cmd *matrix.CommandContext) error {
		if !b.Weather.Enabled() {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"Weather lookups are not configured on this bot.")
		}

		if len(cmd.Args) == 0 {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				fmt.Sprintf("Usage: `%sweather <city or zip>`", b.Cfg.Bot.CommandPrefix))
		}

		query, ok := utils.SanitizeCityName(strings.Join(cmd.Args, " "))
		if !ok {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				"That doesn't look like a city name or zip code.")
		}

		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		report, err := b.Weather.Current(ctx, query)
		if err != nil {
			return b.Matrix.SendMarkdown(ctx, cmd.RoomID,
				fmt.Sprintf("Could not find weather for `%s`.", query))
		}
		return b.Matrix.SendMarkdown(ctx, cmd.RoomID, report.Format())
	}
}
