package faucetbot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/textrp/faucetbot/faucetbot/database"
	"github.com/textrp/faucetbot/faucetbot/database/repositories"
	"github.com/textrp/faucetbot/faucetbot/faucet"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/services"
	"github.com/textrp/faucetbot/faucetbot/weather"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
	"maunium.net/go/mautrix/event"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

type Bot struct {
	Cfg     Config
	Version string
	Commit  string

	DB               *database.DB
	FaucetRepository repositories.FaucetRepository
	Orchestrator     *faucet.Orchestrator
	Reporter         *faucet.Reporter
	XRPL             *xrpl.Client
	Weather          *weather.Client
	Matrix           *matrix.Client
	Router           *matrix.Router
	Analytics        *services.Analytics
}

// SetupMatrix builds the chat gateway and command router. Command
// handlers are registered by the caller before Start.
func (b *Bot) SetupMatrix() error {
	client, err := matrix.NewClient(b.Cfg.MatrixConfig())
	if err != nil {
		return err
	}
	b.Matrix = client
	b.Router = matrix.NewRouter(b.Cfg.Bot.CommandPrefix, b.Cfg.Bot.Admins, client)
	if b.Analytics != nil {
		b.Router.OnCommand = b.Analytics.LogCommand
	}
	return nil
}

// Start logs in and runs the sync loop until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.Matrix.Login(ctx); err != nil {
		return err
	}

	b.Matrix.OnMessage(func(ctx context.Context, evt *event.Event) {
		b.Router.Dispatch(ctx, evt)
	})

	slog.Info("TextRP faucet bot is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
		slog.String("homeserver", b.Cfg.Bot.Homeserver),
		slog.String("user_id", b.Cfg.Bot.UserID),
	)

	if err := b.Matrix.Sync(ctx); err != nil {
		return fmt.Errorf("sync loop exited: %w", err)
	}
	return nil
}

// Shutdown stops the sync loop and closes the database.
func (b *Bot) Shutdown() {
	if b.Matrix != nil {
		b.Matrix.Close()
	}
	if b.DB != nil {
		b.DB.Close()
	}
	slog.Info("Shutdown complete")
}
