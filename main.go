package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/textrp/faucetbot/faucetbot"
	"github.com/textrp/faucetbot/faucetbot/commands"
	"github.com/textrp/faucetbot/faucetbot/database"
	"github.com/textrp/faucetbot/faucetbot/database/repositories"
	"github.com/textrp/faucetbot/faucetbot/faucet"
	"github.com/textrp/faucetbot/faucetbot/logger"
	"github.com/textrp/faucetbot/faucetbot/services"
	"github.com/textrp/faucetbot/faucetbot/weather"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	skipPing := flag.Bool("skip-ping", false, "skip the startup rippled reachability check")
	flag.Parse()

	cfg, err := faucetbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	customHandler := logger.NewHandler(cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting TextRP faucet bot",
		slog.String("version", version),
		slog.String("commit", commit))

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("type", "db"),
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}

	slog.Info("Database connected successfully",
		slog.String("type", "db"),
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("type", "db"),
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully", slog.String("type", "db"))

	b := faucetbot.New(*cfg, version, commit)
	b.DB = db
	b.FaucetRepository = repositories.NewFaucetRepository(db.BunDB())

	b.XRPL = xrpl.NewClient(cfg.XRPL)
	if !*skipPing {
		pingCtx, pingCancel := context.WithTimeout(ctx, 15*time.Second)
		if err := b.XRPL.Ping(pingCtx); err != nil {
			pingCancel()
			slog.Error("rippled node unreachable",
				slog.String("type", "xrpl"),
				slog.String("rpc_url", cfg.XRPL.RPCURL),
				slog.Any("error", err))
			os.Exit(-1)
		}
		pingCancel()
		slog.Info("rippled node reachable",
			slog.String("type", "xrpl"),
			slog.String("rpc_url", cfg.XRPL.RPCURL),
			slog.String("network", cfg.XRPL.Network))
	}

	b.Orchestrator = faucet.NewOrchestrator(cfg.FaucetCoreConfig(), b.FaucetRepository, b.XRPL, b.XRPL, b.XRPL, b.XRPL)
	b.Reporter = faucet.NewReporter(b.FaucetRepository)
	b.Weather = weather.NewClient(cfg.Weather)
	b.Analytics = services.NewAnalytics()

	if err := b.SetupMatrix(); err != nil {
		slog.Error("Failed to set up Matrix client",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}
	commands.Register(b)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-runCtx.Done()
		slog.Info("Shutting down bot...")
	}()

	if err := b.Start(runCtx); err != nil && runCtx.Err() == nil {
		slog.Error("Bot exited with error",
			slog.String("type", "sys"),
			slog.Any("error", err))
		b.Shutdown()
		os.Exit(-1)
	}

	b.Shutdown()
}
