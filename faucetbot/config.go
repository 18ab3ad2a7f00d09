package faucetbot

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"github.com/textrp/faucetbot/faucetbot/database"
	"github.com/textrp/faucetbot/faucetbot/faucet"
	"github.com/textrp/faucetbot/faucetbot/matrix"
	"github.com/textrp/faucetbot/faucetbot/weather"
	"github.com/textrp/faucetbot/faucetbot/xrpl"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log     LogConfig           `toml:"log"`
	Bot     BotConfig           `toml:"bot"`
	DB      database.DBConfig   `toml:"db"`
	XRPL    xrpl.Config         `toml:"xrpl"`
	Faucet  FaucetConfig        `toml:"faucet"`
	Weather weather.Config      `toml:"weather"`
	Matrix  matrix.ClientConfig `toml:"-"`
}

type BotConfig struct {
	Homeserver    string   `toml:"homeserver"`
	UserID        string   `toml:"user_id"`
	Token         string   `toml:"token"`
	Password      string   `toml:"password"`
	CommandPrefix string   `toml:"command_prefix"`
	Admins        []string `toml:"admins"`
	AutoJoin      bool     `toml:"auto_join"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// FaucetConfig is the claim policy as written in config.toml. The
// issuer here is the single authoritative issuer field; it is used for
// both the trust-line check and payment issuance.
type FaucetConfig struct {
	CooldownHours int    `toml:"cooldown_hours"`
	BaseAmount    int64  `toml:"base_amount"`
	MinXRPBalance string `toml:"min_xrp_balance"`
	CurrencyCode  string `toml:"currency_code"`
	TokenIssuer   string `toml:"token_issuer"`
}

func (c *Config) Validate() error {
	if c.Bot.Homeserver == "" || c.Bot.UserID == "" {
		return fmt.Errorf("bot.homeserver and bot.user_id are required")
	}
	if c.Bot.Token == "" && c.Bot.Password == "" {
		return fmt.Errorf("one of bot.token or bot.password is required")
	}
	if c.Bot.CommandPrefix == "" {
		c.Bot.CommandPrefix = "!"
	}
	if c.Faucet.CooldownHours <= 0 {
		c.Faucet.CooldownHours = 24
	}
	if c.Faucet.BaseAmount <= 0 {
		c.Faucet.BaseAmount = 100
	}
	if c.Faucet.MinXRPBalance == "" {
		c.Faucet.MinXRPBalance = "0.1"
	}
	if _, err := decimal.NewFromString(c.Faucet.MinXRPBalance); err != nil {
		return fmt.Errorf("invalid faucet.min_xrp_balance %q: %w", c.Faucet.MinXRPBalance, err)
	}
	if c.Faucet.CurrencyCode == "" {
		c.Faucet.CurrencyCode = "TXT"
	}
	return nil
}

// MatrixConfig derives the gateway client config from the bot section.
func (c *Config) MatrixConfig() matrix.ClientConfig {
	return matrix.ClientConfig{
		Homeserver: c.Bot.Homeserver,
		UserID:     c.Bot.UserID,
		Token:      c.Bot.Token,
		Password:   c.Bot.Password,
		AutoJoin:   c.Bot.AutoJoin,
	}
}

// FaucetCoreConfig converts the config section into the faucet
// package's policy struct.
func (c *Config) FaucetCoreConfig() faucet.Config {
	minBalance, _ := decimal.NewFromString(c.Faucet.MinXRPBalance)
	return faucet.Config{
		Cooldown:      time.Duration(c.Faucet.CooldownHours) * time.Hour,
		BaseAmount:    c.Faucet.BaseAmount,
		MinXRPBalance: minBalance,
		Currency:      c.Faucet.CurrencyCode,
		Issuer:        c.Faucet.TokenIssuer,
	}
}
