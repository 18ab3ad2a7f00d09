package matrix

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/format"
	"maunium.net/go/mautrix/id"
)

const typingTimeout = 30 * time.Second

type ClientConfig struct {
	Homeserver string `toml:"homeserver"`
	UserID     string `toml:"user_id"`
	Token      string `toml:"token"`
	Password   string `toml:"password"`
	AutoJoin   bool   `toml:"auto_join"`
}

// Client wraps the mautrix client with the small surface the bot
// needs: login, sync, plain and markdown replies, typing.
type Client struct {
	mx        *mautrix.Client
	cfg       ClientConfig
	startedAt time.Time
}

func NewClient(cfg ClientConfig) (*Client, error) {
	mx, err := mautrix.NewClient(cfg.Homeserver, id.UserID(cfg.UserID), cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix client: %w", err)
	}
	return &Client{mx: mx, cfg: cfg}, nil
}

// Login authenticates with a password when no access token is
// configured. With a token, the client is already authenticated.
func (c *Client) Login(ctx context.Context) error {
	if c.cfg.Token != "" {
		return nil
	}

	_, err := c.mx.Login(ctx, &mautrix.ReqLogin{
		Type: mautrix.AuthTypePassword,
		Identifier: mautrix.UserIdentifier{
			Type: mautrix.IdentifierTypeUser,
			User: c.cfg.UserID,
		},
		Password:         c.cfg.Password,
		StoreCredentials: true,
	})
	if err != nil {
		return fmt.Errorf("matrix login failed: %w", err)
	}

	slog.Info("Logged in to homeserver",
		slog.String("homeserver", c.cfg.Homeserver),
		slog.String("user_id", c.mx.UserID.String()),
	)
	return nil
}

func (c *Client) UserID() id.UserID {
	return c.mx.UserID
}

// OnMessage registers handler for room messages. Messages sent before
// the bot started, and the bot's own messages, are ignored.
func (c *Client) OnMessage(handler func(ctx context.Context, evt *event.Event)) {
	syncer := c.mx.Syncer.(*mautrix.DefaultSyncer)
	syncer.OnEventType(event.EventMessage, func(ctx context.Context, evt *event.Event) {
		if evt.Sender == c.mx.UserID {
			return
		}
		if time.UnixMilli(evt.Timestamp).Before(c.startedAt) {
			return
		}
		handler(ctx, evt)
	})
}

func (c *Client) enableAutoJoin() {
	syncer := c.mx.Syncer.(*mautrix.DefaultSyncer)
	syncer.OnEventType(event.StateMember, func(ctx context.Context, evt *event.Event) {
		if evt.GetStateKey() != c.mx.UserID.String() {
			return
		}
		if evt.Content.AsMember().Membership != event.MembershipInvite {
			return
		}
		if _, err := c.mx.JoinRoomByID(ctx, evt.RoomID); err != nil {
			slog.Error("Failed to join room on invite",
				slog.String("room_id", evt.RoomID.String()),
				slog.Any("error", err))
			return
		}
		slog.Info("Joined room on invite", slog.String("room_id", evt.RoomID.String()))
	})
}

// Sync runs the sync loop until ctx is cancelled.
func (c *Client) Sync(ctx context.Context) error {
	if c.cfg.AutoJoin {
		c.enableAutoJoin()
	}
	c.startedAt = time.Now()
	if err := c.mx.SyncWithContext(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("sync loop failed: %w", err)
	}
	return nil
}

func (c *Client) SendText(ctx context.Context, roomID id.RoomID, text string) error {
	_, err := c.mx.SendText(ctx, roomID, text)
	return err
}

// SendMarkdown renders markdown to an HTML-formatted room message.
func (c *Client) SendMarkdown(ctx context.Context, roomID id.RoomID, md string) error {
	content := format.RenderMarkdown(md, true, false)
	_, err := c.mx.SendMessageEvent(ctx, roomID, event.EventMessage, &content)
	return err
}

func (c *Client) SetTyping(ctx context.Context, roomID id.RoomID, typing bool) {
	timeout := time.Duration(0)
	if typing {
		timeout = typingTimeout
	}
	if _, err := c.mx.UserTyping(ctx, roomID, typing, timeout); err != nil {
		slog.Debug("Failed to send typing notification", slog.Any("error", err))
	}
}

// Close stops the underlying sync loop.
func (c *Client) Close() {
	c.mx.StopSync()
}
