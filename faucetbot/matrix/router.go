package matrix

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/sahilm/fuzzy"
	"github.com/textrp/faucetbot/faucetbot/utils"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"
)

// CommandContext is what a handler sees: the room, the sender, the
// wallet address extracted from the sender's TextRP identity, and the
// parsed arguments.
type CommandContext struct {
	RoomID  id.RoomID
	Sender  id.UserID
	Wallet  string
	Command string
	Args    []string
	IsAdmin bool
}

type HandlerFunc func(ctx context.Context, cmd *CommandContext) error

// Responder is the reply surface handlers and the router share.
type Responder interface {
	SendMarkdown(ctx context.Context, roomID id.RoomID, md string) error
}

// Router parses prefixed chat commands and dispatches them to
// registered handlers. Admin-only commands are gated on the configured
// actor allow-list before the handler runs.
type Router struct {
	prefix    string
	admins    map[string]bool
	handlers  map[string]HandlerFunc
	adminOnly map[string]bool
	names     []string
	responder Responder

	// OnCommand, when set, observes every dispatched command.
	OnCommand func(command string, took time.Duration, err error)
}

func NewRouter(prefix string, admins []string, responder Responder) *Router {
	adminSet := make(map[string]bool, len(admins))
	for _, a := range admins {
		adminSet[a] = true
	}
	return &Router{
		prefix:    prefix,
		admins:    adminSet,
		handlers:  make(map[string]HandlerFunc),
		adminOnly: make(map[string]bool),
		responder: responder,
	}
}

func (r *Router) Register(name string, handler HandlerFunc) {
	r.handlers[name] = handler
	r.names = append(r.names, name)
}

func (r *Router) RegisterAdmin(name string, handler HandlerFunc) {
	r.Register(name, handler)
	r.adminOnly[name] = true
}

// Names returns registered command names in registration order.
func (r *Router) Names() []string {
	return r.names
}

func (r *Router) IsAdmin(sender id.UserID) bool {
	return r.admins[sender.String()]
}

// Dispatch handles one room message. Non-command messages are ignored.
func (r *Router) Dispatch(ctx context.Context, evt *event.Event) {
	msg := evt.Content.AsMessage()
	if msg == nil || msg.MsgType != event.MsgText {
		return
	}

	body := strings.TrimSpace(msg.Body)
	if !strings.HasPrefix(body, r.prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(body, r.prefix))
	if len(fields) == 0 {
		return
	}
	command := strings.ToLower(fields[0])

	handler, ok := r.handlers[command]
	if !ok {
		r.suggest(ctx, evt.RoomID, command)
		return
	}

	cmdCtx := &CommandContext{
		RoomID:  evt.RoomID,
		Sender:  evt.Sender,
		Wallet:  WalletFromUserID(evt.Sender),
		Command: command,
		Args:    fields[1:],
		IsAdmin: r.IsAdmin(evt.Sender),
	}

	if r.adminOnly[command] && !cmdCtx.IsAdmin {
		_ = r.responder.SendMarkdown(ctx, evt.RoomID, "This command is restricted to faucet administrators.")
		return
	}

	start := time.Now()
	err := handler(ctx, cmdCtx)
	took := time.Since(start)

	if r.OnCommand != nil {
		r.OnCommand(command, took, err)
	}

	if err != nil {
		slog.Error("Command failed",
			slog.String("type", "cmd"),
			slog.String("name", command),
			slog.String("user_name", evt.Sender.String()),
			slog.Duration("took", took),
			slog.Any("error", err),
		)
		_ = r.responder.SendMarkdown(ctx, evt.RoomID, "An error occurred while processing your command. Please try again later.")
		return
	}

	slog.Info("Command handled",
		slog.String("type", "cmd"),
		slog.String("name", command),
		slog.String("user_name", evt.Sender.String()),
		slog.Duration("took", took),
	)
}

// suggest replies to an unknown command with the closest registered
// name, when one is close enough to be worth offering. The unknown
// input is untrusted and gets echoed back, so it is stripped of
// control characters and capped first.
func (r *Router) suggest(ctx context.Context, roomID id.RoomID, command string) {
	command = utils.SanitizeForLogging(command, 32)
	matches := fuzzy.Find(command, r.names)
	if len(matches) == 0 {
		_ = r.responder.SendMarkdown(ctx, roomID,
			fmt.Sprintf("Unknown command `%s%s`. Use `%shelp` to list commands.", r.prefix, command, r.prefix))
		return
	}
	_ = r.responder.SendMarkdown(ctx, roomID,
		fmt.Sprintf("Unknown command `%s%s`. Did you mean `%s%s`?", r.prefix, command, r.prefix, matches[0].Str))
}
