// Package bot implements the Telegram front-end. It is a thin collaborator
// over the application services: commands register the user, fetch their
// order history, or render static information, and every persistence call
// goes through the same service layer the HTTP API uses.
package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"github.com/superfood/go-food-backend/internal/config"
	"github.com/superfood/go-food-backend/internal/services"
)

// Bot wraps the Telegram long-polling client together with the services its
// handlers call.
type Bot struct {
	tb     *tele.Bot
	users  *services.UserService
	orders *services.OrderService

	// base is the lifetime context handlers derive their calls from.
	// Telegram updates do not carry a per-request context of their own.
	base context.Context
}

// New builds the bot, verifies the token against the Telegram API, and
// registers all handlers. It does not start polling.
func New(cfg config.BotConfig, users *services.UserService, orders *services.OrderService) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:     cfg.Token,
		Poller:    &tele.LongPoller{Timeout: cfg.PollTimeout},
		ParseMode: tele.ModeHTML,
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{
		tb:     tb,
		users:  users,
		orders: orders,
		base:   context.Background(),
	}
	b.registerHandlers(cfg.WebAppURL)
	return b, nil
}

// Start begins long polling and blocks until ctx is cancelled. Cancellation
// stops the poller cooperatively: the in-flight poll cycle is allowed to
// finish before Start returns.
func (b *Bot) Start(ctx context.Context) {
	b.base = ctx

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.tb.Start()
	}()

	<-ctx.Done()
	b.tb.Stop()
	<-done
	log.Info().Msg("bot stopped")
}

// handlerCtx returns a bounded context for one update's service calls.
func (b *Bot) handlerCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(b.base, 15*time.Second)
}
