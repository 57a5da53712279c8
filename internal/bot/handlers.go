package bot

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"github.com/superfood/go-food-backend/internal/transfer"
)

const welcomeMessage = `Hi!
Welcome to the SUPERFOOD delivery bot.
Tap <b>"Open shop"</b> to start an order.
Tap <b>"More info"</b> for additional information.`

const aboutMessage = `Company information will appear here.`

const noOrdersMessage = `You have no orders yet`

// registerHandlers wires the command set: /start, the two reply-keyboard
// text commands, and the "additional" inline callback.
func (b *Bot) registerHandlers(webAppURL string) {
	welcome, more := welcomeKeyboard(webAppURL)

	b.tb.Handle("/start", func(c tele.Context) error {
		ctx, cancel := b.handlerCtx()
		defer cancel()

		if _, err := b.users.Register(ctx, c.Sender().ID); err != nil {
			log.Error().Err(err).Int64("tg_id", c.Sender().ID).Msg("register on /start")
			return c.Send("Something went wrong, please try again later.")
		}
		return c.Send(welcomeMessage, welcome)
	})

	b.tb.Handle(tele.OnText, func(c tele.Context) error {
		switch c.Text() {
		case btnMyOrders:
			return b.sendOrders(c)
		case btnAbout:
			return c.Send(aboutMessage)
		default:
			return nil
		}
	})

	b.tb.Handle(&more, func(c tele.Context) error {
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send("Use the <b>menu</b> below for additional information.", mainKeyboard())
	})
}

// sendOrders renders the caller's order history, one message per order.
func (b *Bot) sendOrders(c tele.Context) error {
	ctx, cancel := b.handlerCtx()
	defer cancel()

	orders, err := b.orders.History(ctx, c.Sender().ID)
	if err != nil {
		log.Error().Err(err).Int64("tg_id", c.Sender().ID).Msg("list orders")
		return c.Send("Something went wrong, please try again later.")
	}
	if len(orders) == 0 {
		return c.Send(noOrdersMessage)
	}

	if err := c.Send("Your orders:"); err != nil {
		return err
	}
	for _, o := range orders {
		if err := c.Send(formatOrder(o)); err != nil {
			return err
		}
	}
	return nil
}

// formatOrder renders one order as an HTML message body.
func formatOrder(o transfer.OrderPayload) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>Order date:</b> %s\n", o.DateCreateOrder)
	fmt.Fprintf(&sb, "<b>Items:</b> %s\n", o.Items)
	fmt.Fprintf(&sb, "<b>Total:</b> %d\n", o.TotalCost)
	return sb.String()
}
