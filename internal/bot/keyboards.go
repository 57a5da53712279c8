package bot

import tele "gopkg.in/telebot.v3"

// Reply-keyboard button labels; OnText dispatch matches on these exact strings.
const (
	btnMyOrders = "My orders"
	btnAbout    = "About us"
)

// mainKeyboard is the persistent reply keyboard with the two text commands.
func mainKeyboard() *tele.ReplyMarkup {
	kb := &tele.ReplyMarkup{
		ResizeKeyboard: true,
		Placeholder:    "Choose a menu item...",
	}
	kb.Reply(
		kb.Row(kb.Text(btnMyOrders)),
		kb.Row(kb.Text(btnAbout)),
	)
	return kb
}

// welcomeKeyboard is the inline keyboard attached to the welcome message:
// a WebApp button opening the shop and a callback button for extra info.
func welcomeKeyboard(webAppURL string) (*tele.ReplyMarkup, tele.Btn) {
	kb := &tele.ReplyMarkup{}
	shop := kb.WebApp("Open shop", &tele.WebApp{URL: webAppURL})
	more := kb.Data("More info", "additional")
	kb.Inline(
		kb.Row(shop),
		kb.Row(more),
	)
	return kb, more
}
