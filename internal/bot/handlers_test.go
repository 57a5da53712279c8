package bot

import (
	"strings"
	"testing"

	"github.com/superfood/go-food-backend/internal/transfer"
)

func TestFormatOrder(t *testing.T) {
	got := formatOrder(transfer.OrderPayload{
		DateCreateOrder: "2026-08-29",
		Items:           "Pizza x1, Soup x2",
		TotalCost:       750,
	})

	for _, want := range []string{
		"<b>Order date:</b> 2026-08-29",
		"<b>Items:</b> Pizza x1, Soup x2",
		"<b>Total:</b> 750",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in rendered order:\n%s", want, got)
		}
	}
}

func TestMainKeyboardLabels(t *testing.T) {
	kb := mainKeyboard()
	if len(kb.ReplyKeyboard) == 0 {
		t.Fatal("reply keyboard must have at least one row")
	}
	var labels []string
	for _, row := range kb.ReplyKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}
	joined := strings.Join(labels, "|")
	if !strings.Contains(joined, btnMyOrders) || !strings.Contains(joined, btnAbout) {
		t.Fatalf("keyboard labels: %v", labels)
	}
}
