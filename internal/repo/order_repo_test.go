package repo

import (
	"context"
	"testing"
	"time"

	"github.com/superfood/go-food-backend/internal/transfer"
)

func TestCreateOrder_AssignsIDAndTimestamp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u, err := CreateUser(ctx, db, 100)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	start := time.Now().Add(-time.Minute)
	o, err := CreateOrder(ctx, db, u.ID, transfer.OrderPayload{
		TgID:         100,
		Items:        "Pizza x1",
		TotalCost:    500,
		PaymentType:  transfer.DefaultPaymentType,
		DeliveryType: transfer.DefaultDeliveryType,
		Description:  strptr("ring the doorbell twice"),
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if o.ID == 0 || o.UserID != u.ID || o.TgID != 100 {
		t.Fatalf("unexpected order fields: %+v", o)
	}
	if o.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset/really old: %v", o.CreatedAt)
	}
}

func TestListOrders_EmptyForNewUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u, err := CreateUser(ctx, db, 200)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	out, err := ListOrders(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty history, got %d orders", len(out))
	}
}

func TestListOrders_FiltersByOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a, _ := CreateUser(ctx, db, 1)
	b, _ := CreateUser(ctx, db, 2)

	mk := func(tgID int64, items string) transfer.OrderPayload {
		return transfer.OrderPayload{
			TgID: tgID, Items: items, TotalCost: 100,
			PaymentType: transfer.DefaultPaymentType, DeliveryType: transfer.DefaultDeliveryType,
		}
	}
	if _, err := CreateOrder(ctx, db, a.ID, mk(1, "Pizza x1")); err != nil {
		t.Fatalf("order a1: %v", err)
	}
	if _, err := CreateOrder(ctx, db, a.ID, mk(1, "Soup x2")); err != nil {
		t.Fatalf("order a2: %v", err)
	}
	if _, err := CreateOrder(ctx, db, b.ID, mk(2, "Salad x1")); err != nil {
		t.Fatalf("order b1: %v", err)
	}

	got, err := ListOrders(ctx, db, a.ID)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders for owner, got %d", len(got))
	}
	// Oldest first.
	if got[0].Items != "Pizza x1" || got[1].Items != "Soup x2" {
		t.Fatalf("unexpected order contents: %+v", got)
	}
}
