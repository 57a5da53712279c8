package transfer

import (
	"errors"
	"strings"
	"testing"
)

func strptr(s string) *string { return &s }

func validOrder() OrderPayload {
	return OrderPayload{
		TgID:         12345,
		Items:        "Pizza x1",
		TotalCost:    500,
		PaymentType:  DefaultPaymentType,
		DeliveryType: DefaultDeliveryType,
	}
}

func TestOrderNormalize_FillsDefaults(t *testing.T) {
	p := OrderPayload{TgID: 1, Items: "Soup x2", TotalCost: 300}
	p.Normalize()

	if p.PaymentType != DefaultPaymentType {
		t.Fatalf("payment default: got %q", p.PaymentType)
	}
	if p.DeliveryType != DefaultDeliveryType {
		t.Fatalf("delivery default: got %q", p.DeliveryType)
	}
	if p.Address == nil || *p.Address != DefaultAddress {
		t.Fatalf("address default: got %v", p.Address)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("normalized payload must validate: %v", err)
	}
}

func TestOrderNormalize_NarrowsDateTimeToDate(t *testing.T) {
	p := validOrder()
	p.DateCreateOrder = "2025-06-01T15:04:05Z"
	p.Normalize()
	if p.DateCreateOrder != "2025-06-01" {
		t.Fatalf("expected calendar date, got %q", p.DateCreateOrder)
	}

	// A bare date passes through unchanged.
	p.DateCreateOrder = "2025-06-02"
	p.Normalize()
	if p.DateCreateOrder != "2025-06-02" {
		t.Fatalf("bare date must be kept, got %q", p.DateCreateOrder)
	}
}

func TestOrderValidate_RejectsNonPositiveTotal(t *testing.T) {
	for _, total := range []int{0, -1, -500} {
		p := validOrder()
		p.TotalCost = total
		err := p.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "total_cost" {
			t.Fatalf("total_cost=%d: expected total_cost validation error, got %v", total, err)
		}
	}
}

func TestOrderValidate_Bounds(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*OrderPayload)
		field string
	}{
		{"missing tg_id", func(p *OrderPayload) { p.TgID = 0 }, "tg_id"},
		{"empty items", func(p *OrderPayload) { p.Items = "" }, "items"},
		{"items too long", func(p *OrderPayload) { p.Items = strings.Repeat("x", 501) }, "items"},
		{"payment too short", func(p *OrderPayload) { p.PaymentType = "cash" }, "type_of_pay"},
		{"delivery too short", func(p *OrderPayload) { p.DeliveryType = "pickup" }, "type_of_delivery"},
		{"address too short", func(p *OrderPayload) { p.Address = strptr("short") }, "address"},
		{"address too long", func(p *OrderPayload) { p.Address = strptr(strings.Repeat("a", 201)) }, "address"},
		{"description too long", func(p *OrderPayload) { p.Description = strptr(strings.Repeat("d", 301)) }, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validOrder()
			tc.mut(&p)
			err := p.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q (%v)", tc.field, ve.Field, err)
			}
		})
	}
}

func TestOrderValidate_AddressBoundIsNumeric(t *testing.T) {
	// A 100-rune address must pass even though "100" > "200" as strings.
	p := validOrder()
	p.Address = strptr(strings.Repeat("a", 100))
	if err := p.Validate(); err != nil {
		t.Fatalf("100-char address must be valid: %v", err)
	}
}

func TestUserUpdateValidate_Phone(t *testing.T) {
	good := []string{"+71234567890", "+12345678901"}
	for _, ph := range good {
		p := UserUpdatePayload{TgID: 1, Phone: strptr(ph)}
		if err := p.Validate(); err != nil {
			t.Fatalf("phone %q must be valid: %v", ph, err)
		}
	}

	bad := []string{"71234567890", "+7123456789", "+712345678901", "+7123456789a", "++1234567890"}
	for _, ph := range bad {
		p := UserUpdatePayload{TgID: 1, Phone: strptr(ph)}
		err := p.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "phone" {
			t.Fatalf("phone %q: expected phone validation error, got %v", ph, err)
		}
		if !strings.Contains(ve.Message, "11 digits") {
			t.Fatalf("phone error must describe the expected format, got %q", ve.Message)
		}
	}
}

func TestUserUpdateValidate_Email(t *testing.T) {
	if err := (UserUpdatePayload{TgID: 1, Email: strptr("andrew@example.ru")}).Validate(); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	for _, em := range []string{"not-an-email", "a@b", "@example.com", "a b@example.com"} {
		p := UserUpdatePayload{TgID: 1, Email: strptr(em)}
		err := p.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "email" {
			t.Fatalf("email %q: expected email validation error, got %v", em, err)
		}
	}
}

func TestUserUpdateValidate_RequiresTgID(t *testing.T) {
	err := (UserUpdatePayload{}).Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "tg_id" {
		t.Fatalf("expected tg_id validation error, got %v", err)
	}
}

func TestUserUpdateValidate_OptionalFieldsMayBeAbsent(t *testing.T) {
	if err := (UserUpdatePayload{TgID: 42}).Validate(); err != nil {
		t.Fatalf("selector-only payload must validate: %v", err)
	}
}

func TestItemValidate(t *testing.T) {
	it := ItemPayload{
		ID: 1, Weight: 250, Name: "Margherita", Description: "Classic pizza",
		Cost: 500, Category: 1, ImageName: "img/margherita.png",
	}
	if err := it.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	it.Category = 7
	var ve *ValidationError
	if err := it.Validate(); !errors.As(err, &ve) || ve.Field != "category" {
		t.Fatalf("expected category validation error, got %v", it.Validate())
	}

	it.Category = 1
	it.Name = "x"
	if err := it.Validate(); !errors.As(err, &ve) || ve.Field != "name" {
		t.Fatalf("expected name validation error, got %v", it.Validate())
	}

	it.Name = "Margherita"
	it.Weight = 0
	if err := it.Validate(); !errors.As(err, &ve) || ve.Field != "weight" {
		t.Fatalf("expected weight validation error, got %v", it.Validate())
	}
}
