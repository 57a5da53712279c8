package transfer

import (
	"time"

	"github.com/superfood/go-food-backend/internal/domain"
)

// Defaults applied to optional order fields that the client omitted.
const (
	DefaultPaymentType  = "cash on delivery"
	DefaultDeliveryType = "self-pickup"
	DefaultAddress      = "Gvardeyskoe, Ostryakova st. 27/1"
)

// dateLayout is the calendar-date form used for date_create_order on the wire.
const dateLayout = "2006-01-02"

// OrderPayload is the transfer shape of an order as accepted by
// POST /api/add_order and returned from order listings.
//
// DateCreateOrder is informational on input: the persisted creation timestamp
// is always assigned by the store. On output it carries the calendar date of
// the order.
type OrderPayload struct {
	ID              int64   `json:"id"`
	User            int64   `json:"user"`
	TgID            int64   `json:"tg_id"`
	Items           string  `json:"items"`
	TotalCost       int     `json:"total_cost"`
	DateCreateOrder string  `json:"date_create_order,omitempty"`
	PaymentType     string  `json:"type_of_pay"`
	DeliveryType    string  `json:"type_of_delivery"`
	Address         *string `json:"address,omitempty"`
	Description     *string `json:"description,omitempty"`
}

// OrderFromDomain maps a stored order to its transfer shape. The creation
// timestamp is narrowed to a calendar date.
func OrderFromDomain(o domain.Order) OrderPayload {
	return OrderPayload{
		ID:              o.ID,
		User:            o.UserID,
		TgID:            o.TgID,
		Items:           o.Items,
		TotalCost:       o.TotalCost,
		DateCreateOrder: o.CreatedAt.Format(dateLayout),
		PaymentType:     o.PaymentType,
		DeliveryType:    o.DeliveryType,
		Address:         o.Address,
		Description:     o.Description,
	}
}

// Normalize fills documented defaults for omitted optional fields and narrows
// a supplied full date-time to a calendar date. It always runs before
// Validate and never fails: an unparseable date is left as-is for Validate to
// ignore (the field is informational on input).
func (p *OrderPayload) Normalize() {
	if p.PaymentType == "" {
		p.PaymentType = DefaultPaymentType
	}
	if p.DeliveryType == "" {
		p.DeliveryType = DefaultDeliveryType
	}
	if p.Address == nil {
		addr := DefaultAddress
		p.Address = &addr
	}
	if p.DateCreateOrder != "" {
		if ts, err := time.Parse(time.RFC3339, p.DateCreateOrder); err == nil {
			p.DateCreateOrder = ts.Format(dateLayout)
		}
	}
}

// Validate checks the payload against the order field bounds. Callers must
// run Normalize first so defaults are in place.
func (p *OrderPayload) Validate() error {
	if p.TgID == 0 {
		return &ValidationError{Field: "tg_id", Message: "is required"}
	}
	if !runeLenBetween(p.Items, 1, 500) {
		return errLength("items", 1, 500)
	}
	if p.TotalCost <= 0 {
		return errPositive("total_cost")
	}
	if !runeLenBetween(p.PaymentType, 15, 50) {
		return errLength("type_of_pay", 15, 50)
	}
	if !runeLenBetween(p.DeliveryType, 9, 30) {
		return errLength("type_of_delivery", 9, 30)
	}
	if p.Address != nil && !runeLenBetween(*p.Address, 10, 200) {
		return errLength("address", 10, 200)
	}
	if p.Description != nil && !runeLenBetween(*p.Description, 0, 300) {
		return errLength("description", 0, 300)
	}
	return nil
}
