// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Order model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/domain"
	"github.com/superfood/go-food-backend/internal/transfer"
)

// CreateOrder inserts a new order row owned by userID. The creation
// timestamp is assigned by the store at insert time; the returned order
// carries the assigned identifier and timestamp.
func CreateOrder(ctx context.Context, db *gorm.DB, userID int64, p transfer.OrderPayload) (*domain.Order, error) {
	o := &domain.Order{
		UserID:       userID,
		TgID:         p.TgID,
		Items:        p.Items,
		TotalCost:    p.TotalCost,
		DeliveryType: p.DeliveryType,
		PaymentType:  p.PaymentType,
		Description:  p.Description,
		Address:      p.Address,
	}
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders returns all orders owned by userID, ordered deterministically
// (CreatedAt ASC, ID ASC). It returns an empty slice when the user has no
// orders. On DB error, it returns the error.
func ListOrders(ctx context.Context, db *gorm.DB, userID int64) ([]domain.Order, error) {
	var out []domain.Order
	err := db.WithContext(ctx).
		Where(&domain.Order{UserID: userID}).
		Order("date_create_order ASC, id ASC").
		Find(&out).Error
	return out, err
}
