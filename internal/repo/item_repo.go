// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Item model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/domain"
)

// ListItems returns all menu items ordered by identifier. Items are seeded
// externally, so an empty result simply means the menu has not been loaded.
func ListItems(ctx context.Context, db *gorm.DB) ([]domain.Item, error) {
	var out []domain.Item
	err := db.WithContext(ctx).
		Order("id ASC").
		Find(&out).Error
	return out, err
}
