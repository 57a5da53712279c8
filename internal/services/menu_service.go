// Package services – MenuService
//
// This file implements the MenuService, which serves the read-only menu.
// Items are seeded into the store externally; the service only serializes
// them into their transfer shape for the API.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/repo"
	"github.com/superfood/go-food-backend/internal/transfer"
)

// MenuService exposes the menu as transfer payloads.
type MenuService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewMenuService constructs a MenuService over the given handle.
func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// Items returns every menu item in identifier order.
func (s *MenuService) Items(ctx context.Context) ([]transfer.ItemPayload, error) {
	items, err := repo.ListItems(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	out := make([]transfer.ItemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, transfer.ItemFromDomain(it))
	}
	return out, nil
}
