// Package services – OrderService
//
// This file implements the OrderService, which records submitted purchases
// and lists a customer's order history. Placement normalizes and validates
// the payload, ensures the owning user exists (registering on the fly, since
// an order may be the very first contact), and inserts the order row. History
// mirrors the bot's "my orders" flow: the user is registered first so a brand
// new customer gets an empty list rather than an error.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/domain"
	"github.com/superfood/go-food-backend/internal/repo"
	"github.com/superfood/go-food-backend/internal/transfer"
)

// OrderRepo defines the repository contract required by OrderService.
type OrderRepo interface {
	// CreateOrder inserts an order row owned by userID.
	CreateOrder(ctx context.Context, db *gorm.DB, userID int64, p transfer.OrderPayload) (*domain.Order, error)

	// ListOrders returns all orders owned by userID.
	ListOrders(ctx context.Context, db *gorm.DB, userID int64) ([]domain.Order, error)
}

// OrderService provides order placement and history retrieval.
type OrderService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the order repository used by this service.
	Repo OrderRepo
	// Users resolves order owners by Telegram identifier.
	Users *UserService
}

// NewOrderService constructs an OrderService bound to the given user service.
func NewOrderService(db *gorm.DB, r OrderRepo, users *UserService) *OrderService {
	return &OrderService{DB: db, Repo: r, Users: users}
}

// Place records a new order. The payload is normalized (defaults, date
// narrowing) and validated before any persistence call; validation failures
// surface as *transfer.ValidationError and nothing is written.
func (s *OrderService) Place(ctx context.Context, p transfer.OrderPayload) (*domain.Order, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	owner, err := s.Users.Register(ctx, p.TgID)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateOrder(ctx, s.DB, owner.ID, p)
}

// History returns the order history for a Telegram identifier as transfer
// payloads, oldest first. A customer with no orders gets an empty slice.
func (s *OrderService) History(ctx context.Context, tgID int64) ([]transfer.OrderPayload, error) {
	owner, err := s.Users.Register(ctx, tgID)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.ListOrders(ctx, s.DB, owner.ID)
	if err != nil {
		return nil, err
	}
	out := make([]transfer.OrderPayload, 0, len(orders))
	for _, o := range orders {
		out = append(out, transfer.OrderFromDomain(o))
	}
	return out, nil
}

// orderRepoShim adapts the repository free functions to the OrderRepo
// interface. This keeps the service decoupled from the concrete repo package
// while reusing the existing functions.
type orderRepoShim struct{}

// CreateOrder proxies repo.CreateOrder.
func (orderRepoShim) CreateOrder(ctx context.Context, db *gorm.DB, userID int64, p transfer.OrderPayload) (*domain.Order, error) {
	return repo.CreateOrder(ctx, db, userID, p)
}

// ListOrders proxies repo.ListOrders.
func (orderRepoShim) ListOrders(ctx context.Context, db *gorm.DB, userID int64) ([]domain.Order, error) {
	return repo.ListOrders(ctx, db, userID)
}

// DefaultOrderRepo returns the production OrderRepo backed by the repo package.
func DefaultOrderRepo() OrderRepo { return orderRepoShim{} }
