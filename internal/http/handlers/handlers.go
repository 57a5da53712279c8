// Handler wiring.
//
// Handlers are transport-thin: they bind input, call application services,
// and translate results into HTTP responses. Business rules and validation
// details live in the services and transfer packages.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/superfood/go-food-backend/internal/domain"
	"github.com/superfood/go-food-backend/internal/transfer"
)

//
// Service contracts (context-aware)
//

// MenuService defines menu retrieval operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MenuService interface {
	// Items returns every menu item as a transfer payload.
	Items(ctx context.Context) ([]transfer.ItemPayload, error)
}

// OrderService defines order placement operations consumed by HTTP handlers.
type OrderService interface {
	// Place validates and records a submitted order, registering the owning
	// user on first contact.
	Place(ctx context.Context, p transfer.OrderPayload) (*domain.Order, error)
}

// UserService defines user profile operations consumed by HTTP handlers.
type UserService interface {
	// UpdateInfo applies a partial profile update keyed by Telegram identifier.
	UpdateInfo(ctx context.Context, upd transfer.UserUpdatePayload) error
	// Delete removes a user and, via storage cascade, their orders.
	Delete(ctx context.Context, tgID int64) error
}

// Handlers groups HTTP endpoints for the menu, orders, and users.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	menuSvc  MenuService
	orderSvc OrderService
	userSvc  UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(menuSvc MenuService, orderSvc OrderService, userSvc UserService) *Handlers {
	return &Handlers{menuSvc: menuSvc, orderSvc: orderSvc, userSvc: userSvc}
}

// Hello handles GET / and answers the liveness envelope.
func (h *Handlers) Hello(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"message": "Hello, World!"})
}
