// Package services – UserService
//
// This file implements the UserService, which manages the customer lifecycle:
// idempotent registration on first contact, partial profile updates, and
// deletion. Registration is keyed by the Telegram identifier and never
// produces a duplicate row; a racing insert is absorbed by the storage-level
// unique constraint and resolved by re-reading.
//
// Service-level errors (e.g., ErrUserNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/domain"
	"github.com/superfood/go-food-backend/internal/repo"
	"github.com/superfood/go-food-backend/internal/transfer"
)

// UserRepo defines the repository contract required by UserService.
// Implementations are responsible for persistence of user aggregates.
type UserRepo interface {
	// GetUserByTgID fetches a user by Telegram identifier.
	GetUserByTgID(ctx context.Context, db *gorm.DB, tgID int64) (*domain.User, error)

	// CreateUser inserts a user row with only the Telegram identifier set,
	// absorbing duplicate inserts via the unique constraint.
	CreateUser(ctx context.Context, db *gorm.DB, tgID int64) (*domain.User, error)

	// UpdateUserInfo partially updates profile fields by Telegram identifier
	// and reports the number of matched rows.
	UpdateUserInfo(ctx context.Context, db *gorm.DB, upd transfer.UserUpdatePayload) (int64, error)

	// DeleteUser removes a user (and, via cascade, their orders).
	DeleteUser(ctx context.Context, db *gorm.DB, tgID int64) error
}

// UserService provides user lifecycle operations keyed by the Telegram
// identifier.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
}

// NewUserService constructs a UserService over the given handle and repository.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// Register returns the user for tgID, creating the row on first contact.
// Calling it twice for the same identifier yields the same user both times;
// an existing row is returned unchanged with no side effect.
func (s *UserService) Register(ctx context.Context, tgID int64) (*domain.User, error) {
	u, err := s.Repo.GetUserByTgID(ctx, s.DB, tgID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.Repo.CreateUser(ctx, s.DB, tgID)
}

// UpdateInfo validates and applies a partial profile update. A payload whose
// Telegram identifier matches no user is a silent no-op: the caller cannot
// distinguish it from a successful update, so the miss is logged here.
func (s *UserService) UpdateInfo(ctx context.Context, upd transfer.UserUpdatePayload) error {
	if err := upd.Validate(); err != nil {
		return err
	}
	matched, err := s.Repo.UpdateUserInfo(ctx, s.DB, upd)
	if err != nil {
		return err
	}
	if matched == 0 {
		log.Warn().Int64("tg_id", upd.TgID).Msg("profile update matched no user")
	}
	return nil
}

// Delete removes the user matching tgID together with their orders (storage
// cascade). Returns ErrUserNotFound when no such user exists.
func (s *UserService) Delete(ctx context.Context, tgID int64) error {
	err := s.Repo.DeleteUser(ctx, s.DB, tgID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// userRepoShim adapts the repository free functions to the UserRepo
// interface. This keeps the service decoupled from the concrete repo package
// while reusing the existing functions.
type userRepoShim struct{}

// GetUserByTgID proxies repo.GetUserByTgID.
func (userRepoShim) GetUserByTgID(ctx context.Context, db *gorm.DB, tgID int64) (*domain.User, error) {
	return repo.GetUserByTgID(ctx, db, tgID)
}

// CreateUser proxies repo.CreateUser.
func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, tgID int64) (*domain.User, error) {
	return repo.CreateUser(ctx, db, tgID)
}

// UpdateUserInfo proxies repo.UpdateUserInfo.
func (userRepoShim) UpdateUserInfo(ctx context.Context, db *gorm.DB, upd transfer.UserUpdatePayload) (int64, error) {
	return repo.UpdateUserInfo(ctx, db, upd)
}

// DeleteUser proxies repo.DeleteUser.
func (userRepoShim) DeleteUser(ctx context.Context, db *gorm.DB, tgID int64) error {
	return repo.DeleteUser(ctx, db, tgID)
}

// DefaultUserRepo returns the production UserRepo backed by the repo package.
func DefaultUserRepo() UserRepo { return userRepoShim{} }
