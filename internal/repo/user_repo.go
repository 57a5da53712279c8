// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - GetUserByTgID(ctx, db, tgID) -> *domain.User, error
//     Fetches a user by Telegram identifier, or ErrNotFound if missing.
//
//   - CreateUser(ctx, db, tgID) -> *domain.User, error
//     Inserts a user row with only the Telegram identifier populated.
//     A concurrent insert for the same tgID is absorbed by the unique
//     constraint (ON CONFLICT DO NOTHING) and resolved by re-reading.
//
//   - UpdateUserInfo(ctx, db, upd) -> (int64, error)
//     Partially updates name/phone/email by Telegram identifier and returns
//     the number of matched rows (0 is not an error).
//
//   - DeleteUser(ctx, db, tgID) -> error
//     Deletes the user; owned orders go with it via the FK cascade.
//     Returns ErrNotFound when no row matched.
//
// This repository is designed to be wrapped by a higher-level service
// (see services.UserService) which enforces business rules such as the
// idempotent register-on-first-contact flow.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/superfood/go-food-backend/internal/domain"
	"github.com/superfood/go-food-backend/internal/transfer"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetUserByTgID fetches a single user by Telegram identifier. If the record
// does not exist, it returns ErrNotFound. On other DB errors, the raw error
// is returned.
func GetUserByTgID(ctx context.Context, db *gorm.DB, tgID int64) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("tg_id = ?", tgID).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user row carrying only the Telegram identifier.
// The insert uses ON CONFLICT DO NOTHING on tg_id so that a concurrent
// creation for the same identifier does not fail; when the insert is
// absorbed, the existing row is fetched and returned instead. This makes
// the operation a single atomic insert-if-absent rather than a
// check-then-insert race.
func CreateUser(ctx context.Context, db *gorm.DB, tgID int64) (*domain.User, error) {
	u := &domain.User{TgID: tgID}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tg_id"}},
			DoNothing: true,
		}).
		Create(u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race; the winner's row is the result.
		return GetUserByTgID(ctx, db, tgID)
	}
	return u, nil
}

// UpdateUserInfo updates name/phone/email for the user matching the payload's
// Telegram identifier. Only fields present in the payload are written.
// It returns the number of matched rows; zero rows is a no-op, not an error
// (callers decide whether to surface that).
func UpdateUserInfo(ctx context.Context, db *gorm.DB, upd transfer.UserUpdatePayload) (int64, error) {
	values := map[string]any{}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.Phone != nil {
		values["phone"] = *upd.Phone
	}
	if upd.Email != nil {
		values["email"] = *upd.Email
	}
	if len(values) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("tg_id = ?", upd.TgID).
		Updates(values)
	return res.RowsAffected, res.Error
}

// DeleteUser deletes the user matching tgID. The orders FK constraint
// cascades the delete to owned orders at the storage level; no application
// code touches the orders table. Returns ErrNotFound when no row matched.
func DeleteUser(ctx context.Context, db *gorm.DB, tgID int64) error {
	res := db.WithContext(ctx).
		Where("tg_id = ?", tgID).
		Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
