package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/repo"
	"github.com/superfood/go-food-backend/internal/transfer"
)

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("svc_test_%d.db", time.Now().UnixNano()))
	db, err := repo.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func strptr(s string) *string { return &s }

func TestUserService_RegisterIsIdempotent(t *testing.T) {
	db := newServiceDB(t)
	svc := NewUserService(db, DefaultUserRepo())
	ctx := context.Background()

	first, err := svc.Register(ctx, 12345)
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	second, err := svc.Register(ctx, 12345)
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("register must yield the same user both times: %d vs %d", first.ID, second.ID)
	}
}

func TestUserService_UpdateInfoValidatesFirst(t *testing.T) {
	db := newServiceDB(t)
	svc := NewUserService(db, DefaultUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, 7); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := svc.UpdateInfo(ctx, transfer.UserUpdatePayload{TgID: 7, Phone: strptr("12345")})
	var ve *transfer.ValidationError
	if !errors.As(err, &ve) || ve.Field != "phone" {
		t.Fatalf("expected phone validation error, got %v", err)
	}

	// Invalid payload must not have touched the row.
	u, err := svc.Register(ctx, 7)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if u.Phone != nil {
		t.Fatalf("phone must be untouched after rejected update, got %v", *u.Phone)
	}
}

func TestUserService_UpdateInfoNoMatchIsSilent(t *testing.T) {
	db := newServiceDB(t)
	svc := NewUserService(db, DefaultUserRepo())

	err := svc.UpdateInfo(context.Background(), transfer.UserUpdatePayload{
		TgID: 424242,
		Name: strptr("Ghost"),
	})
	if err != nil {
		t.Fatalf("no-match update must succeed, got %v", err)
	}
}

func TestUserService_DeleteUnknownSignalsNotFound(t *testing.T) {
	db := newServiceDB(t)
	svc := NewUserService(db, DefaultUserRepo())

	err := svc.Delete(context.Background(), 99999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteRemovesUser(t *testing.T) {
	db := newServiceDB(t)
	svc := NewUserService(db, DefaultUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, 321); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Delete(ctx, 321); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, 321); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("second delete must be not-found, got %v", err)
	}
}
