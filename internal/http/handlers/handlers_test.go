package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/domain"
	"github.com/superfood/go-food-backend/internal/repo"
	"github.com/superfood/go-food-backend/internal/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("handlers_test_%d.db", time.Now().UnixNano()))
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

	userSvc := services.NewUserService(db, services.DefaultUserRepo())
	orderSvc := services.NewOrderService(db, services.DefaultOrderRepo(), userSvc)
	menuSvc := services.NewMenuService(db)
	h := New(menuSvc, orderSvc, userSvc)

	r := gin.New()
	r.GET("/", h.Hello)
	api := r.Group("/api")
	api.GET("/items", h.ListItems)
	api.POST("/add_order", h.AddOrder)
	api.PATCH("/update_user_info", h.UpdateUserInfo)
	api.DELETE("/delete_user/:tg_id", h.DeleteUser)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHello(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["message"] != "Hello, World!" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestListItems_ReturnsSeededMenu(t *testing.T) {
	r, db := newTestRouter(t)
	seed := domain.Item{
		ID: 1, Weight: 450, Name: "Margherita",
		Description: "Tomato, mozzarella, basil",
		Cost:        500, Category: 1, ImageName: "img/margherita.png",
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 1 || items[0]["name"] != "Margherita" || items[0]["image_name"] != "img/margherita.png" {
		t.Fatalf("unexpected items payload: %s", w.Body.String())
	}
}

func TestAddOrder_OKWithDefaults(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/add_order",
		`{"tg_id": 12345, "items": "Pizza x1", "total_cost": 500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("expected ok envelope, got %s", w.Body.String())
	}

	var order domain.Order
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.Items != "Pizza x1" || order.TotalCost != 500 {
		t.Fatalf("unexpected order row: %+v", order)
	}
	if order.PaymentType == "" || order.DeliveryType == "" || order.Address == nil {
		t.Fatalf("defaults not applied: %+v", order)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("creation timestamp must be assigned at insert")
	}
}

func TestAddOrder_ValidationError(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/add_order",
		`{"tg_id": 12345, "items": "Pizza x1", "total_cost": -5}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "total_cost") {
		t.Fatalf("error must name the field, got %s", w.Body.String())
	}

	var count int64
	if err := db.Model(&domain.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected order must not be persisted, %d rows", count)
	}
}

func TestAddOrder_MalformedJSON(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/add_order", `{"tg_id": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateUserInfo_OK(t *testing.T) {
	r, db := newTestRouter(t)

	if err := db.Create(&domain.User{TgID: 42}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	w := doJSON(t, r, http.MethodPatch, "/api/update_user_info",
		`{"tg_id": 42, "name": "Andrew", "phone": "+71234567890", "email": "andrew@example.ru"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}

	var u domain.User
	if err := db.Where("tg_id = ?", 42).First(&u).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if u.Name == nil || *u.Name != "Andrew" || u.Email == nil || *u.Email != "andrew@example.ru" {
		t.Fatalf("profile not updated: %+v", u)
	}
}

func TestUpdateUserInfo_BadPhone(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPatch, "/api/update_user_info",
		`{"tg_id": 42, "phone": "12345"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "phone") {
		t.Fatalf("error must name the field, got %s", w.Body.String())
	}
}

func TestDeleteUser_OKAndNotFound(t *testing.T) {
	r, db := newTestRouter(t)

	if err := db.Create(&domain.User{TgID: 555}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, "/api/delete_user/555", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/delete_user/99999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "not ok. The user was not found") {
		t.Fatalf("expected not-found envelope, got %s", w.Body.String())
	}
}

func TestDeleteUser_BadTgID(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodDelete, "/api/delete_user/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d body=%s", w.Code, w.Body.String())
	}
}
