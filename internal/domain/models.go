// Package domain defines the persistence models for menu items, users, and
// orders. These types are mapped with GORM and form the core data layer of
// the food-ordering application.
package domain

import "time"

// Item represents a single menu position. Items are reference data: they are
// seeded externally and only ever read through the public surface.
//
// Fields:
//   - ID: integer primary key.
//   - Weight: portion weight in grams (> 0).
//   - Name: dish name (2–100 chars).
//   - Description: dish description (1–300 chars).
//   - Cost: price in minor units (> 0).
//   - Category: menu category (1–6).
//   - ImageName: path to the dish image (1–100 chars).
type Item struct {
	ID          int64  `json:"id"          gorm:"primaryKey"`
	Weight      int    `json:"weight"      gorm:"not null"`
	Name        string `json:"name"        gorm:"type:varchar(100);not null"`
	Description string `json:"description" gorm:"type:varchar(300);not null"`
	Cost        int    `json:"cost"        gorm:"not null"`
	Category    int    `json:"category"    gorm:"not null"`
	ImageName   string `json:"image_name"  gorm:"type:varchar(100);not null"`
}

// TableName returns the database table name for Item.
func (Item) TableName() string { return "items" }

// User represents a customer. The Telegram identifier is the natural key for
// every lookup; a user row is created on first contact with only TgID set and
// the profile fields are filled in later via partial updates.
//
// Fields:
//   - ID: system-assigned integer primary key.
//   - TgID: Telegram user identifier, unique (enforced by index).
//   - Name / Phone / Email: optional profile fields.
type User struct {
	ID    int64   `json:"id"    gorm:"primaryKey"`
	TgID  int64   `json:"tg_id" gorm:"uniqueIndex:ux_users_tg_id;not null"`
	Name  *string `json:"name"  gorm:"type:varchar(100)"`
	Phone *string `json:"phone" gorm:"type:varchar(20)"`
	Email *string `json:"email" gorm:"type:varchar(50)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Order represents a submitted purchase. Orders are append-only: this system
// never updates or deletes them directly; they disappear only through the
// cascade when their owner is removed.
//
// Fields:
//   - ID: integer primary key.
//   - UserID: owning user; the FK constraint cascades on delete.
//   - TgID: denormalized copy of the owner's Telegram identifier.
//   - Items: serialized description of the purchased positions (1–500 chars).
//   - TotalCost: order total (> 0).
//   - CreatedAt: assigned by the store at insert time.
//   - DeliveryType / PaymentType: free-form but length-bounded strings.
//   - Description: optional customer comment.
//   - Address: optional delivery address; relevant for courier delivery only.
type Order struct {
	ID           int64     `json:"id"                gorm:"primaryKey"`
	UserID       int64     `json:"user"              gorm:"column:user;not null;index"`
	TgID         int64     `json:"tg_id"             gorm:"not null"`
	Items        string    `json:"items"             gorm:"type:varchar(500);not null"`
	TotalCost    int       `json:"total_cost"        gorm:"not null"`
	CreatedAt    time.Time `json:"date_create_order" gorm:"column:date_create_order;autoCreateTime"`
	DeliveryType string    `json:"type_of_delivery"  gorm:"type:varchar(30);not null"`
	PaymentType  string    `json:"type_of_pay"       gorm:"type:varchar(50);not null"`
	Description  *string   `json:"description"       gorm:"type:varchar(300)"`
	Address      *string   `json:"address"           gorm:"type:varchar(200)"`

	// Owner is the FK association; orders are cascade-deleted with their user.
	Owner User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }
