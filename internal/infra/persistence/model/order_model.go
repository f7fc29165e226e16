package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. UserID stays nullable for guest
// purchases; the unique payment_session_id makes webhook replays harmless.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber      string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	UserID           *uuid.UUID `gorm:"type:uuid;index"`
	OrderEmail       string     `gorm:"type:varchar(255);not null;index"`
	IsPaid           bool       `gorm:"not null;default:false"`
	PaidAt           *time.Time
	TotalAmount      int64  `gorm:"not null;default:0"`
	PaymentSessionID string `gorm:"type:varchar(255);uniqueIndex"`
	PaymentID        string `gorm:"type:varchar(255)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and price are frozen
// copies taken at purchase time.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Price       int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null;default:1"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
