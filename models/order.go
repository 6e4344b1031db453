package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order lifecycle statuses. Analytics treats everything except cancelled
// as committed (or likely-committed) revenue.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// NonCancelledStatuses is the inclusive filter used by the sales time series.
// Over the five known statuses it is set-equivalent to `status <> cancelled`;
// it is kept as an explicit list so the two filters diverge visibly if a new
// status is ever introduced.
var NonCancelledStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipping,
	OrderStatusDelivered,
}

// Order represents a complete customer order.
// FinalTotal is authoritative for revenue; the per-item price×quantity
// breakdown is not guaranteed to reconcile with it exactly (taxes, shipping
// and discounts land on the order summary, not the items).
type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber     string         `json:"order_number" gorm:"type:varchar(32);uniqueIndex;not null"`
	CurrentStatus   string         `json:"current_status" gorm:"column:current_status;type:varchar(20);not null;default:'pending';index"`
	AddressSnapshot datatypes.JSON `json:"address_snapshot,omitempty" gorm:"type:jsonb"`
	Subtotal        float64        `json:"subtotal" gorm:"type:numeric(14,2);not null;default:0"`
	ShippingFee     float64        `json:"shipping_fee" gorm:"type:numeric(14,2);not null;default:0"`
	Discount        float64        `json:"discount" gorm:"type:numeric(14,2);not null;default:0"`
	FinalTotal      float64        `json:"final_total" gorm:"column:final_total;type:numeric(14,2);not null"`
	CustomerNotes   *string        `json:"customer_notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// OrderItem is a line item carrying a snapshot of the purchased variant.
// The snapshot survives product edits and deletions; product_id is kept
// only for analytics joins and may dangle once a product is removed.
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Image       string    `json:"image"`
	VariantName string    `json:"variant_name"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
