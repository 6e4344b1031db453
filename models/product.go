package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is the catalog entry referenced by order line items. The analytics
// path only reads id, name and the category reference; inventory, media and
// the rest of the catalog surface are managed elsewhere.
type Product struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null;index"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
