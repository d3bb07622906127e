package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog listing. Archived products never appear in storefront
// listings; variants enumerate the purchasable color/size combinations.
type Product struct {
	ID          string          `gorm:"column:id;type:text;primaryKey" json:"id"`
	CategoryID  string          `gorm:"column:category_id;type:text;not null" json:"categoryId"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Description string          `gorm:"column:description" json:"description"`
	IsFeatured  bool            `gorm:"column:is_featured;not null;default:false" json:"isFeatured"`
	IsArchived  bool            `gorm:"column:is_archived;not null;default:false" json:"isArchived"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"category"`
	Images      []Image         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Variants    []Variant       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
