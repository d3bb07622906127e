package models

import "time"

// Image is a product photo reference.
type Image struct {
	ID        string    `gorm:"column:id;type:text;primaryKey" json:"id"`
	ProductID string    `gorm:"column:product_id;type:text;not null" json:"productId"`
	URL       string    `gorm:"column:url;not null" json:"url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
