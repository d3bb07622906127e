package models

import "time"

// Variant is a purchasable SKU: one product in one color and one size. Only
// combinations present in a product's variant list are purchasable.
type Variant struct {
	ID        string    `gorm:"column:id;type:text;primaryKey" json:"id"`
	ProductID string    `gorm:"column:product_id;type:text;not null" json:"productId"`
	ColorID   string    `gorm:"column:color_id;type:text;not null" json:"colorId"`
	SizeID    string    `gorm:"column:size_id;type:text;not null" json:"sizeId"`
	Color     Color     `gorm:"foreignKey:ColorID" json:"color"`
	Size      Size      `gorm:"foreignKey:SizeID" json:"size"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
