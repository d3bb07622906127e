package models

import "time"

// Category is a catalog classification node. Every category embeds its
// billboard, which may be the placeholder when resolution fell all the way
// through the chain.
type Category struct {
	ID          string    `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	BillboardID string    `gorm:"column:billboard_id;type:text" json:"billboardId,omitempty"`
	Billboard   Billboard `gorm:"foreignKey:BillboardID" json:"billboard"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
