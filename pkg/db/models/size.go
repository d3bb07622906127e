package models

import "time"

// Size is an immutable attribute dictionary entry.
type Size struct {
	ID        string    `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
