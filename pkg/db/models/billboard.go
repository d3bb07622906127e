package models

import "time"

// Billboard is a promotional banner. The terminal-default instance carries an
// empty ID so callers can tell placeholder content from real data.
type Billboard struct {
	ID        string    `gorm:"column:id;type:text;primaryKey" json:"id"`
	Label     string    `gorm:"column:label;not null" json:"label"`
	ImageURL  string    `gorm:"column:image_url;not null" json:"imageUrl"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// IsPlaceholder reports whether the billboard is the terminal default rather
// than a record from either data source.
func (b Billboard) IsPlaceholder() bool {
	return b.ID == ""
}
