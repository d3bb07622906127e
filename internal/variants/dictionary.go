package variants

import "github.com/velora-shop/storefront-backend/pkg/db/models"

// Dictionary maps color and size ids to display names. Lookups fall back to
// the raw id so a missing catalog entry degrades to an ugly label rather than
// a blank one.
type Dictionary struct {
	colors map[string]string
	sizes  map[string]string
}

// NewDictionary builds a Dictionary from catalog color and size lists.
func NewDictionary(colors []models.Color, sizes []models.Size) *Dictionary {
	d := &Dictionary{
		colors: make(map[string]string, len(colors)),
		sizes:  make(map[string]string, len(sizes)),
	}
	for _, color := range colors {
		d.colors[color.ID] = color.Name
	}
	for _, size := range sizes {
		d.sizes[size.ID] = size.Name
	}
	return d
}

// ColorName returns the display name for a color id.
func (d *Dictionary) ColorName(id string) string {
	if name, ok := d.colors[id]; ok && name != "" {
		return name
	}
	return id
}

// SizeName returns the display name for a size id.
func (d *Dictionary) SizeName(id string) string {
	if name, ok := d.sizes[id]; ok && name != "" {
		return name
	}
	return id
}
