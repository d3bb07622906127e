// Package cart maintains the shopper's line items for one session. The
// collection is keyed by (productId, variantId): repeated adds of the same
// purchasable SKU aggregate into a quantity instead of duplicating entries.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/velora-shop/storefront-backend/pkg/db/models"
)

// Key identifies a line item: one product in one concrete variant.
type Key struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
}

// Item is a single cart line. Quantity is always at least 1; an item whose
// quantity would drop to zero is removed from the collection instead.
type Item struct {
	ProductID string          `json:"productId"`
	VariantID string          `json:"variantId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	ColorID   string          `json:"colorId"`
	SizeID    string          `json:"sizeId"`
	Quantity  int             `json:"quantity"`
}

// Key returns the aggregation key for this line.
func (i Item) Key() Key {
	return Key{ProductID: i.ProductID, VariantID: i.VariantID}
}

// NewItem snapshots a product and a resolved variant into a quantity-1 line.
func NewItem(product models.Product, variant models.Variant) Item {
	item := Item{
		ProductID: product.ID,
		VariantID: variant.ID,
		Name:      product.Name,
		Price:     product.Price,
		ColorID:   variant.ColorID,
		SizeID:    variant.SizeID,
		Quantity:  1,
	}
	if len(product.Images) > 0 {
		item.ImageURL = product.Images[0].URL
	}
	return item
}
