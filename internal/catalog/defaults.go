package catalog

import "github.com/velora-shop/storefront-backend/pkg/db/models"

// Terminal defaults returned when both sources fail. All carry an empty ID so
// the UI can tell placeholder content from real records.

const placeholderImageURL = "https://via.placeholder.com/1200x400"

// DefaultBillboard is the placeholder banner.
func DefaultBillboard() models.Billboard {
	return models.Billboard{
		ID:       "",
		Label:    "No Billboards Available",
		ImageURL: placeholderImageURL,
	}
}

// DefaultCategory is the placeholder classification node.
func DefaultCategory() models.Category {
	return models.Category{
		ID:        "",
		Name:      "Error",
		Billboard: models.Billboard{},
	}
}

// DefaultProduct is the placeholder listing used by single-product lookups.
func DefaultProduct() models.Product {
	return models.Product{ID: ""}
}
