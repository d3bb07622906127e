package catalog

import (
	"context"
	"net/url"

	"github.com/velora-shop/storefront-backend/pkg/db/models"
)

// Billboard fetches one billboard by id from the mirror.
func (m *Mirror) Billboard(ctx context.Context, id string) (*models.Billboard, error) {
	var billboard models.Billboard
	if err := m.getJSON(ctx, "billboards/"+url.PathEscape(id), nil, &billboard); err != nil {
		return nil, err
	}
	return &billboard, nil
}

// Billboards fetches the full billboard list from the mirror.
func (m *Mirror) Billboards(ctx context.Context) ([]models.Billboard, error) {
	var billboards []models.Billboard
	if err := m.getJSON(ctx, "billboards", nil, &billboards); err != nil {
		return nil, err
	}
	return billboards, nil
}

// Category fetches one category by id from the mirror.
func (m *Mirror) Category(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := m.getJSON(ctx, "categories/"+url.PathEscape(id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Categories fetches the full category list from the mirror.
func (m *Mirror) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := m.getJSON(ctx, "categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Colors fetches the color dictionary from the mirror.
func (m *Mirror) Colors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := m.getJSON(ctx, "colors", nil, &colors); err != nil {
		return nil, err
	}
	return colors, nil
}

// Sizes fetches the size dictionary from the mirror.
func (m *Mirror) Sizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	if err := m.getJSON(ctx, "sizes", nil, &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

// Product fetches one product by id from the mirror.
func (m *Mirror) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := m.getJSON(ctx, "products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Products fetches the filtered product list from the mirror.
func (m *Mirror) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product
	if err := m.getJSON(ctx, "products", filter.Normalize().QueryValues(), &products); err != nil {
		return nil, err
	}
	return products, nil
}
