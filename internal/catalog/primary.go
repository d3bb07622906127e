package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/velora-shop/storefront-backend/pkg/db"
	"github.com/velora-shop/storefront-backend/pkg/db/models"
)

// Repository is the primary-source query layer. Misses are reported as
// (nil, nil) / empty slices so the resolver can distinguish "no record" from
// a stage failure. Listing order is an explicit contract: newest first,
// tie-broken by id, so "first available" lookups stay deterministic across
// backends.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{db: conn}
}

// BillboardByID loads one billboard. An empty id means "first available".
func (r *Repository) BillboardByID(ctx context.Context, id string) (*models.Billboard, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id")
	if id != "" {
		query = query.Where("id = ?", id)
	}

	var billboard models.Billboard
	if err := query.First(&billboard).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &billboard, nil
}

// FirstBillboard returns the newest billboard, or nil when none exist.
func (r *Repository) FirstBillboard(ctx context.Context) (*models.Billboard, error) {
	return r.BillboardByID(ctx, "")
}

// CategoryByID loads one category with its billboard eager-loaded. An empty
// id means "first available".
func (r *Repository) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	query := r.db.WithContext(ctx).
		Preload("Billboard").
		Order("created_at DESC, id")
	if id != "" {
		query = query.Where("id = ?", id)
	}

	var category models.Category
	if err := query.First(&category).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Categories lists every category, newest first, with billboards attached.
func (r *Repository) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Billboard").
		Order("created_at DESC, id").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Colors lists the color dictionary.
func (r *Repository) Colors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

// Sizes lists the size dictionary.
func (r *Repository) Sizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	if err := r.db.WithContext(ctx).Order("created_at DESC, id").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// ProductByID loads one non-archived product with all associations. An empty
// id means "first available".
func (r *Repository) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	query := r.productScope(ctx).Order("products.created_at DESC, products.id")
	if id != "" {
		query = query.Where("products.id = ?", id)
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Products lists non-archived products matching the filter, newest first.
func (r *Repository) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	filter = filter.Normalize()

	query := r.productScope(ctx).Order("products.created_at DESC, products.id")

	if filter.CategoryID != "" {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.IsFeatured {
		query = query.Where("products.is_featured = ?", true)
	}
	if filter.Name != "" {
		query = query.Where(`LOWER(products.name) LIKE ? ESCAPE '\'`, "%"+lowerLike(filter.Name)+"%")
	}
	if filter.ColorID != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM variants WHERE variants.product_id = products.id AND variants.color_id = ?)",
			filter.ColorID,
		)
	}
	if filter.SizeID != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM variants WHERE variants.product_id = products.id AND variants.size_id = ?)",
			filter.SizeID,
		)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// lowerLike folds case and escapes LIKE wildcards so a literal name fragment
// cannot widen the match.
func lowerLike(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func (r *Repository) productScope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Images").
		Preload("Category").
		Preload("Category.Billboard").
		Preload("Variants").
		Preload("Variants.Color").
		Preload("Variants.Size").
		Where("products.is_archived = ?", false)
}
