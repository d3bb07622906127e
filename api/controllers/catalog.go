package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/velora-shop/storefront-backend/api/responses"
	"github.com/velora-shop/storefront-backend/internal/catalog"
	"github.com/velora-shop/storefront-backend/internal/variants"
	"github.com/velora-shop/storefront-backend/pkg/db/models"
	pkgerrors "github.com/velora-shop/storefront-backend/pkg/errors"
	"github.com/velora-shop/storefront-backend/pkg/logger"
)

// CatalogResolver is the best-effort catalog lookup surface. Every method
// returns a value, never an error: exhausted lookups come back as the
// documented placeholder defaults.
type CatalogResolver interface {
	Billboard(ctx context.Context, id string) models.Billboard
	Category(ctx context.Context, id string) models.Category
	Categories(ctx context.Context) []models.Category
	Colors(ctx context.Context) []models.Color
	Sizes(ctx context.Context) []models.Size
	Product(ctx context.Context, id string) models.Product
	Products(ctx context.Context, filter catalog.ProductFilter) []models.Product
}

// Billboard returns the billboard for the requested id, or the first
// available one when the id is empty.
func Billboard(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		id := strings.TrimSpace(r.URL.Query().Get("id"))
		responses.WriteSuccess(w, resolver.Billboard(ctx, id))
	}
}

// Categories lists every category with its embedded billboard.
func Categories(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		responses.WriteSuccess(w, resolver.Categories(ctx))
	}
}

// CategoryDetail returns a single category by id.
func CategoryDetail(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "categoryId"))
		responses.WriteSuccess(w, resolver.Category(ctx, id))
	}
}

// Colors lists the color dictionary.
func Colors(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		responses.WriteSuccess(w, resolver.Colors(ctx))
	}
}

// Sizes lists the size dictionary.
func Sizes(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		responses.WriteSuccess(w, resolver.Sizes(ctx))
	}
}

// Products lists products matching the query filters. Invalid filters are the
// only non-200 outcome on the catalog surface.
func Products(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		query := r.URL.Query()
		filter := catalog.ProductFilter{
			Name:       query.Get("name"),
			CategoryID: query.Get("categoryId"),
			ColorID:    query.Get("colorId"),
			SizeID:     query.Get("sizeId"),
			IsFeatured: query.Get("isFeatured") == "true",
		}.Normalize()

		if err := filter.Validate(); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, resolver.Products(ctx, filter))
	}
}

// ProductDetail returns a single product with images, category and variants.
func ProductDetail(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, resolver.Product(ctx, id))
	}
}

type variantOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productOptionsPayload struct {
	ProductID string          `json:"productId"`
	Colors    []variantOption `json:"colors"`
	Sizes     []variantOption `json:"sizes"`
	Resolved  *models.Variant `json:"resolved,omitempty"`
}

// ProductOptions derives the selectable colors for a product and, once a
// color is chosen via the colorId query param, the sizes available in it.
// Names come from the catalog dictionaries and fall back to raw ids.
func ProductOptions(resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog resolver unavailable"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "productId"))
		product := resolver.Product(ctx, id)

		selection := variants.Selection{
			ColorID: strings.TrimSpace(r.URL.Query().Get("colorId")),
			SizeID:  strings.TrimSpace(r.URL.Query().Get("sizeId")),
		}
		derived := variants.Derive(product, selection)
		dict := variants.NewDictionary(resolver.Colors(ctx), resolver.Sizes(ctx))

		payload := productOptionsPayload{
			ProductID: product.ID,
			Colors:    make([]variantOption, 0, len(derived.Colors)),
			Sizes:     make([]variantOption, 0, len(derived.Sizes)),
			Resolved:  derived.Resolved,
		}
		for _, colorID := range derived.Colors {
			payload.Colors = append(payload.Colors, variantOption{ID: colorID, Name: dict.ColorName(colorID)})
		}
		for _, sizeID := range derived.Sizes {
			payload.Sizes = append(payload.Sizes, variantOption{ID: sizeID, Name: dict.SizeName(sizeID)})
		}

		responses.WriteSuccess(w, payload)
	}
}
