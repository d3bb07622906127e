package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/velora-shop/storefront-backend/api/responses"
	"github.com/velora-shop/storefront-backend/internal/catalog"
	"github.com/velora-shop/storefront-backend/pkg/db/models"
	"github.com/velora-shop/storefront-backend/pkg/logger"
)

type stubResolver struct {
	billboard  models.Billboard
	category   models.Category
	categories []models.Category
	colors     []models.Color
	sizes      []models.Size
	product    models.Product
	products   []models.Product

	billboardID string
	productID   string
	filter      catalog.ProductFilter
}

func (s *stubResolver) Billboard(_ context.Context, id string) models.Billboard {
	s.billboardID = id
	return s.billboard
}

func (s *stubResolver) Category(_ context.Context, _ string) models.Category {
	return s.category
}

func (s *stubResolver) Categories(_ context.Context) []models.Category {
	return s.categories
}

func (s *stubResolver) Colors(_ context.Context) []models.Color {
	return s.colors
}

func (s *stubResolver) Sizes(_ context.Context) []models.Size {
	return s.sizes
}

func (s *stubResolver) Product(_ context.Context, id string) models.Product {
	s.productID = id
	return s.product
}

func (s *stubResolver) Products(_ context.Context, filter catalog.ProductFilter) []models.Product {
	s.filter = filter
	return s.products
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

func withRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestBillboardAlwaysOK(t *testing.T) {
	resolver := &stubResolver{billboard: models.Billboard{ID: "bb_1", Label: "Summer"}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billboard?id=bb_1", nil)
	rec := httptest.NewRecorder()
	Billboard(resolver, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resolver.billboardID != "bb_1" {
		t.Fatalf("expected id forwarded, got %q", resolver.billboardID)
	}

	var got models.Billboard
	decodeData(t, rec, &got)
	if got.Label != "Summer" {
		t.Fatalf("unexpected billboard %+v", got)
	}
}

func TestBillboardPlaceholderStillOK(t *testing.T) {
	resolver := &stubResolver{billboard: catalog.DefaultBillboard()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billboard", nil)
	rec := httptest.NewRecorder()
	Billboard(resolver, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for placeholder default, got %d", rec.Code)
	}

	var got models.Billboard
	decodeData(t, rec, &got)
	if got.ID != "" {
		t.Fatalf("expected sentinel empty id, got %q", got.ID)
	}
}

func TestCategoriesListsAll(t *testing.T) {
	resolver := &stubResolver{categories: []models.Category{{ID: "cat_1", Name: "Shirts"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	Categories(resolver, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []models.Category
	decodeData(t, rec, &got)
	if len(got) != 1 || got[0].Name != "Shirts" {
		t.Fatalf("unexpected categories %+v", got)
	}
}

func TestProductsForwardsFilter(t *testing.T) {
	resolver := &stubResolver{products: []models.Product{}}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/products?name=shirt&categoryId=cat_1&colorId=col_1&sizeId=size_1&isFeatured=true", nil)
	rec := httptest.NewRecorder()
	Products(resolver, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resolver.filter.Name != "shirt" || resolver.filter.CategoryID != "cat_1" ||
		resolver.filter.ColorID != "col_1" || resolver.filter.SizeID != "size_1" || !resolver.filter.IsFeatured {
		t.Fatalf("filter not forwarded: %+v", resolver.filter)
	}
}

func TestProductsRejectsOversizedFilter(t *testing.T) {
	resolver := &stubResolver{}
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?name="+string(long), nil)
	rec := httptest.NewRecorder()
	Products(resolver, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized filter, got %d", rec.Code)
	}
}

func TestProductDetailForwardsID(t *testing.T) {
	resolver := &stubResolver{product: models.Product{ID: "prod_1", Name: "Shirt", Price: decimal.NewFromInt(25)}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod_1", nil)
	req = withRouteParam(req, "productId", "prod_1")
	rec := httptest.NewRecorder()
	ProductDetail(resolver, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resolver.productID != "prod_1" {
		t.Fatalf("expected product id forwarded, got %q", resolver.productID)
	}
}

func TestProductOptionsDerivesAndNames(t *testing.T) {
	resolver := &stubResolver{
		product: models.Product{
			ID: "prod_1",
			Variants: []models.Variant{
				{ID: "var_1", ProductID: "prod_1", ColorID: "col_red", SizeID: "size_s"},
				{ID: "var_2", ProductID: "prod_1", ColorID: "col_red", SizeID: "size_m"},
				{ID: "var_3", ProductID: "prod_1", ColorID: "col_blue", SizeID: "size_l"},
			},
		},
		colors: []models.Color{{ID: "col_red", Name: "Red"}, {ID: "col_blue", Name: "Blue"}},
		sizes:  []models.Size{{ID: "size_s", Name: "Small"}, {ID: "size_m", Name: "Medium"}},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod_1/options?colorId=col_red", nil)
	req = withRouteParam(req, "productId", "prod_1")
	rec := httptest.NewRecorder()
	ProductOptions(resolver, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got productOptionsPayload
	decodeData(t, rec, &got)
	if len(got.Colors) != 2 || got.Colors[0].Name != "Red" {
		t.Fatalf("unexpected colors %+v", got.Colors)
	}
	if len(got.Sizes) != 2 || got.Sizes[0].Name != "Small" || got.Sizes[1].Name != "Medium" {
		t.Fatalf("unexpected sizes %+v", got.Sizes)
	}
	if got.Resolved != nil {
		t.Fatalf("expected no resolved variant without a size selection")
	}
}

func TestProductOptionsFallsBackToRawIDs(t *testing.T) {
	resolver := &stubResolver{
		product: models.Product{
			ID:       "prod_1",
			Variants: []models.Variant{{ID: "var_1", ProductID: "prod_1", ColorID: "col_x", SizeID: "size_x"}},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod_1/options", nil)
	req = withRouteParam(req, "productId", "prod_1")
	rec := httptest.NewRecorder()
	ProductOptions(resolver, testLogger()).ServeHTTP(rec, req)

	var got productOptionsPayload
	decodeData(t, rec, &got)
	if len(got.Colors) != 1 || got.Colors[0].Name != "col_x" {
		t.Fatalf("expected raw id fallback, got %+v", got.Colors)
	}
}

func TestCatalogControllersGuardNilResolver(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/colors", nil)
	rec := httptest.NewRecorder()
	Colors(nil, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope responses.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if envelope.Error.Code == "" {
		t.Fatalf("expected error code in payload")
	}
}
