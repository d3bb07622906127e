package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/velora-shop/storefront-backend/internal/cart"
	"github.com/velora-shop/storefront-backend/internal/catalog"
	"github.com/velora-shop/storefront-backend/pkg/config"
	"github.com/velora-shop/storefront-backend/pkg/db/models"
	"github.com/velora-shop/storefront-backend/pkg/logger"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type routerResolver struct {
	product models.Product
}

func (r *routerResolver) Billboard(context.Context, string) models.Billboard {
	return models.Billboard{ID: "bb_1", Label: "Hero"}
}

func (r *routerResolver) Category(context.Context, string) models.Category {
	return models.Category{ID: "cat_1", Name: "Shirts"}
}

func (r *routerResolver) Categories(context.Context) []models.Category {
	return []models.Category{{ID: "cat_1", Name: "Shirts"}}
}

func (r *routerResolver) Colors(context.Context) []models.Color {
	return []models.Color{{ID: "col_red", Name: "Red"}}
}

func (r *routerResolver) Sizes(context.Context) []models.Size {
	return []models.Size{{ID: "size_m", Name: "Medium"}}
}

func (r *routerResolver) Product(context.Context, string) models.Product {
	return r.product
}

func (r *routerResolver) Products(context.Context, catalog.ProductFilter) []models.Product {
	return []models.Product{r.product}
}

type routerSessions struct {
	store *cart.Store
}

func (s *routerSessions) Store(context.Context, string) *cart.Store {
	return s.store
}

func newTestRouter(t *testing.T, dbErr, redisErr error) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	resolver := &routerResolver{product: models.Product{
		ID: "prod_1",
		Variants: []models.Variant{
			{ID: "var_1", ProductID: "prod_1", ColorID: "col_red", SizeID: "size_m"},
		},
	}}
	sessions := &routerSessions{store: cart.NewStore(context.Background(), nil, nil)}
	return NewRouter(cfg, logg, stubPinger{err: dbErr}, stubPinger{err: redisErr}, resolver, sessions)
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestRouterReadyFailsWhenDependencyDown(t *testing.T) {
	router := newTestRouter(t, nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRouterCatalogRoutes(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	paths := []string{
		"/api/v1/billboard",
		"/api/v1/categories",
		"/api/v1/categories/cat_1",
		"/api/v1/colors",
		"/api/v1/sizes",
		"/api/v1/products",
		"/api/v1/products/prod_1",
		"/api/v1/products/prod_1/options",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestRouterCartFlowMintsSession(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Fatalf("expected minted session id header")
	}
}

func TestRouterCartAddAndRemove(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	body := `{"productId":"prod_1","colorId":"col_red","sizeId":"size_m"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("X-Session-Id", "sess_router")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/prod_1/var_1", nil)
	req.Header.Set("X-Session-Id", "sess_router")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data struct {
			Items []cart.Item `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode cart payload: %v", err)
	}
	if len(envelope.Data.Items) != 0 {
		t.Fatalf("expected empty cart after removal, got %+v", envelope.Data.Items)
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics, got %d", rec.Code)
	}
}
