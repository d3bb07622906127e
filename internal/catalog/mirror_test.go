package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/velora-shop/storefront-backend/pkg/errors"
	"github.com/velora-shop/storefront-backend/pkg/db/models"
)

func TestNewMirrorRejectsBadBaseURLs(t *testing.T) {
	tests := []string{"", "   ", "not-a-url", "https://"}
	for _, raw := range tests {
		_, err := NewMirror(raw)
		require.Error(t, err, "base url %q", raw)
		assert.True(t, pkgerrors.Is(err, pkgerrors.CodeMisconfigured))
	}
}

func TestMirrorBillboardSendsNoCacheHeaders(t *testing.T) {
	var gotCacheControl string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		require.Equal(t, "/billboards/b1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Billboard{ID: "b1", Label: "Hero", ImageURL: "u"})
	}))
	defer server.Close()

	mirror, err := NewMirror(server.URL)
	require.NoError(t, err)

	billboard, err := mirror.Billboard(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Hero", billboard.Label)
	assert.Contains(t, gotCacheControl, "no-store")
}

func TestMirrorNotFoundIsTyped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	mirror, err := NewMirror(server.URL)
	require.NoError(t, err)

	_, err = mirror.Category(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}

func TestMirrorServerErrorIsDependencyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	mirror, err := NewMirror(server.URL)
	require.NoError(t, err)

	_, err = mirror.Categories(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeDependency))
}

func TestMirrorProductsEncodesFilter(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.Product{{ID: "p1"}})
	}))
	defer server.Close()

	mirror, err := NewMirror(server.URL)
	require.NoError(t, err)

	products, err := mirror.Products(context.Background(), ProductFilter{
		CategoryID: "c1",
		ColorID:    "red",
		IsFeatured: true,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Contains(t, gotQuery, "categoryId=c1")
	assert.Contains(t, gotQuery, "colorId=red")
	assert.Contains(t, gotQuery, "isFeatured=true")
	assert.NotContains(t, gotQuery, "sizeId", "unset fields must be omitted")
	assert.NotContains(t, gotQuery, "name", "unset fields must be omitted")
}

func TestMirrorDecodesLists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/colors":
			_ = json.NewEncoder(w).Encode([]models.Color{{ID: "c", Name: "Cyan", Value: "#0ff"}})
		case "/sizes":
			_ = json.NewEncoder(w).Encode([]models.Size{{ID: "s", Name: "Small", Value: "S"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	mirror, err := NewMirror(server.URL)
	require.NoError(t, err)

	colors, err := mirror.Colors(context.Background())
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "Cyan", colors[0].Name)

	sizes, err := mirror.Sizes(context.Background())
	require.NoError(t, err)
	require.Len(t, sizes, 1)
	assert.Equal(t, "S", sizes[0].Value)
}

func TestMirrorMalformedBodyIsDependencyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	mirror, err := NewMirror(server.URL)
	require.NoError(t, err)

	_, err = mirror.Billboards(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeDependency))
}
