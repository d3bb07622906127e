package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/velora-shop/storefront-backend/api/middleware"
	"github.com/velora-shop/storefront-backend/api/responses"
	"github.com/velora-shop/storefront-backend/internal/cart"
	"github.com/velora-shop/storefront-backend/internal/variants"
	pkgerrors "github.com/velora-shop/storefront-backend/pkg/errors"
	"github.com/velora-shop/storefront-backend/pkg/logger"
)

// CartSessions hands out the hydrated cart store for a session id.
type CartSessions interface {
	Store(ctx context.Context, sessionID string) *cart.Store
}

type addCartItemPayload struct {
	ProductID string `json:"productId"`
	ColorID   string `json:"colorId"`
	SizeID    string `json:"sizeId"`
}

type cartPayload struct {
	Items []cart.Item `json:"items"`
	Total string      `json:"total"`
}

func cartResponse(store *cart.Store) cartPayload {
	items := store.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return cartPayload{Items: items, Total: store.Total().StringFixed(2)}
}

func sessionStore(ctx context.Context, sessions CartSessions) (*cart.Store, error) {
	sessionID := middleware.SessionIDFromContext(ctx)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return sessions.Store(ctx, sessionID), nil
}

// CartFetch returns the session's current line items.
func CartFetch(sessions CartSessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable"))
			return
		}

		store, err := sessionStore(ctx, sessions)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse(store))
	}
}

// CartAddItem validates the color/size selection against the product's
// variant list and adds the resolved variant to the cart. A selection that
// does not resolve is rejected, matching a disabled add-to-cart control.
func CartAddItem(sessions CartSessions, resolver CatalogResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil || resolver == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable"))
			return
		}

		var payload addCartItemPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payload"))
			return
		}

		productID := strings.TrimSpace(payload.ProductID)
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		product := resolver.Product(ctx, productID)
		if product.ID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "product is not available"))
			return
		}

		variant := variants.ResolveVariant(product, strings.TrimSpace(payload.ColorID), strings.TrimSpace(payload.SizeID))
		if variant == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "selection does not resolve to a purchasable variant"))
			return
		}

		store, err := sessionStore(ctx, sessions)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.AddItem(ctx, product, *variant)
		responses.WriteSuccessStatus(w, http.StatusCreated, cartResponse(store))
	}
}

// CartRemoveItem deletes the matching line entirely.
func CartRemoveItem(sessions CartSessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable"))
			return
		}

		store, err := sessionStore(ctx, sessions)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.RemoveItem(ctx, chi.URLParam(r, "productId"), chi.URLParam(r, "variantId"))
		responses.WriteSuccess(w, cartResponse(store))
	}
}

// CartIncreaseItem bumps the matching line's quantity by one.
func CartIncreaseItem(sessions CartSessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable"))
			return
		}

		store, err := sessionStore(ctx, sessions)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.IncreaseItem(ctx, chi.URLParam(r, "productId"), chi.URLParam(r, "variantId"))
		responses.WriteSuccess(w, cartResponse(store))
	}
}

// CartDecreaseItem lowers the matching line's quantity by one, removing the
// line at quantity one.
func CartDecreaseItem(sessions CartSessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable"))
			return
		}

		store, err := sessionStore(ctx, sessions)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.DecreaseItem(ctx, chi.URLParam(r, "productId"), chi.URLParam(r, "variantId"))
		responses.WriteSuccess(w, cartResponse(store))
	}
}

// CartClear empties the session's cart.
func CartClear(sessions CartSessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable"))
			return
		}

		store, err := sessionStore(ctx, sessions)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.RemoveAll(ctx)
		responses.WriteSuccess(w, cartResponse(store))
	}
}
