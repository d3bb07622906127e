package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velora-shop/storefront-backend/api/controllers"
	"github.com/velora-shop/storefront-backend/api/middleware"
	"github.com/velora-shop/storefront-backend/pkg/config"
	"github.com/velora-shop/storefront-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	resolver controllers.CatalogResolver,
	sessions controllers.CartSessions,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/billboard", controllers.Billboard(resolver, logg))
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.Categories(resolver, logg))
			r.Get("/{categoryId}", controllers.CategoryDetail(resolver, logg))
		})
		r.Get("/colors", controllers.Colors(resolver, logg))
		r.Get("/sizes", controllers.Sizes(resolver, logg))
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.Products(resolver, logg))
			r.Get("/{productId}", controllers.ProductDetail(resolver, logg))
			r.Get("/{productId}/options", controllers.ProductOptions(resolver, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.Session(logg))
			r.Get("/", controllers.CartFetch(sessions, logg))
			r.Delete("/", controllers.CartClear(sessions, logg))
			r.Route("/items", func(r chi.Router) {
				r.Post("/", controllers.CartAddItem(sessions, resolver, logg))
				r.Route("/{productId}/{variantId}", func(r chi.Router) {
					r.Delete("/", controllers.CartRemoveItem(sessions, logg))
					r.Post("/increase", controllers.CartIncreaseItem(sessions, logg))
					r.Post("/decrease", controllers.CartDecreaseItem(sessions, logg))
				})
			})
		})
	})

	return r
}
