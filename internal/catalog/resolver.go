package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/velora-shop/storefront-backend/pkg/db/models"
	"github.com/velora-shop/storefront-backend/pkg/logger"
	"github.com/velora-shop/storefront-backend/pkg/metrics"
)

// PrimarySource is the authoritative structured store, queried first.
type PrimarySource interface {
	BillboardByID(ctx context.Context, id string) (*models.Billboard, error)
	FirstBillboard(ctx context.Context) (*models.Billboard, error)
	CategoryByID(ctx context.Context, id string) (*models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Colors(ctx context.Context) ([]models.Color, error)
	Sizes(ctx context.Context) ([]models.Size, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	Products(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

// MirrorSource is the HTTP mirror, consulted only after a primary miss or
// failure. A nil MirrorSource disables the network stage entirely, which is
// how a missing or malformed base URL is handled.
type MirrorSource interface {
	Billboard(ctx context.Context, id string) (*models.Billboard, error)
	Billboards(ctx context.Context) ([]models.Billboard, error)
	Category(ctx context.Context, id string) (*models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Colors(ctx context.Context) ([]models.Color, error)
	Sizes(ctx context.Context) ([]models.Size, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	Products(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

const (
	stagePrimary = "primary"
	stageMirror  = "mirror"
)

// Resolver runs the primary → mirror → default chain for every catalog
// entity family. Its methods are total: they always return a value of the
// expected shape and never an error. Stage failures are swallowed, logged
// once per call, and counted in metrics.
type Resolver struct {
	primary PrimarySource
	mirror  MirrorSource
	logg    *logger.Logger
	metrics *metrics.ResolverMetrics
}

// NewResolver wires the chain. mirror may be nil when the secondary source is
// not configured; logg and resolverMetrics may be nil and are then inert.
func NewResolver(primary PrimarySource, mirror MirrorSource, logg *logger.Logger, resolverMetrics *metrics.ResolverMetrics) (*Resolver, error) {
	if primary == nil {
		return nil, fmt.Errorf("primary source required")
	}
	return &Resolver{
		primary: primary,
		mirror:  mirror,
		logg:    logg,
		metrics: resolverMetrics,
	}, nil
}

// stage is one link in the chain. run reports (value, found, err); an error
// or a not-found both advance the chain, they only differ in diagnostics.
type stage[T any] struct {
	name string
	run  func(ctx context.Context) (T, bool, error)
}

func resolveChain[T any](ctx context.Context, r *Resolver, entity string, stages []stage[T], fallback func() T) T {
	start := time.Now()
	var errs error

	for _, st := range stages {
		value, found, err := st.run(ctx)
		switch {
		case err != nil:
			errs = multierr.Append(errs, fmt.Errorf("%s stage: %w", st.name, err))
			r.metrics.ObserveStage(entity, st.name, metrics.OutcomeFail)
		case !found:
			r.metrics.ObserveStage(entity, st.name, metrics.OutcomeMiss)
		default:
			r.metrics.ObserveStage(entity, st.name, metrics.OutcomeHit)
			r.metrics.ObserveDuration(entity, time.Since(start))
			if errs != nil && r.logg != nil {
				lctx := r.logg.WithEntity(ctx, entity)
				lctx = r.logg.WithField(lctx, "stage", st.name)
				lctx = r.logg.WithField(lctx, "recovered_from", errs.Error())
				r.logg.Debug(lctx, "resolved after stage failure")
			}
			return value
		}
	}

	r.metrics.ObserveDuration(entity, time.Since(start))
	if r.logg != nil {
		lctx := r.logg.WithEntity(ctx, entity)
		if errs != nil {
			lctx = r.logg.WithField(lctx, "errors", errs.Error())
		}
		r.logg.Warn(lctx, "all stages exhausted, returning terminal default")
	}
	return fallback()
}

// Billboard resolves one billboard: by id when given, otherwise the first
// available. The mirror stage additionally falls back to the head of the
// full list when the direct lookup fails, mirroring the storefront's
// on-the-wire behavior.
func (r *Resolver) Billboard(ctx context.Context, id string) models.Billboard {
	stages := []stage[models.Billboard]{{
		name: stagePrimary,
		run: func(ctx context.Context) (models.Billboard, bool, error) {
			billboard, err := r.primary.BillboardByID(ctx, id)
			if err != nil {
				return models.Billboard{}, false, err
			}
			if billboard == nil && id != "" {
				billboard, err = r.primary.FirstBillboard(ctx)
				if err != nil {
					return models.Billboard{}, false, err
				}
			}
			if billboard == nil {
				return models.Billboard{}, false, nil
			}
			return *billboard, true, nil
		},
	}}

	if r.mirror != nil {
		stages = append(stages, stage[models.Billboard]{
			name: stageMirror,
			run: func(ctx context.Context) (models.Billboard, bool, error) {
				var directErr error
				if id != "" {
					billboard, err := r.mirror.Billboard(ctx, id)
					if err == nil && billboard != nil {
						return *billboard, true, nil
					}
					directErr = err
				}
				billboards, err := r.mirror.Billboards(ctx)
				if err != nil {
					return models.Billboard{}, false, multierr.Combine(directErr, err)
				}
				if len(billboards) == 0 {
					return models.Billboard{}, false, directErr
				}
				return billboards[0], true, nil
			},
		})
	}

	return resolveChain(ctx, r, "billboard", stages, DefaultBillboard)
}

// Category resolves one category by id (first available when id is empty).
func (r *Resolver) Category(ctx context.Context, id string) models.Category {
	stages := []stage[models.Category]{{
		name: stagePrimary,
		run: func(ctx context.Context) (models.Category, bool, error) {
			category, err := r.primary.CategoryByID(ctx, id)
			if err != nil || category == nil {
				return models.Category{}, false, err
			}
			return *category, true, nil
		},
	}}

	if r.mirror != nil {
		stages = append(stages, stage[models.Category]{
			name: stageMirror,
			run: func(ctx context.Context) (models.Category, bool, error) {
				if id == "" {
					categories, err := r.mirror.Categories(ctx)
					if err != nil || len(categories) == 0 {
						return models.Category{}, false, err
					}
					return categories[0], true, nil
				}
				category, err := r.mirror.Category(ctx, id)
				if err != nil || category == nil {
					return models.Category{}, false, err
				}
				return *category, true, nil
			},
		})
	}

	return resolveChain(ctx, r, "category", stages, DefaultCategory)
}

// Categories resolves the full category list; the terminal default is an
// empty list.
func (r *Resolver) Categories(ctx context.Context) []models.Category {
	stages := []stage[[]models.Category]{{
		name: stagePrimary,
		run: func(ctx context.Context) ([]models.Category, bool, error) {
			categories, err := r.primary.Categories(ctx)
			return categories, len(categories) > 0, err
		},
	}}

	if r.mirror != nil {
		stages = append(stages, stage[[]models.Category]{
			name: stageMirror,
			run: func(ctx context.Context) ([]models.Category, bool, error) {
				categories, err := r.mirror.Categories(ctx)
				return categories, len(categories) > 0, err
			},
		})
	}

	return resolveChain(ctx, r, "categories", stages, func() []models.Category {
		return []models.Category{}
	})
}

// Colors resolves the color dictionary.
func (r *Resolver) Colors(ctx context.Context) []models.Color {
	stages := []stage[[]models.Color]{{
		name: stagePrimary,
		run: func(ctx context.Context) ([]models.Color, bool, error) {
			colors, err := r.primary.Colors(ctx)
			return colors, len(colors) > 0, err
		},
	}}

	if r.mirror != nil {
		stages = append(stages, stage[[]models.Color]{
			name: stageMirror,
			run: func(ctx context.Context) ([]models.Color, bool, error) {
				colors, err := r.mirror.Colors(ctx)
				return colors, len(colors) > 0, err
			},
		})
	}

	return resolveChain(ctx, r, "colors", stages, func() []models.Color {
		return []models.Color{}
	})
}

// Sizes resolves the size dictionary.
func (r *Resolver) Sizes(ctx context.Context) []models.Size {
	stages := []stage[[]models.Size]{{
		name: stagePrimary,
		run: func(ctx context.Context) ([]models.Size, bool, error) {
			sizes, err := r.primary.Sizes(ctx)
			return sizes, len(sizes) > 0, err
		},
	}}

	if r.mirror != nil {
		stages = append(stages, stage[[]models.Size]{
			name: stageMirror,
			run: func(ctx context.Context) ([]models.Size, bool, error) {
				sizes, err := r.mirror.Sizes(ctx)
				return sizes, len(sizes) > 0, err
			},
		})
	}

	return resolveChain(ctx, r, "sizes", stages, func() []models.Size {
		return []models.Size{}
	})
}

// Product resolves one product by id (first available when id is empty).
func (r *Resolver) Product(ctx context.Context, id string) models.Product {
	stages := []stage[models.Product]{{
		name: stagePrimary,
		run: func(ctx context.Context) (models.Product, bool, error) {
			product, err := r.primary.ProductByID(ctx, id)
			if err != nil || product == nil {
				return models.Product{}, false, err
			}
			return *product, true, nil
		},
	}}

	if r.mirror != nil {
		stages = append(stages, stage[models.Product]{
			name: stageMirror,
			run: func(ctx context.Context) (models.Product, bool, error) {
				product, err := r.mirror.Product(ctx, id)
				if err != nil || product == nil {
					return models.Product{}, false, err
				}
				return *product, true, nil
			},
		})
	}

	return resolveChain(ctx, r, "product", stages, DefaultProduct)
}

// Products resolves the filtered listing; archived products never appear and
// the terminal default is an empty list.
func (r *Resolver) Products(ctx context.Context, filter ProductFilter) []models.Product {
	filter = filter.Normalize()

	stages := []stage[[]models.Product]{{
		name: stagePrimary,
		run: func(ctx context.Context) ([]models.Product, bool, error) {
			products, err := r.primary.Products(ctx, filter)
			return products, len(products) > 0, err
		},
	}}

	if r.mirror != nil {
		stages = append(stages, stage[[]models.Product]{
			name: stageMirror,
			run: func(ctx context.Context) ([]models.Product, bool, error) {
				products, err := r.mirror.Products(ctx, filter)
				return products, len(products) > 0, err
			},
		})
	}

	return resolveChain(ctx, r, "products", stages, func() []models.Product {
		return []models.Product{}
	})
}
