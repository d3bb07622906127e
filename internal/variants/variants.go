// Package variants derives selectable color/size options from a product's
// variant list and validates a selection into a concrete purchasable SKU.
// Everything here is a pure function of (product, selection): options are
// recomputed per call, never cached, so switching products can't leak a stale
// narrowing.
package variants

import "github.com/velora-shop/storefront-backend/pkg/db/models"

// ColorOptions returns the distinct color ids across the product's variants,
// in order of first appearance.
func ColorOptions(product models.Product) []string {
	seen := make(map[string]struct{}, len(product.Variants))
	options := make([]string, 0, len(product.Variants))
	for _, variant := range product.Variants {
		if _, ok := seen[variant.ColorID]; ok {
			continue
		}
		seen[variant.ColorID] = struct{}{}
		options = append(options, variant.ColorID)
	}
	return options
}

// SizeOptionsForColor returns the distinct size ids available in the given
// color, in order of first appearance. An empty colorID yields no options:
// size selection only opens up once a color is chosen.
func SizeOptionsForColor(product models.Product, colorID string) []string {
	if colorID == "" {
		return []string{}
	}
	seen := make(map[string]struct{}, len(product.Variants))
	options := make([]string, 0, len(product.Variants))
	for _, variant := range product.Variants {
		if variant.ColorID != colorID {
			continue
		}
		if _, ok := seen[variant.SizeID]; ok {
			continue
		}
		seen[variant.SizeID] = struct{}{}
		options = append(options, variant.SizeID)
	}
	return options
}

// ResolveVariant returns the unique variant matching both the color and size
// selection, or nil when either is unset or the combination is not
// purchasable. Add-to-cart must treat nil as "do nothing".
func ResolveVariant(product models.Product, colorID, sizeID string) *models.Variant {
	if colorID == "" || sizeID == "" {
		return nil
	}
	for i := range product.Variants {
		if product.Variants[i].ColorID == colorID && product.Variants[i].SizeID == sizeID {
			return &product.Variants[i]
		}
	}
	return nil
}

// Selection tracks a shopper's in-progress color/size choice for one product.
type Selection struct {
	ColorID string
	SizeID  string
}

// SelectColor narrows the selection to the given color. A previously chosen
// size survives only if it is still purchasable in the new color.
func (s Selection) SelectColor(product models.Product, colorID string) Selection {
	next := Selection{ColorID: colorID}
	for _, sizeID := range SizeOptionsForColor(product, colorID) {
		if sizeID == s.SizeID {
			next.SizeID = s.SizeID
			break
		}
	}
	return next
}

// SelectSize records a size choice. Sizes not offered in the currently
// selected color are ignored.
func (s Selection) SelectSize(product models.Product, sizeID string) Selection {
	for _, option := range SizeOptionsForColor(product, s.ColorID) {
		if option == sizeID {
			s.SizeID = sizeID
			return s
		}
	}
	return s
}

// Resolve validates the selection against the product's variant list.
func (s Selection) Resolve(product models.Product) *models.Variant {
	return ResolveVariant(product, s.ColorID, s.SizeID)
}

// Options is the full derived state for one product and selection, computed
// in a single pass for rendering.
type Options struct {
	Colors   []string        `json:"colors"`
	Sizes    []string        `json:"sizes"`
	Resolved *models.Variant `json:"resolved,omitempty"`
}

// Derive computes the selectable options and the resolved variant, if any.
func Derive(product models.Product, selection Selection) Options {
	return Options{
		Colors:   ColorOptions(product),
		Sizes:    SizeOptionsForColor(product, selection.ColorID),
		Resolved: selection.Resolve(product),
	}
}
