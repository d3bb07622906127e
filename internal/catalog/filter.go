package catalog

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/velora-shop/storefront-backend/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProductFilter narrows a product listing. Absent fields impose no
// constraint; IsFeatured only constrains when true, matching the admin API.
type ProductFilter struct {
	Name       string `validate:"omitempty,max=191"`
	CategoryID string `validate:"omitempty,max=191"`
	ColorID    string `validate:"omitempty,max=191"`
	SizeID     string `validate:"omitempty,max=191"`
	IsFeatured bool
}

// Normalize trims whitespace from every identifier field.
func (f ProductFilter) Normalize() ProductFilter {
	f.Name = strings.TrimSpace(f.Name)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	f.ColorID = strings.TrimSpace(f.ColorID)
	f.SizeID = strings.TrimSpace(f.SizeID)
	return f
}

// Validate rejects filters that could not have come from the storefront UI.
func (f ProductFilter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product filter")
	}
	return nil
}

// QueryValues encodes the filter the way the mirror's products endpoint
// expects it. Zero-valued fields are omitted entirely.
func (f ProductFilter) QueryValues() url.Values {
	values := url.Values{}
	if f.Name != "" {
		values.Set("name", f.Name)
	}
	if f.CategoryID != "" {
		values.Set("categoryId", f.CategoryID)
	}
	if f.ColorID != "" {
		values.Set("colorId", f.ColorID)
	}
	if f.SizeID != "" {
		values.Set("sizeId", f.SizeID)
	}
	if f.IsFeatured {
		values.Set("isFeatured", "true")
	}
	return values
}
