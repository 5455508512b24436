package forms

import (
	"strconv"
	"strings"

	"catalog-admin/internal/domain"
)

// ProductForm carries raw submitted product fields. Price stays a string until
// validation so an invalid submission can be re-rendered exactly as typed.
type ProductForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
}

// FromProduct pre-fills the form from a stored product, for the edit page.
func FromProduct(p domain.Product) ProductForm {
	return ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
	}
}

// Validate converts the raw fields into typed values. On failure it returns a
// non-empty map of field name to message and the fields value is unusable.
func (f ProductForm) Validate() (domain.ProductFields, map[string]string) {
	errs := make(map[string]string)

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Name is required."
	}

	var price float64
	priceRaw := strings.TrimSpace(f.Price)
	if priceRaw == "" {
		errs["price"] = "Price is required."
	} else {
		parsed, err := strconv.ParseFloat(priceRaw, 64)
		switch {
		case err != nil:
			errs["price"] = "Price must be a number."
		case parsed < 0:
			errs["price"] = "Price must not be negative."
		default:
			price = parsed
		}
	}

	if len(errs) > 0 {
		return domain.ProductFields{}, errs
	}

	return domain.ProductFields{
		Name:        name,
		Description: f.Description,
		Price:       price,
	}, nil
}
