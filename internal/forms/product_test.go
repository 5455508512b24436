package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/internal/domain"
)

func TestProductFormValidate(t *testing.T) {
	tests := []struct {
		name       string
		form       ProductForm
		wantFields domain.ProductFields
		wantErrs   []string
	}{
		{
			name:       "valid",
			form:       ProductForm{Name: "Widget", Description: "A widget", Price: "9.99"},
			wantFields: domain.ProductFields{Name: "Widget", Description: "A widget", Price: 9.99},
		},
		{
			name:       "description optional",
			form:       ProductForm{Name: "Widget", Price: "0"},
			wantFields: domain.ProductFields{Name: "Widget", Price: 0},
		},
		{
			name:       "name trimmed",
			form:       ProductForm{Name: "  Widget  ", Price: "1"},
			wantFields: domain.ProductFields{Name: "Widget", Price: 1},
		},
		{
			name:     "missing name",
			form:     ProductForm{Price: "9.99"},
			wantErrs: []string{"name"},
		},
		{
			name:     "missing price",
			form:     ProductForm{Name: "Widget"},
			wantErrs: []string{"price"},
		},
		{
			name:     "price not a number",
			form:     ProductForm{Name: "Widget", Price: "free"},
			wantErrs: []string{"price"},
		},
		{
			name:     "negative price",
			form:     ProductForm{Name: "Widget", Price: "-1"},
			wantErrs: []string{"price"},
		},
		{
			name:     "everything missing",
			form:     ProductForm{},
			wantErrs: []string{"name", "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, errs := tt.form.Validate()
			if len(tt.wantErrs) == 0 {
				require.Nil(t, errs)
				assert.Equal(t, tt.wantFields, fields)
				return
			}
			require.Len(t, errs, len(tt.wantErrs))
			for _, field := range tt.wantErrs {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestFromProduct(t *testing.T) {
	form := FromProduct(domain.Product{
		ID:          "abc",
		Name:        "Widget",
		Description: "A widget",
		Price:       9.99,
	})

	assert.Equal(t, "Widget", form.Name)
	assert.Equal(t, "A widget", form.Description)
	assert.Equal(t, "9.99", form.Price)
}

func TestLoginFormValidate(t *testing.T) {
	assert.True(t, LoginForm{Username: "admin", Password: "secret"}.Validate())
	assert.False(t, LoginForm{Username: "admin"}.Validate())
	assert.False(t, LoginForm{Password: "secret"}.Validate())
	assert.False(t, LoginForm{Username: "   "}.Validate())
	assert.False(t, LoginForm{}.Validate())
}
