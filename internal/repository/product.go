package repository

import (
	"context"
	"errors"

	"catalog-admin/internal/domain"
)

// ErrNotFound is returned when a lookup matches no record. Malformed identifiers
// collapse into the same error so callers cannot distinguish the two cases.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines persistence operations for Product entities.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, fields domain.ProductFields) (string, error)
	Replace(ctx context.Context, id string, fields domain.ProductFields) error
	Delete(ctx context.Context, id string) (int64, error)
}
