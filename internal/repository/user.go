package repository

import (
	"context"

	"catalog-admin/internal/domain"
)

// UserRepository defines read-only persistence operations for User entities.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
