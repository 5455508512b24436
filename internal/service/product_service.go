package service

import (
	"context"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

// ProductService coordinates catalog operations backed by the product repository.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, fields domain.ProductFields) (string, error)
	UpdateProduct(ctx context.Context, id string, fields domain.ProductFields) error
	DeleteProduct(ctx context.Context, id string) (int64, error)
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, fields domain.ProductFields) (string, error) {
	return s.products.Insert(ctx, fields)
}

func (s *productService) UpdateProduct(ctx context.Context, id string, fields domain.ProductFields) error {
	return s.products.Replace(ctx, id, fields)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return s.products.Delete(ctx, id)
}
