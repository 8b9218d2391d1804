package usecase

import (
	"context"
	"fmt"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
)

type CatalogUsecase struct {
	repo domain.CatalogRepository
}

func NewCatalogUsecase(repo domain.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo}
}

// ListProducts returns products matching filter in catalog order.
func (u *CatalogUsecase) ListProducts(ctx context.Context, filter domain.Category) ([]domain.Product, error) {
	if !filter.ValidFilter() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, filter)
	}
	products, err := u.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return storefront.FilterProducts(products, filter), nil
}

func (u *CatalogUsecase) BestSellers(ctx context.Context) ([]domain.Product, error) {
	products, err := u.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return storefront.BestSellers(products), nil
}

func (u *CatalogUsecase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return u.repo.GetProductByID(ctx, id)
}

func (u *CatalogUsecase) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return u.repo.ListReviews(ctx)
}

func (u *CatalogUsecase) ListCategoryTiles(ctx context.Context) ([]domain.CategoryTile, error) {
	return u.repo.ListCategoryTiles(ctx)
}

// Catalog bundles everything the view router reads.
func (u *CatalogUsecase) Catalog(ctx context.Context) (storefront.Catalog, error) {
	products, err := u.repo.ListProducts(ctx)
	if err != nil {
		return storefront.Catalog{}, fmt.Errorf("failed to list products: %w", err)
	}
	reviews, err := u.repo.ListReviews(ctx)
	if err != nil {
		return storefront.Catalog{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	tiles, err := u.repo.ListCategoryTiles(ctx)
	if err != nil {
		return storefront.Catalog{}, fmt.Errorf("failed to list category tiles: %w", err)
	}
	return storefront.Catalog{Products: products, Reviews: reviews, Tiles: tiles}, nil
}
