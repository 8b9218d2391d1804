package usecase

import (
	"context"
	"errors"
	"fmt"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
	"lunaloops-storefront/pkg/logger"
)

type WishlistUsecase struct {
	catalog domain.CatalogRepository
	strict  bool
}

// NewWishlistUsecase: with strict set, toggling an ID missing from the catalog fails.
func NewWishlistUsecase(catalog domain.CatalogRepository, strict bool) *WishlistUsecase {
	return &WishlistUsecase{catalog: catalog, strict: strict}
}

// GetWishlist resolves favorited IDs to products where the catalog knows them.
func (u *WishlistUsecase) GetWishlist(ctx context.Context, s *storefront.Session) (domain.Wishlist, error) {
	ids := s.Wishlist()
	items := make([]domain.WishlistItem, 0, len(ids))

	for _, id := range ids {
		item := domain.WishlistItem{ProductID: id}
		product, err := u.catalog.GetProductByID(ctx, id)
		switch {
		case err == nil:
			item.Product = product
		case !errors.Is(err, domain.ErrProductNotFound):
			return domain.Wishlist{}, err
		}
		items = append(items, item)
	}

	return domain.Wishlist{Items: items, Count: len(items)}, nil
}

// ToggleWishlist returns the new membership of productID.
func (u *WishlistUsecase) ToggleWishlist(ctx context.Context, s *storefront.Session, productID string) (bool, error) {
	if u.strict {
		if _, err := u.catalog.GetProductByID(ctx, productID); err != nil {
			return false, fmt.Errorf("toggle wishlist: %w", err)
		}
	}

	wishlisted := s.ToggleWishlist(productID)
	logger.WithContext(ctx).Debug().
		Str("product_id", productID).
		Bool("wishlisted", wishlisted).
		Msg("Usecase: ToggleWishlist")
	return wishlisted, nil
}
