package usecase

import (
	"context"
	"fmt"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/storefront"
	"lunaloops-storefront/pkg/logger"
)

type CartUsecase struct {
	catalog domain.CatalogRepository
	strict  bool
}

// NewCartUsecase: with strict set, quantity changes and removals on a product
// with no cart line return domain.ErrNotInCart instead of being ignored.
func NewCartUsecase(catalog domain.CatalogRepository, strict bool) *CartUsecase {
	return &CartUsecase{catalog: catalog, strict: strict}
}

func (u *CartUsecase) GetCart(ctx context.Context, s *storefront.Session) domain.CartView {
	return s.Snapshot().Cart
}

// AddToCart resolves the product in the catalog; a line cannot be priced without it.
func (u *CartUsecase) AddToCart(ctx context.Context, s *storefront.Session, productID string) (domain.CartView, []domain.Event, error) {
	log := logger.WithContext(ctx)

	product, err := u.catalog.GetProductByID(ctx, productID)
	if err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("Usecase: AddToCart - product lookup failed")
		return domain.CartView{}, nil, fmt.Errorf("add to cart: %w", err)
	}

	cart, events := s.AddToCartView(*product)
	log.Info().
		Str("product_id", productID).
		Int("item_count", cart.ItemCount).
		Msg("Usecase: AddToCart - Success")

	return cart, events, nil
}

func (u *CartUsecase) UpdateQuantity(ctx context.Context, s *storefront.Session, productID string, delta int) (domain.CartView, error) {
	cart, ok := s.UpdateQuantityView(productID, delta)
	if !ok {
		logger.WithContext(ctx).Debug().Str("product_id", productID).Msg("Usecase: UpdateQuantity - no cart line")
		if u.strict {
			return domain.CartView{}, fmt.Errorf("update quantity: %w: %q", domain.ErrNotInCart, productID)
		}
	}
	return cart, nil
}

func (u *CartUsecase) RemoveFromCart(ctx context.Context, s *storefront.Session, productID string) (domain.CartView, error) {
	cart, ok := s.RemoveFromCartView(productID)
	if !ok {
		logger.WithContext(ctx).Debug().Str("product_id", productID).Msg("Usecase: RemoveFromCart - no cart line")
		if u.strict {
			return domain.CartView{}, fmt.Errorf("remove from cart: %w: %q", domain.ErrNotInCart, productID)
		}
	}
	return cart, nil
}

func (u *CartUsecase) CheckoutSummary(ctx context.Context, s *storefront.Session) domain.CheckoutSummary {
	return s.CheckoutSummary()
}

// Checkout navigates to the checkout view. No order is placed.
func (u *CartUsecase) Checkout(ctx context.Context, s *storefront.Session) (domain.CheckoutSummary, []domain.Event) {
	summary, events := s.CheckoutView()
	logger.WithContext(ctx).Info().
		Int("item_count", summary.ItemCount).
		Str("total", summary.Quote.Total.StringFixed(2)).
		Msg("Usecase: Checkout - summary prepared")
	return summary, events
}
