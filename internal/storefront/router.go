package storefront

import (
	"slices"

	"lunaloops-storefront/internal/domain"
)

// Catalog is the read-only data the router projects from.
type Catalog struct {
	Products []domain.Product
	Reviews  []domain.Review
	Tiles    []domain.CategoryTile
}

// Route selects the data for the active view. It renders nothing.
func (s *Session) Route(c Catalog) domain.Screen {
	s.mu.Lock()
	view := s.view
	filter := s.filter
	wishlist := s.wishlistLocked()
	var summary domain.CheckoutSummary
	if view == domain.ViewCheckout {
		summary = s.checkoutSummaryLocked()
	}
	s.mu.Unlock()

	screen := domain.Screen{View: view}
	switch view {
	case domain.ViewShop:
		products := annotate(FilterProducts(c.Products, filter), wishlist)
		screen.Shop = &domain.ShopScreen{
			Filter:   filter,
			Products: products,
			Empty:    len(products) == 0,
		}
	case domain.ViewCheckout:
		screen.Checkout = &summary
	default:
		screen.Home = &domain.HomeScreen{
			BestSellers: annotate(BestSellers(c.Products), wishlist),
			Tiles:       c.Tiles,
			Reviews:     c.Reviews,
		}
	}
	return screen
}

// BestSellers keeps catalog order.
func BestSellers(catalog []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.IsBestSeller {
			out = append(out, p)
		}
	}
	return out
}

func annotate(products []domain.Product, wishlist []string) []domain.ShopProduct {
	out := make([]domain.ShopProduct, 0, len(products))
	for _, p := range products {
		out = append(out, domain.ShopProduct{
			Product:      p,
			IsWishlisted: slices.Contains(wishlist, p.ID),
		})
	}
	return out
}
