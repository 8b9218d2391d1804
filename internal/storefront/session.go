// Package storefront holds the per-shopper state machine: cart, wishlist,
// category filter and active view.
//
// A Session is explicitly constructed and owned by whoever created it. All
// methods are safe for concurrent use; every operation, including compound
// ones such as SelectCategoryAndShop, is applied under a single lock so a
// reader never observes a partial update.
package storefront

import (
	"sync"

	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/pricing"
)

type Session struct {
	mu sync.Mutex

	id      string
	pricing domain.PricingConfig

	lines    []domain.CartLine
	wishlist []string
	filter   domain.Category
	view     domain.View
}

// NewSession starts on the home view with no filter.
func NewSession(id string, cfg domain.PricingConfig) *Session {
	return &Session{
		id:      id,
		pricing: cfg,
		filter:  domain.FilterAll,
		view:    domain.ViewHome,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Pricing() domain.PricingConfig { return s.pricing }

// Snapshot returns a copy of all state and derived values taken atomically.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Snapshot{
		SessionID:     s.id,
		View:          s.view,
		Filter:        s.filter,
		Cart:          s.cartViewLocked(),
		Wishlist:      s.wishlistLocked(),
		WishlistCount: len(s.wishlist),
		Pricing:       s.pricing,
	}
}

func (s *Session) cartViewLocked() domain.CartView {
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)

	return domain.CartView{
		Lines:     lines,
		ItemCount: s.itemCountLocked(),
		Quote:     pricing.NewQuote(s.subtotalLocked(), s.pricing),
	}
}
