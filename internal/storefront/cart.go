package storefront

import (
	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/pricing"

	"github.com/shopspring/decimal"
)

// AddToCart increments the product's line or appends a new one with quantity 1.
// The returned cart_opened event asks the presentation layer to show the cart.
func (s *Session) AddToCart(p domain.Product) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(p)
}

// AddToCartView is AddToCart returning the cart exactly as this add left it.
func (s *Session) AddToCartView(p domain.Product) (domain.CartView, []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.addLocked(p)
	return s.cartViewLocked(), events
}

// UpdateQuantity applies delta to an existing line, flooring at 1.
// It reports false and changes nothing when the product has no line.
func (s *Session) UpdateQuantity(productID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(productID, delta)
}

func (s *Session) UpdateQuantityView(productID string, delta int) (domain.CartView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.updateLocked(productID, delta)
	return s.cartViewLocked(), ok
}

// RemoveFromCart drops the product's line. It reports whether a line existed.
func (s *Session) RemoveFromCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

func (s *Session) RemoveFromCartView(productID string) (domain.CartView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.removeLocked(productID)
	return s.cartViewLocked(), ok
}

func (s *Session) addLocked(p domain.Product) []domain.Event {
	if i := s.lineIndexLocked(p.ID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: 1})
	}
	return []domain.Event{{Type: domain.EventCartOpened}}
}

func (s *Session) updateLocked(productID string, delta int) bool {
	i := s.lineIndexLocked(productID)
	if i < 0 {
		return false
	}
	s.lines[i].Quantity = max(1, s.lines[i].Quantity+delta)
	return true
}

func (s *Session) removeLocked(productID string) bool {
	i := s.lineIndexLocked(productID)
	if i < 0 {
		return false
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return true
}

// Lines returns the cart lines in insertion order.
func (s *Session) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *Session) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

func (s *Session) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// Quote prices the current cart with the session's pricing config.
func (s *Session) Quote() domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.NewQuote(s.subtotalLocked(), s.pricing)
}

// CheckoutSummary is the order summary shown on the checkout screen.
func (s *Session) CheckoutSummary() domain.CheckoutSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkoutSummaryLocked()
}

func (s *Session) checkoutSummaryLocked() domain.CheckoutSummary {
	lines := make([]domain.CheckoutLine, 0, len(s.lines))
	for _, l := range s.lines {
		lines = append(lines, domain.CheckoutLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Category:  l.Product.Category,
			Image:     l.Product.Image,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		})
	}

	return domain.CheckoutSummary{
		Lines:     lines,
		ItemCount: s.itemCountLocked(),
		Quote:     pricing.NewQuote(s.subtotalLocked(), s.pricing),
	}
}

func (s *Session) lineIndexLocked(productID string) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Session) itemCountLocked() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Session) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}
