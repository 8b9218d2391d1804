package storefront

import (
	"fmt"

	"lunaloops-storefront/internal/domain"
)

// SetFilter replaces the category filter. Only All and the fabric categories are accepted.
func (s *Session) SetFilter(filter domain.Category) error {
	if !filter.ValidFilter() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, filter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	return nil
}

// SetView replaces the active view. Every view is reachable from every other.
func (s *Session) SetView(view domain.View) error {
	if !view.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidView, view)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	return nil
}

// SelectCategoryAndShop sets the filter and switches to the shop view in one step.
func (s *Session) SelectCategoryAndShop(category domain.Category) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = category
	s.view = domain.ViewShop
	return nil
}

// ShopAll opens the shop keeping the current filter.
func (s *Session) ShopAll() {
	s.setView(domain.ViewShop)
}

// Checkout moves to the checkout view and asks the presentation layer to close the cart.
// An empty cart does not block it.
func (s *Session) Checkout() []domain.Event {
	s.setView(domain.ViewCheckout)
	return []domain.Event{{Type: domain.EventCartClosed}}
}

// CheckoutView is Checkout plus the summary of the cart it checked out.
func (s *Session) CheckoutView() (domain.CheckoutSummary, []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = domain.ViewCheckout
	return s.checkoutSummaryLocked(), []domain.Event{{Type: domain.EventCartClosed}}
}

func (s *Session) BackToShop() {
	s.setView(domain.ViewShop)
}

func (s *Session) GoHome() {
	s.setView(domain.ViewHome)
}

func (s *Session) Filter() domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Session) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// FilteredProducts projects the catalog through the session's current filter.
func (s *Session) FilteredProducts(catalog []domain.Product) []domain.Product {
	return FilterProducts(catalog, s.Filter())
}

// FilterProducts keeps catalog order. FilterAll returns every product.
func FilterProducts(catalog []domain.Product, filter domain.Category) []domain.Product {
	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if filter == domain.FilterAll || p.Category == filter {
			out = append(out, p)
		}
	}
	return out
}

func (s *Session) setView(view domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}
