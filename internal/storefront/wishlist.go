package storefront

import "slices"

// ToggleWishlist flips membership and returns whether the product is now favorited.
func (s *Session) ToggleWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.wishlist, productID); i >= 0 {
		s.wishlist = slices.Delete(s.wishlist, i, i+1)
		return false
	}
	s.wishlist = append(s.wishlist, productID)
	return true
}

func (s *Session) IsWishlisted(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.wishlist, productID)
}

func (s *Session) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wishlist)
}

// Wishlist returns favorited IDs in the order they were added.
func (s *Session) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlistLocked()
}

func (s *Session) wishlistLocked() []string {
	return slices.Clone(s.wishlist)
}
