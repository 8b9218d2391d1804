package domain

// WishlistItem is a favorited product as shown to the shopper.
// Product is nil when the ID does not resolve in the catalog.
type WishlistItem struct {
	ProductID string   `json:"productId"`
	Product   *Product `json:"product,omitempty"`
}

type Wishlist struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}
