package domain

// --- Shared Session Types ---

// ShopProduct is a catalog product annotated for one shopper.
type ShopProduct struct {
	Product
	IsWishlisted bool `json:"isWishlisted"`
}

// HomeScreen is the data behind the landing page.
type HomeScreen struct {
	BestSellers []ShopProduct  `json:"bestSellers"`
	Tiles       []CategoryTile `json:"tiles"`
	Reviews     []Review       `json:"reviews"`
}

// ShopScreen is the filtered product grid. Empty is set when the filter matches nothing.
type ShopScreen struct {
	Filter   Category      `json:"filter"`
	Products []ShopProduct `json:"products"`
	Empty    bool          `json:"empty"`
}

// Screen is the view router output: exactly one of Home, Shop or Checkout is set.
type Screen struct {
	View     View             `json:"view"`
	Home     *HomeScreen      `json:"home,omitempty"`
	Shop     *ShopScreen      `json:"shop,omitempty"`
	Checkout *CheckoutSummary `json:"checkout,omitempty"`
}

// Snapshot is a consistent read of all session state plus derived values.
type Snapshot struct {
	SessionID     string        `json:"sessionId"`
	View          View          `json:"view"`
	Filter        Category      `json:"filter"`
	Cart          CartView      `json:"cart"`
	Wishlist      []string      `json:"wishlist"`
	WishlistCount int           `json:"wishlistCount"`
	Pricing       PricingConfig `json:"pricing"`
}

// Response wraps mutating API results with the presentation events they raised.
type Response struct {
	Data   interface{} `json:"data,omitempty"`
	Events []Event     `json:"events,omitempty"`
}
