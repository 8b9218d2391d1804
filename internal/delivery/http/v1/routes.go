package v1

import "net/http"

type Handlers struct {
	Session    *SessionHandler
	Catalog    *CatalogHandler
	Cart       *CartHandler
	Wishlist   *WishlistHandler
	Navigation *NavigationHandler
	Config     *ConfigHandler
}

// RegisterRoutes mounts the storefront API. Routes that read or change shopper
// state are wrapped in sessionMiddleware.
func RegisterRoutes(mux *http.ServeMux, h Handlers, sessionMiddleware func(http.Handler) http.Handler) {
	withSession := func(fn http.HandlerFunc) http.Handler {
		return sessionMiddleware(fn)
	}

	// Config (Public)
	mux.HandleFunc("GET /api/v1/config/enums", h.Config.GetEnums)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/products", h.Catalog.ListProducts)
	mux.HandleFunc("GET /api/v1/products/best-sellers", h.Catalog.BestSellers)
	mux.HandleFunc("GET /api/v1/products/{id}", h.Catalog.GetProductByID)
	mux.HandleFunc("GET /api/v1/categories", h.Catalog.GetCategories)
	mux.HandleFunc("GET /api/v1/reviews", h.Catalog.GetReviews)

	// Sessions
	mux.HandleFunc("POST /api/v1/sessions", h.Session.StartSession)
	mux.Handle("GET /api/v1/session", withSession(h.Session.GetSession))
	mux.Handle("DELETE /api/v1/session", withSession(h.Session.EndSession))

	// Cart
	mux.Handle("GET /api/v1/cart", withSession(h.Cart.GetCart))
	mux.Handle("POST /api/v1/cart", withSession(h.Cart.AddToCart))
	mux.Handle("PATCH /api/v1/cart/{productId}", withSession(h.Cart.UpdateQuantity))
	mux.Handle("DELETE /api/v1/cart/{productId}", withSession(h.Cart.RemoveFromCart))

	// Checkout (summary only)
	mux.Handle("GET /api/v1/checkout", withSession(h.Cart.GetCheckoutSummary))
	mux.Handle("POST /api/v1/checkout", withSession(h.Cart.Checkout))

	// Wishlist
	mux.Handle("GET /api/v1/wishlist", withSession(h.Wishlist.GetWishlist))
	mux.Handle("POST /api/v1/wishlist/{productId}/toggle", withSession(h.Wishlist.ToggleWishlist))

	// Filter & Navigation
	mux.Handle("PUT /api/v1/filter", withSession(h.Navigation.SetFilter))
	mux.Handle("PUT /api/v1/view", withSession(h.Navigation.SetView))
	mux.Handle("POST /api/v1/shop", withSession(h.Navigation.ShopAll))
	mux.Handle("POST /api/v1/shop/{category}", withSession(h.Navigation.SelectCategoryAndShop))
	mux.Handle("POST /api/v1/home", withSession(h.Navigation.GoHome))
	mux.Handle("GET /api/v1/screen", withSession(h.Navigation.GetScreen))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler)
}
