package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lunaloops-storefront/internal/delivery/http/middleware"
	"lunaloops-storefront/internal/domain"
	"lunaloops-storefront/internal/infrastructure/cache"
	"lunaloops-storefront/internal/pricing"
	"lunaloops-storefront/internal/repository/memory"
	"lunaloops-storefront/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t       *testing.T
	handler http.Handler
	session string
}

func newTestAPI(t *testing.T, strict bool) *apiClient {
	t.Helper()
	catalogRepo, err := memory.NewDefaultCatalogRepository()
	require.NoError(t, err)
	pricingCfg, err := pricing.ProfileByName(domain.PricingProfilePremium)
	require.NoError(t, err)

	sessionUC := usecase.NewSessionUsecase(memory.NewSessionRepository(cache.NewMemoryCache(time.Hour, 0)), pricingCfg)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)

	mux := http.NewServeMux()
	RegisterRoutes(mux, Handlers{
		Session:    NewSessionHandler(sessionUC, time.Hour),
		Catalog:    NewCatalogHandler(catalogUC),
		Cart:       NewCartHandler(usecase.NewCartUsecase(catalogRepo, strict)),
		Wishlist:   NewWishlistHandler(usecase.NewWishlistUsecase(catalogRepo, strict)),
		Navigation: NewNavigationHandler(usecase.NewNavigationUsecase(catalogUC)),
		Config:     NewConfigHandler(pricingCfg),
	}, middleware.NewSessionMiddleware(sessionUC))

	return &apiClient{t: t, handler: mux}
}

func (c *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if c.session != "" {
		req.Header.Set(middleware.SessionHeader, c.session)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func (c *apiClient) startSession() domain.Snapshot {
	c.t.Helper()
	rec := c.do(http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(c.t, http.StatusCreated, rec.Code)

	var snap domain.Snapshot
	decode(c.t, rec, &snap)
	c.session = rec.Header().Get(middleware.SessionHeader)
	require.Equal(c.t, snap.SessionID, c.session)
	return snap
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

type cartResponse struct {
	Data   domain.CartView `json:"data"`
	Events []domain.Event  `json:"events"`
}

type checkoutResponse struct {
	Data   domain.CheckoutSummary `json:"data"`
	Events []domain.Event         `json:"events"`
}

func TestStartSession(t *testing.T) {
	api := newTestAPI(t, false)
	snap := api.startSession()

	assert.Equal(t, domain.ViewHome, snap.View)
	assert.Equal(t, domain.FilterAll, snap.Filter)
	assert.Empty(t, snap.Cart.Lines)
	assert.True(t, snap.Pricing.FreeShippingThreshold.Equal(decimal.NewFromInt(999)))

	rec := api.do(http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodDelete, "/api/v1/session", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionRequired(t *testing.T) {
	api := newTestAPI(t, false)
	rec := api.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartEndpoints(t *testing.T) {
	api := newTestAPI(t, false)
	api.startSession()

	rec := api.do(http.MethodPost, "/api/v1/cart", map[string]string{"productId": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var added cartResponse
	decode(t, rec, &added)
	assert.Equal(t, []domain.Event{{Type: domain.EventCartOpened}}, added.Events)
	assert.Equal(t, 1, added.Data.ItemCount)
	assert.True(t, added.Data.Quote.Shipping.Equal(decimal.NewFromInt(99)))
	assert.True(t, added.Data.Quote.Total.Equal(decimal.NewFromInt(111)))

	rec = api.do(http.MethodPatch, "/api/v1/cart/1", map[string]int{"delta": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	var cart domain.CartView
	decode(t, rec, &cart)
	assert.Equal(t, 5, cart.ItemCount)

	rec = api.do(http.MethodPatch, "/api/v1/cart/1", map[string]int{"delta": -10})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &cart)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	rec = api.do(http.MethodDelete, "/api/v1/cart/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &cart)
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.Quote.Shipping.IsZero())
}

func TestCartErrors(t *testing.T) {
	api := newTestAPI(t, true)
	api.startSession()

	rec := api.do(http.MethodPost, "/api/v1/cart", map[string]string{"productId": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/cart", map[string]string{"sku": "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPatch, "/api/v1/cart/2", map[string]int{"delta": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutEndpoints(t *testing.T) {
	api := newTestAPI(t, false)
	api.startSession()

	for _, id := range []string{"2", "5", "2"} {
		rec := api.do(http.MethodPost, "/api/v1/cart", map[string]string{"productId": id})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := api.do(http.MethodPost, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out checkoutResponse
	decode(t, rec, &out)
	assert.Equal(t, []domain.Event{{Type: domain.EventCartClosed}}, out.Events)
	assert.Equal(t, 3, out.Data.ItemCount)
	require.Len(t, out.Data.Lines, 2)
	assert.True(t, out.Data.Lines[0].LineTotal.Equal(decimal.NewFromInt(36)))
	assert.True(t, out.Data.Quote.Subtotal.Equal(decimal.NewFromInt(58)))
	assert.True(t, out.Data.Quote.Total.Equal(decimal.NewFromInt(157)))

	rec = api.do(http.MethodGet, "/api/v1/screen", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var screen domain.Screen
	decode(t, rec, &screen)
	assert.Equal(t, domain.ViewCheckout, screen.View)
	require.NotNil(t, screen.Checkout)
	assert.True(t, screen.Checkout.Quote.Total.Equal(out.Data.Quote.Total))
}

func TestNavigationEndpoints(t *testing.T) {
	api := newTestAPI(t, false)
	api.startSession()

	rec := api.do(http.MethodPost, "/api/v1/shop/Silk", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var screen domain.Screen
	decode(t, rec, &screen)
	assert.Equal(t, domain.ViewShop, screen.View)
	require.NotNil(t, screen.Shop)
	assert.Equal(t, domain.CategorySilk, screen.Shop.Filter)
	assert.Len(t, screen.Shop.Products, 2)

	rec = api.do(http.MethodPost, "/api/v1/shop/Linen", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, "/api/v1/filter", map[string]string{"category": "Wool"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, "/api/v1/view", map[string]string{"view": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, "/api/v1/filter", map[string]string{"category": "All"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &screen)
	assert.Len(t, screen.Shop.Products, 6)

	rec = api.do(http.MethodPost, "/api/v1/home", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	screen = domain.Screen{}
	decode(t, rec, &screen)
	assert.Equal(t, domain.ViewHome, screen.View)
	require.NotNil(t, screen.Home)
	assert.Len(t, screen.Home.BestSellers, 3)
}

func TestWishlistEndpoints(t *testing.T) {
	api := newTestAPI(t, false)
	api.startSession()

	var toggled struct {
		ProductID     string `json:"productId"`
		IsWishlisted  bool   `json:"isWishlisted"`
		WishlistCount int    `json:"wishlistCount"`
	}
	rec := api.do(http.MethodPost, "/api/v1/wishlist/4/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &toggled)
	assert.True(t, toggled.IsWishlisted)
	assert.Equal(t, 1, toggled.WishlistCount)

	rec = api.do(http.MethodPost, "/api/v1/shop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var screen domain.Screen
	decode(t, rec, &screen)
	for _, p := range screen.Shop.Products {
		assert.Equal(t, p.ID == "4", p.IsWishlisted, p.ID)
	}

	rec = api.do(http.MethodPost, "/api/v1/wishlist/4/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &toggled)
	assert.False(t, toggled.IsWishlisted)
	assert.Zero(t, toggled.WishlistCount)
}

func TestCatalogEndpoints(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(http.MethodGet, "/api/v1/products?category=Velvet", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Filter domain.Category  `json:"filter"`
		Data   []domain.Product `json:"data"`
		Total  int              `json:"total"`
	}
	decode(t, rec, &list)
	assert.Equal(t, domain.CategoryVelvet, list.Filter)
	assert.Equal(t, 2, list.Total)

	rec = api.do(http.MethodGet, "/api/v1/products?category=Denim", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/products/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.Product
	decode(t, rec, &p)
	assert.Equal(t, "Emerald Silk Luxe", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(22)))

	rec = api.do(http.MethodGet, "/api/v1/products/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/products/best-sellers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfigEnums(t *testing.T) {
	api := newTestAPI(t, false)
	rec := api.do(http.MethodGet, "/api/v1/config/enums", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var enums struct {
		Categories []domain.Category    `json:"categories"`
		Filters    []domain.Category    `json:"filters"`
		Views      []domain.View        `json:"views"`
		Pricing    domain.PricingConfig `json:"pricing"`
	}
	decode(t, rec, &enums)
	assert.Equal(t, domain.Categories, enums.Categories)
	assert.Equal(t, domain.FilterAll, enums.Filters[0])
	assert.Len(t, enums.Views, 3)
	assert.True(t, enums.Pricing.FlatShippingFee.Equal(decimal.NewFromInt(99)))
}
