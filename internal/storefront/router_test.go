package storefront

import (
	"testing"

	"lunaloops-storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouterCatalog() Catalog {
	return Catalog{
		Products: testCatalog(),
		Reviews:  []domain.Review{{ID: "r1", Author: "Sophie L.", Rating: 5, ProductName: "Loop 2"}},
		Tiles: []domain.CategoryTile{
			{Category: domain.CategorySatin, Image: "satin.jpg"},
			{Category: domain.CategorySilk, Image: "silk.jpg"},
			{Category: domain.CategoryVelvet, Image: "velvet.jpg"},
		},
	}
}

func TestRouteHome(t *testing.T) {
	s := newTestSession(t)
	s.ToggleWishlist("4")

	screen := s.Route(testRouterCatalog())
	assert.Equal(t, domain.ViewHome, screen.View)
	require.NotNil(t, screen.Home)
	assert.Nil(t, screen.Shop)
	assert.Nil(t, screen.Checkout)

	var ids []string
	for _, p := range screen.Home.BestSellers {
		ids = append(ids, p.ID)
		assert.Equal(t, p.ID == "4", p.IsWishlisted)
	}
	assert.Equal(t, []string{"1", "2", "4"}, ids)
	assert.Len(t, screen.Home.Tiles, 3)
	assert.Len(t, screen.Home.Reviews, 1)
}

func TestRouteShop(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SelectCategoryAndShop(domain.CategorySilk))

	screen := s.Route(testRouterCatalog())
	require.NotNil(t, screen.Shop)
	assert.Equal(t, domain.CategorySilk, screen.Shop.Filter)
	assert.False(t, screen.Shop.Empty)
	require.Len(t, screen.Shop.Products, 2)
	assert.Equal(t, "2", screen.Shop.Products[0].ID)
	assert.Equal(t, "5", screen.Shop.Products[1].ID)

	c := testRouterCatalog()
	c.Products = c.Products[:1]
	screen = s.Route(c)
	assert.True(t, screen.Shop.Empty)
}

func TestRouteCheckout(t *testing.T) {
	s := newTestSession(t)
	s.AddToCart(testCatalog()[1])
	s.Checkout()

	screen := s.Route(testRouterCatalog())
	require.NotNil(t, screen.Checkout)
	assert.Equal(t, 1, screen.Checkout.ItemCount)
	assert.True(t, screen.Checkout.Quote.Total.Equal(s.Quote().Total))
}
