package domain

// Category is a fabric type.
type Category string

// Fabric categories
const (
	CategorySatin  Category = "Satin"
	CategorySilk   Category = "Silk"
	CategoryVelvet Category = "Velvet"
)

// FilterAll matches every category.
const FilterAll Category = "All"

// View is the active storefront screen.
type View string

// Views
const (
	ViewHome     View = "home"
	ViewShop     View = "shop"
	ViewCheckout View = "checkout"
)

// EventType names a presentation side effect emitted by a session operation.
type EventType string

// Events
const (
	EventCartOpened EventType = "cart_opened"
	EventCartClosed EventType = "cart_closed"
)

// Pricing profiles
const (
	PricingProfileStandard = "standard"
	PricingProfilePremium  = "premium"
)

// List Exports for API
var Categories = []Category{
	CategorySatin,
	CategorySilk,
	CategoryVelvet,
}

var Views = []View{
	ViewHome,
	ViewShop,
	ViewCheckout,
}

// Valid reports whether c is one of the fabric categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidFilter reports whether c can be used as a product filter.
func (c Category) ValidFilter() bool {
	return c == FilterAll || c.Valid()
}

func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}
