package domain

import "github.com/shopspring/decimal"

// --- Cart Entities ---

// CartLine is one product's accumulated quantity. Quantity is always >= 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Quote is the derived money summary of a cart.
type Quote struct {
	Subtotal             decimal.Decimal `json:"subtotal"`
	Shipping             decimal.Decimal `json:"shipping"`
	Total                decimal.Decimal `json:"total"`
	AmountToFreeShipping decimal.Decimal `json:"amountToFreeShipping"`
}

// PricingConfig is fixed for the lifetime of a session.
type PricingConfig struct {
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	FlatShippingFee       decimal.Decimal `json:"flatShippingFee"`
}

type Event struct {
	Type EventType `json:"type"`
}

// --- Views of the cart ---

type CheckoutLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CheckoutSummary struct {
	Lines     []CheckoutLine `json:"lines"`
	ItemCount int            `json:"itemCount"`
	Quote     Quote          `json:"quote"`
}

type CartView struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"itemCount"`
	Quote     Quote      `json:"quote"`
}
