package pricing

import (
	"fmt"
	"strings"

	"lunaloops-storefront/internal/domain"

	"github.com/shopspring/decimal"
)

var profiles = map[string]domain.PricingConfig{
	domain.PricingProfileStandard: {
		FreeShippingThreshold: decimal.NewFromInt(35),
		FlatShippingFee:       decimal.NewFromInt(5),
	},
	domain.PricingProfilePremium: {
		FreeShippingThreshold: decimal.NewFromInt(999),
		FlatShippingFee:       decimal.NewFromInt(99),
	},
}

// ProfileByName returns a named pricing profile (standard or premium).
func ProfileByName(name string) (domain.PricingConfig, error) {
	cfg, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.PricingConfig{}, fmt.Errorf("%w: unknown profile %q", domain.ErrInvalidPricing, name)
	}
	return cfg, nil
}

// NewConfig builds a custom pricing config. Both values must be non-negative.
func NewConfig(threshold, fee decimal.Decimal) (domain.PricingConfig, error) {
	if threshold.IsNegative() {
		return domain.PricingConfig{}, fmt.Errorf("%w: threshold %s is negative", domain.ErrInvalidPricing, threshold)
	}
	if fee.IsNegative() {
		return domain.PricingConfig{}, fmt.Errorf("%w: fee %s is negative", domain.ErrInvalidPricing, fee)
	}
	return domain.PricingConfig{
		FreeShippingThreshold: threshold,
		FlatShippingFee:       fee,
	}, nil
}

// ComputeShipping is free at or above the threshold and for an empty cart.
func ComputeShipping(subtotal decimal.Decimal, cfg domain.PricingConfig) decimal.Decimal {
	if subtotal.IsZero() || subtotal.GreaterThanOrEqual(cfg.FreeShippingThreshold) {
		return decimal.Zero
	}
	return cfg.FlatShippingFee
}

func ComputeTotal(subtotal, shipping decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shipping)
}

// NewQuote is the only place totals are derived; the cart preview and the
// checkout summary both go through it.
func NewQuote(subtotal decimal.Decimal, cfg domain.PricingConfig) domain.Quote {
	shipping := ComputeShipping(subtotal, cfg)

	remaining := cfg.FreeShippingThreshold.Sub(subtotal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return domain.Quote{
		Subtotal:             subtotal,
		Shipping:             shipping,
		Total:                ComputeTotal(subtotal, shipping),
		AmountToFreeShipping: remaining,
	}
}
