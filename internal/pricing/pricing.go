// Package pricing computes client-facing prices.
package pricing

import "math"

// MaxDiscount caps personal discounts so a price never goes negative.
const MaxDiscount = 100.0

// WithDiscount returns base reduced by discountPercent percent.
// Non-positive discounts leave base untouched; discounts above MaxDiscount are
// treated as MaxDiscount.
func WithDiscount(base, discountPercent float64) float64 {
	if discountPercent <= 0 {
		return base
	}
	if discountPercent > MaxDiscount {
		discountPercent = MaxDiscount
	}
	return Round(base - base*discountPercent/100)
}

// Round rounds to cents.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineTotal is the discounted price of quantity units.
func LineTotal(unit, discountPercent float64, quantity int) float64 {
	return Round(WithDiscount(unit, discountPercent) * float64(quantity))
}
