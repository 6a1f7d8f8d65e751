// Package pricing holds the pure order pricing steps: distance, delivery fee,
// peak surcharge, promotion discount and the order total.
package pricing

import "github.com/shopspring/decimal"

// Round2 rounds v to cents, half away from zero.
func Round2(v float64) float64 {
	return toFloat(decimal.NewFromFloat(v))
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
