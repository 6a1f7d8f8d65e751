package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	peakStartHour = 19
	peakEndHour   = 22
)

// Multipliers of the peak rule table.
var (
	MultiplierPeakWeekend = decimal.RequireFromString("1.4")
	MultiplierPeak        = decimal.RequireFromString("1.3")
	MultiplierWeekend     = decimal.RequireFromString("1.2")
	MultiplierNormal      = decimal.NewFromInt(1)
)

// IsPeakHour reports whether t falls in [19:00, 22:00) of its own location.
func IsPeakHour(t time.Time) bool {
	h := t.Hour()
	return h >= peakStartHour && h < peakEndHour
}

// IsWeekend reports whether t is a Saturday or Sunday in its own location.
func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

func multiplier(t time.Time) decimal.Decimal {
	peak, weekend := IsPeakHour(t), IsWeekend(t)
	switch {
	case peak && weekend:
		return MultiplierPeakWeekend
	case peak:
		return MultiplierPeak
	case weekend:
		return MultiplierWeekend
	default:
		return MultiplierNormal
	}
}

// PeakMultiplier returns the delivery fee multiplier at t.
func PeakMultiplier(t time.Time) float64 {
	f, _ := multiplier(t).Float64()
	return f
}

// Surcharge is the fee after the peak multiplier.
type Surcharge struct {
	Multiplier  float64
	Amount      float64
	DeliveryFee float64
}

// ApplySurcharge multiplies subtotal by the multiplier at t.
func ApplySurcharge(subtotal decimal.Decimal, at time.Time) Surcharge {
	m := multiplier(at)
	mf, _ := m.Float64()
	return Surcharge{
		Multiplier:  mf,
		Amount:      toFloat(subtotal.Mul(m.Sub(MultiplierNormal))),
		DeliveryFee: toFloat(subtotal.Mul(m)),
	}
}
