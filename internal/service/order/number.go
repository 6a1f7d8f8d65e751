package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

type randomNumberFactory struct{}

// NewNumberFactory returns a factory producing ORD-YYYYMMDD-NNNNN numbers with a random suffix.
func NewNumberFactory() NumberFactory {
	return randomNumberFactory{}
}

// Next returns a new order number for the day of now.
func (randomNumberFactory) Next(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), rand.IntN(100000))
}
