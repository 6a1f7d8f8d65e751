package ratelimit

// NopLimiter admits every request; used when rate limiting is disabled.
type NopLimiter struct{}

// Allow always returns true
func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns NopLimiter
func NewNopLimiter() Limiter { return NopLimiter{} }
