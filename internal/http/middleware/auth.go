package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/http/response"
	"service-food-delivery/internal/logx"
)

const msgNotLoggedIn = "you are not logged in, please log in to get access"

// Authenticator resolves a bearer token to an active customer.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Customer, error)
}

type customerKey struct{}

// WithCustomer returns a copy of ctx carrying the authenticated customer.
func WithCustomer(ctx context.Context, c *domain.Customer) context.Context {
	return context.WithValue(ctx, customerKey{}, c)
}

// CustomerFromContext returns the customer stored by Auth.
func CustomerFromContext(ctx context.Context) (*domain.Customer, bool) {
	c, ok := ctx.Value(customerKey{}).(*domain.Customer)
	return c, ok && c != nil
}

// Auth requires "Authorization: Bearer <token>" and stores the customer in the request context.
func Auth(a Authenticator, logger logx.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				response.Fail(w, r, logger, http.StatusUnauthorized, msgNotLoggedIn)
				return
			}

			c, err := a.Authenticate(r.Context(), token)
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(WithCustomer(r.Context(), c)))
			case errors.Is(err, apperr.ErrUnauthorized):
				response.Fail(w, r, logger, http.StatusUnauthorized, apperr.Message(err, msgNotLoggedIn))
			default:
				logger.Error("authenticate failed", logx.Err(err))
				response.Fail(w, r, logger, http.StatusInternalServerError, "internal error")
			}
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
