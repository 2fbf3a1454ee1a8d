package middleware

import (
	"net/http"

	"github.com/angelmondragon/skinshop-backend/internal/cart"
)

// CartScope places the storefront cart in every request context so handlers
// can reach it with cart.MustFromContext.
func CartScope(c *cart.Cart) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(cart.WithCart(r.Context(), c)))
		})
	}
}
