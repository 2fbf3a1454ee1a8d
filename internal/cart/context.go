package cart

import "context"

type ctxKey struct{}

// WithCart scopes c to ctx so request handlers can reach it.
func WithCart(ctx context.Context, c *Cart) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the cart scoped to ctx, if any.
func FromContext(ctx context.Context) (*Cart, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(ctxKey{}).(*Cart)
	return c, ok && c != nil
}

// MustFromContext returns the scoped cart and panics when none was installed.
// Reaching it without a cart is a wiring bug, not a request error.
func MustFromContext(ctx context.Context) *Cart {
	c, ok := FromContext(ctx)
	if !ok {
		panic("cart: accessed outside of a cart scope; install the cart provider before the handler")
	}
	return c
}
