package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

// Notifier receives the user-facing messages emitted by cart mutations.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

type actionRecorder interface {
	ObserveCartAction(action string, total, itemCount int)
}

// Params wires a Cart.
type Params struct {
	Notifier Notifier
	Metrics  actionRecorder
	Logger   *logger.Logger
}

// Cart owns the single cart state of the storefront. Dispatches are
// serialised so exactly one action is applied at a time.
type Cart struct {
	mu       sync.Mutex
	state    State
	notifier Notifier
	metrics  actionRecorder
	logg     *logger.Logger
}

// New builds an empty cart. A notifier is required.
func New(p Params) (*Cart, error) {
	if p.Notifier == nil {
		return nil, fmt.Errorf("cart notifier required")
	}
	return &Cart{
		state:    Empty(),
		notifier: p.Notifier,
		metrics:  p.Metrics,
		logg:     p.Logger,
	}, nil
}

// State returns a copy of the current cart state.
func (c *Cart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// AddItem adds one unit of skin and confirms it to the user.
func (c *Cart) AddItem(ctx context.Context, skin catalog.Skin) State {
	next, _ := c.apply(ctx, AddItem{Skin: skin})
	c.notifier.Notify(ctx, "Added to cart", fmt.Sprintf("%s was added to your cart.", skin.Name))
	return next
}

// RemoveItem drops the line for skinID. The user is only told when a line
// actually existed.
func (c *Cart) RemoveItem(ctx context.Context, skinID string) State {
	next, prev := c.apply(ctx, RemoveItem{SkinID: skinID})
	if line, ok := prev.Line(skinID); ok {
		c.notifier.Notify(ctx, "Removed from cart", fmt.Sprintf("%s was removed from your cart.", line.Skin.Name))
	}
	return next
}

// UpdateQuantity sets the quantity for skinID, removing the line at zero.
func (c *Cart) UpdateQuantity(ctx context.Context, skinID string, quantity int) State {
	next, _ := c.apply(ctx, UpdateQuantity{SkinID: skinID, Quantity: quantity})
	return next
}

// Clear empties the cart and always notifies, even if it was already empty.
func (c *Cart) Clear(ctx context.Context) State {
	next, _ := c.apply(ctx, ClearCart{})
	c.notifier.Notify(ctx, "Cart cleared", "All items were removed from your cart.")
	return next
}

// Settle removes the purchased lines from the cart, decrementing each
// matching line by the purchased quantity. Lines added after the purchase
// snapshot survive. "Cart cleared" is emitted only when nothing is left.
func (c *Cart) Settle(ctx context.Context, purchased []Line) State {
	c.mu.Lock()
	for _, p := range purchased {
		line, ok := c.state.Line(p.Skin.ID)
		if !ok {
			continue
		}
		c.reduceLocked(UpdateQuantity{SkinID: p.Skin.ID, Quantity: line.Quantity - p.Quantity})
	}
	cleared := c.state.IsEmpty()
	if cleared {
		c.reduceLocked(ClearCart{})
	}
	next := c.state.Clone()
	c.mu.Unlock()

	c.trace(ctx, "settle", next)
	if cleared {
		c.notifier.Notify(ctx, "Cart cleared", "All items were removed from your cart.")
	}
	return next
}

func (c *Cart) apply(ctx context.Context, action Action) (next, prev State) {
	c.mu.Lock()
	prev = c.state
	c.reduceLocked(action)
	next = c.state.Clone()
	c.mu.Unlock()

	c.trace(ctx, action.Name(), next)
	return next, prev
}

// reduceLocked must be called with c.mu held.
func (c *Cart) reduceLocked(action Action) {
	c.state = Reduce(c.state, action)
	if c.metrics != nil {
		c.metrics.ObserveCartAction(action.Name(), c.state.Total, c.state.ItemCount)
	}
}

func (c *Cart) trace(ctx context.Context, action string, next State) {
	if c.logg != nil {
		c.logg.Debug(c.logg.WithFields(ctx, map[string]any{
			"action":     action,
			"total":      next.Total,
			"item_count": next.ItemCount,
		}), "cart.dispatch")
	}
}
