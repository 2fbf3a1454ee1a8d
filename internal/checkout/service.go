package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

// DefaultCountry is applied when the form leaves the country blank.
const DefaultCountry = "France"

// Cart is the slice of the cart the checkout needs.
type Cart interface {
	State() cart.State
	Settle(ctx context.Context, purchased []cart.Line) cart.State
}

// Notifier receives the order confirmation.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

type checkoutRecorder interface {
	ObserveCheckout(status string, duration time.Duration)
}

// Params wires a checkout Service.
type Params struct {
	Notifier Notifier
	Delay    time.Duration
	Metrics  checkoutRecorder
	Logger   *logger.Logger
}

// Service runs the simulated payment: it waits a fixed delay and then always
// succeeds. There is no payment gateway behind it.
type Service struct {
	notifier Notifier
	delay    time.Duration
	metrics  checkoutRecorder
	logg     *logger.Logger
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

func NewService(p Params) (*Service, error) {
	if p.Notifier == nil {
		return nil, fmt.Errorf("checkout notifier required")
	}
	if p.Delay < 0 {
		return nil, fmt.Errorf("checkout delay must not be negative")
	}
	return &Service{
		notifier: p.Notifier,
		delay:    p.Delay,
		metrics:  p.Metrics,
		logg:     p.Logger,
		now:      time.Now,
		after:    time.After,
	}, nil
}

// Execute places an order for the current contents of c. The cart is
// snapshotted up front and the purchased lines are settled once processing
// completes; anything added during the wait stays in the cart. The cart is
// left untouched when ctx ends first.
func (s *Service) Execute(ctx context.Context, c Cart, in Input) (*Order, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable")
	}
	in = normalizeInput(in)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	snapshot := c.State()
	if snapshot.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	start := s.now()
	order := &Order{
		ID:          uuid.New(),
		Items:       snapshot.Items,
		Total:       snapshot.Total,
		ItemCount:   snapshot.ItemCount,
		Customer:    Customer{Email: in.Email, Name: in.Name, Country: in.Country},
		EpicGamesID: in.EpicGamesID,
		Status:      enums.OrderStatusPending,
		CreatedAt:   start.UTC(),
	}
	if s.logg != nil {
		ctx = s.logg.WithOrderID(ctx, order.ID.String())
		s.logg.Info(ctx, "checkout.processing")
	}

	if err := s.wait(ctx); err != nil {
		order.Status = enums.OrderStatusCancelled
		s.observe(order.Status, start)
		if s.logg != nil {
			s.logg.Warn(ctx, "checkout.cancelled")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeCanceled, err, "checkout interrupted")
	}

	order.Status = enums.OrderStatusCompleted
	s.notifier.Notify(ctx, "Order confirmed", "Your skins have been added to your Epic Games account.")
	c.Settle(ctx, snapshot.Items)
	s.observe(order.Status, start)
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "total", order.Total), "checkout.completed")
	}
	return order, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.after(s.delay):
		return nil
	}
}

func (s *Service) observe(status enums.OrderStatus, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveCheckout(status.String(), s.now().Sub(start))
	}
}

func normalizeInput(in Input) Input {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.EpicGamesID = strings.TrimSpace(in.EpicGamesID)
	in.CardNumber = strings.TrimSpace(in.CardNumber)
	in.ExpiryDate = strings.TrimSpace(in.ExpiryDate)
	in.CVV = strings.TrimSpace(in.CVV)
	in.BillingAddress = strings.TrimSpace(in.BillingAddress)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Country = strings.TrimSpace(in.Country)
	if in.Country == "" {
		in.Country = DefaultCountry
	}
	return in
}

func validateInput(in Input) error {
	missing := map[string]string{}
	for field, value := range map[string]string{
		"email":           in.Email,
		"name":            in.Name,
		"epic_games_id":   in.EpicGamesID,
		"card_number":     in.CardNumber,
		"expiry_date":     in.ExpiryDate,
		"cvv":             in.CVV,
		"billing_address": in.BillingAddress,
		"city":            in.City,
		"postal_code":     in.PostalCode,
	} {
		if value == "" {
			missing[field] = "is required"
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(missing)
	}
	return nil
}
