package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/skinshop-backend/api/responses"
	"github.com/angelmondragon/skinshop-backend/api/validators"
	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/internal/checkout"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

// CheckoutService places orders for the scoped cart.
type CheckoutService interface {
	Execute(ctx context.Context, c checkout.Cart, in checkout.Input) (*checkout.Order, error)
}

type checkoutRequest struct {
	Email          string `json:"email" validate:"required,email,max=254"`
	Name           string `json:"name" validate:"required,max=120"`
	EpicGamesID    string `json:"epic_games_id" validate:"required,max=64"`
	CardNumber     string `json:"card_number" validate:"required,max=19"`
	ExpiryDate     string `json:"expiry_date" validate:"required,max=5"`
	CVV            string `json:"cvv" validate:"required,max=4"`
	BillingAddress string `json:"billing_address" validate:"required,max=200"`
	City           string `json:"city" validate:"required,max=100"`
	PostalCode     string `json:"postal_code" validate:"required,max=20"`
	Country        string `json:"country" validate:"omitempty,max=100"`
}

// Checkout runs the simulated payment for the scoped cart and returns the
// order receipt. The request blocks for the configured processing delay.
func Checkout(svc CheckoutService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var req checkoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.Execute(ctx, cart.MustFromContext(ctx), checkout.Input{
			Email:          validators.SanitizeString(req.Email, 254),
			Name:           validators.SanitizeString(req.Name, 120),
			EpicGamesID:    validators.SanitizeString(req.EpicGamesID, 64),
			CardNumber:     validators.SanitizeString(req.CardNumber, 19),
			ExpiryDate:     validators.SanitizeString(req.ExpiryDate, 5),
			CVV:            validators.SanitizeString(req.CVV, 4),
			BillingAddress: validators.SanitizeString(req.BillingAddress, 200),
			City:           validators.SanitizeString(req.City, 100),
			PostalCode:     validators.SanitizeString(req.PostalCode, 20),
			Country:        validators.SanitizeString(req.Country, 100),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
