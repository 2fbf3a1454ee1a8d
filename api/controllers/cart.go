package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skinshop-backend/api/responses"
	"github.com/angelmondragon/skinshop-backend/api/validators"
	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

type addCartItemRequest struct {
	SkinID string `json:"skin_id" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func GetCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cart.MustFromContext(r.Context()).State())
	}
}

// AddCartItem resolves the skin through the catalog and adds one unit of it.
func AddCartItem(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var req addCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		skin, ok := cat.ByID(strings.TrimSpace(req.SkinID))
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "skin not found"))
			return
		}

		if logg != nil {
			ctx = logg.WithSkinID(ctx, skin.ID)
		}
		responses.WriteSuccess(w, cart.MustFromContext(ctx).AddItem(ctx, skin))
	}
}

// UpdateCartItem sets a line's quantity. Negative values clamp to zero and
// zero removes the line; unknown ids leave the cart unchanged.
func UpdateCartItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		skinID := strings.TrimSpace(chi.URLParam(r, "skinId"))
		responses.WriteSuccess(w, cart.MustFromContext(ctx).UpdateQuantity(ctx, skinID, *req.Quantity))
	}
}

func RemoveCartItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		skinID := strings.TrimSpace(chi.URLParam(r, "skinId"))
		responses.WriteSuccess(w, cart.MustFromContext(ctx).RemoveItem(ctx, skinID))
	}
}

func ClearCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		responses.WriteSuccess(w, cart.MustFromContext(ctx).Clear(ctx))
	}
}
