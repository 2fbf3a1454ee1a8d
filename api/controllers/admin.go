package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skinshop-backend/api/responses"
	"github.com/angelmondragon/skinshop-backend/api/validators"
	"github.com/angelmondragon/skinshop-backend/internal/admin"
	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

// AdminWorkspace is the editable catalog copy behind the admin routes.
type AdminWorkspace interface {
	Name() string
	Version() uint64
	Snapshot() (uint64, []catalog.Skin)
	Add(ctx context.Context, in admin.NewSkin) (catalog.Skin, error)
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (catalog.Skin, error)
	Stats() admin.Stats
}

type adminSkinListResponse struct {
	skinListResponse
	Stats admin.Stats `json:"stats"`
}

type createSkinRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"required,max=1000"`
	Category    string `json:"category" validate:"required,max=60"`
	Image       string `json:"image" validate:"omitempty,max=500"`
	Rarity      string `json:"rarity" validate:"omitempty,oneof=common uncommon rare epic legendary mythic"`
	Price       int    `json:"price" validate:"gte=0"`
	Featured    bool   `json:"featured"`
}

// AdminListSkins lists the workspace through the same query parameters as the
// storefront and attaches dashboard stats.
func AdminListSkins(ws AdminWorkspace, views ViewQuerier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ws == nil || views == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin workspace unavailable"))
			return
		}

		params, err := parseBrowseParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := views.Query(ws, params)
		responses.WriteSuccess(w, adminSkinListResponse{
			skinListResponse: skinListResponse{
				Items:  items,
				Count:  len(items),
				Search: params.Search,
				Rarity: params.Rarity,
				Sort:   params.Sort.String(),
			},
			Stats: ws.Stats(),
		})
	}
}

func AdminCreateSkin(ws AdminWorkspace, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if ws == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin workspace unavailable"))
			return
		}

		var req createSkinRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		skin, err := ws.Add(ctx, admin.NewSkin{
			Name:        validators.SanitizeString(req.Name, 120),
			Description: validators.SanitizeString(req.Description, 1000),
			Category:    validators.SanitizeString(req.Category, 60),
			Image:       validators.SanitizeString(req.Image, 500),
			Rarity:      enums.Rarity(req.Rarity),
			Price:       req.Price,
			Featured:    req.Featured,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, skin)
	}
}

func AdminDeleteSkin(ws AdminWorkspace, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if ws == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin workspace unavailable"))
			return
		}
		if err := ws.Delete(ctx, strings.TrimSpace(chi.URLParam(r, "skinId"))); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func AdminToggleFeatured(ws AdminWorkspace, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if ws == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin workspace unavailable"))
			return
		}
		skin, err := ws.ToggleFeatured(ctx, strings.TrimSpace(chi.URLParam(r, "skinId")))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, skin)
	}
}
