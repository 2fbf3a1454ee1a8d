package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skinshop-backend/api/responses"
	"github.com/angelmondragon/skinshop-backend/api/validators"
	"github.com/angelmondragon/skinshop-backend/internal/browse"
	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

const maxSearchLength = 100

// ViewQuerier produces filtered and sorted views of a skin source.
type ViewQuerier interface {
	Query(src browse.Source, p browse.Params) []catalog.Skin
}

type skinListResponse struct {
	Items  []catalog.Skin `json:"items"`
	Count  int            `json:"count"`
	Search string         `json:"search"`
	Rarity string         `json:"rarity"`
	Sort   string         `json:"sort"`
}

// ListSkins serves the catalog view for ?q=&rarity=&sort=. Unknown sort keys
// fall back to name order; unknown rarities are rejected.
func ListSkins(src browse.Source, views ViewQuerier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if src == nil || views == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		params, err := parseBrowseParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := views.Query(src, params)
		responses.WriteSuccess(w, skinListResponse{
			Items:  items,
			Count:  len(items),
			Search: params.Search,
			Rarity: params.Rarity,
			Sort:   params.Sort.String(),
		})
	}
}

func FeaturedSkins(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, cat.Featured())
	}
}

// SkinRarityCounts serves the per-tier counts behind the rarity filter.
func SkinRarityCounts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, catalog.RarityCounts(cat.All()))
	}
}

func GetSkin(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		skin, ok := cat.ByID(strings.TrimSpace(chi.URLParam(r, "skinId")))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "skin not found"))
			return
		}
		responses.WriteSuccess(w, skin)
	}
}

func parseBrowseParams(r *http.Request) (browse.Params, error) {
	rarity, err := validators.ParseQueryEnum(r, "rarity", enums.RarityAll, rarityFilterValues())
	if err != nil {
		return browse.Params{}, err
	}
	// The search text is matched as typed; surrounding spaces are significant.
	search := validators.TruncateString(r.URL.Query().Get("q"), maxSearchLength)
	sort := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("sort")))
	return browse.NewParams(search, rarity, sort), nil
}

func rarityFilterValues() []string {
	values := []string{enums.RarityAll}
	for _, r := range enums.Rarities() {
		values = append(values, r.String())
	}
	return values
}
