package controllers

import (
	"net/http"

	"github.com/angelmondragon/skinshop-backend/api/responses"
	"github.com/angelmondragon/skinshop-backend/pkg/config"
)

const envHeader = "X-Skinshop-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the catalog holds at least one skin.
func HealthReady(cfg *config.Config, catalogSize func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if catalogSize == nil || catalogSize() == 0 {
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "skins": catalogSize()})
	}
}
