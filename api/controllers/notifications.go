package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/skinshop-backend/api/responses"
	"github.com/angelmondragon/skinshop-backend/api/validators"
	"github.com/angelmondragon/skinshop-backend/internal/notifications"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

// NotificationFeed is the read side of the toast feed.
type NotificationFeed interface {
	List(params notifications.ListParams) []notifications.Notification
	UnreadCount() int
	MarkRead(id uuid.UUID) error
	MarkAllRead() int
}

type notificationListResponse struct {
	Items  []notifications.Notification `json:"items"`
	Unread int                          `json:"unread"`
}

// ListNotifications returns the newest notifications first.
func ListNotifications(feed NotificationFeed, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if feed == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		unreadOnly, err := validators.ParseQueryBool(r, "unread", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, notificationListResponse{
			Items:  feed.List(notifications.ListParams{Limit: limit, UnreadOnly: unreadOnly}),
			Unread: feed.UnreadCount(),
		})
	}
}

func MarkNotificationRead(feed NotificationFeed, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if feed == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications unavailable"))
			return
		}

		id, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "notificationId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid notification id"))
			return
		}
		if err := feed.MarkRead(id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"read": true})
	}
}

func MarkAllNotificationsRead(feed NotificationFeed, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if feed == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]int{"updated": feed.MarkAllRead()})
	}
}
