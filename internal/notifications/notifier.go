package notifications

import (
	"context"

	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

// Notifier delivers a user-facing toast.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// Fanout forwards every notification to each notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, title, message string) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, title, message)
		}
	}
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	Logger *logger.Logger
}

func (l LogNotifier) Notify(ctx context.Context, title, message string) {
	if l.Logger == nil {
		return
	}
	ctx = l.Logger.WithFields(ctx, map[string]any{
		"title":   title,
		"message": message,
	})
	l.Logger.Info(ctx, "notification.sent")
}
