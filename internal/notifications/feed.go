package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
)

// Notification is one toast queued for the storefront client.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListParams filters a feed listing. Limit <= 0 returns everything.
type ListParams struct {
	Limit      int
	UnreadOnly bool
}

// Feed is a bounded in-memory notification list. When full, the oldest entry
// is dropped.
type Feed struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	now      func() time.Time
}

func NewFeed(capacity int) (*Feed, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("notification feed capacity must be positive")
	}
	return &Feed{
		items:    make([]Notification, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}, nil
}

func (f *Feed) Notify(_ context.Context, title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == f.capacity {
		f.items = append(f.items[:0], f.items[1:]...)
	}
	f.items = append(f.items, Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		CreatedAt: f.now().UTC(),
	})
}

// List returns notifications newest first.
func (f *Feed) List(params ListParams) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		n := f.items[i]
		if params.UnreadOnly && n.Read {
			continue
		}
		out = append(out, n)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out
}

// UnreadCount reports how many notifications have not been read.
func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.items {
		if !n.Read {
			count++
		}
	}
	return count
}

func (f *Feed) MarkRead(id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
}

// MarkAllRead flags every notification as read and returns how many changed.
func (f *Feed) MarkAllRead() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	changed := 0
	for i := range f.items {
		if !f.items[i].Read {
			f.items[i].Read = true
			changed++
		}
	}
	return changed
}
