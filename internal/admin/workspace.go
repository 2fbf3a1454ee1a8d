package admin

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

const (
	DefaultImage = "/placeholder-skin.jpg"
	DefaultPrice = 500
)

// Notifier receives the confirmation toasts of workspace edits.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// NewSkin is the admin form for adding a skin. Zero values take defaults.
type NewSkin struct {
	Name        string
	Description string
	Category    string
	Image       string
	Rarity      enums.Rarity
	Price       int
	Featured    bool
}

// Stats summarises the workspace the way the admin dashboard shows it.
type Stats struct {
	Total        int `json:"total"`
	AveragePrice int `json:"average_price"`
	Featured     int `json:"featured"`
	HighTier     int `json:"legendary_or_mythic"`
}

// Workspace is an editable, in-memory copy of the catalog. Edits never reach
// the shared catalog or the cart and are lost on restart.
type Workspace struct {
	mu       sync.RWMutex
	skins    []catalog.Skin
	version  uint64
	notifier Notifier
	logg     *logger.Logger
	now      func() time.Time
	newID    func() string
}

// NewWorkspace seeds a workspace from cat.
func NewWorkspace(cat *catalog.Catalog, notifier Notifier, logg *logger.Logger) (*Workspace, error) {
	if cat == nil {
		return nil, fmt.Errorf("admin workspace catalog required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("admin workspace notifier required")
	}
	return &Workspace{
		skins:    cat.All(),
		notifier: notifier,
		logg:     logg,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}, nil
}

func (w *Workspace) Name() string { return "admin" }

func (w *Workspace) Version() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.version
}

// Snapshot returns the version and a copy of the skins at that version.
func (w *Workspace) Snapshot() (uint64, []catalog.Skin) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]catalog.Skin, len(w.skins))
	copy(out, w.skins)
	return w.version, out
}

// Add appends a skin built from in and returns it.
func (w *Workspace) Add(ctx context.Context, in NewSkin) (catalog.Skin, error) {
	skin, err := w.build(in)
	if err != nil {
		return catalog.Skin{}, err
	}

	w.mu.Lock()
	w.skins = append(w.skins, skin)
	w.version++
	w.mu.Unlock()

	w.debug(ctx, skin.ID, "admin.skin_added")
	w.notifier.Notify(ctx, "Skin added", fmt.Sprintf("%s was added successfully.", skin.Name))
	return skin, nil
}

// Delete removes the skin with id.
func (w *Workspace) Delete(ctx context.Context, id string) error {
	w.mu.Lock()
	i := w.indexOf(id)
	if i < 0 {
		w.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, "skin not found")
	}
	removed := w.skins[i]
	w.skins = append(w.skins[:i:i], w.skins[i+1:]...)
	w.version++
	w.mu.Unlock()

	w.debug(ctx, id, "admin.skin_deleted")
	w.notifier.Notify(ctx, "Skin deleted", fmt.Sprintf("%s was deleted.", removed.Name))
	return nil
}

// ToggleFeatured flips the featured flag of the skin with id and returns the
// updated skin.
func (w *Workspace) ToggleFeatured(ctx context.Context, id string) (catalog.Skin, error) {
	w.mu.Lock()
	i := w.indexOf(id)
	if i < 0 {
		w.mu.Unlock()
		return catalog.Skin{}, pkgerrors.New(pkgerrors.CodeNotFound, "skin not found")
	}
	w.skins[i].Featured = !w.skins[i].Featured
	skin := w.skins[i]
	w.version++
	w.mu.Unlock()

	w.debug(ctx, id, "admin.skin_featured_toggled")
	if skin.Featured {
		w.notifier.Notify(ctx, "Added to featured", fmt.Sprintf("%s is now featured.", skin.Name))
	} else {
		w.notifier.Notify(ctx, "Removed from featured", fmt.Sprintf("%s is no longer featured.", skin.Name))
	}
	return skin, nil
}

// Stats computes dashboard figures over the current skins.
func (w *Workspace) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var st Stats
	sum := 0
	for _, s := range w.skins {
		sum += s.Price
		if s.Featured {
			st.Featured++
		}
		if s.Rarity == enums.RarityLegendary || s.Rarity == enums.RarityMythic {
			st.HighTier++
		}
	}
	st.Total = len(w.skins)
	if st.Total > 0 {
		st.AveragePrice = (sum + st.Total/2) / st.Total
	}
	return st
}

func (w *Workspace) build(in NewSkin) (catalog.Skin, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Image = strings.TrimSpace(in.Image)

	details := map[string]string{}
	if in.Name == "" {
		details["name"] = "is required"
	}
	if in.Description == "" {
		details["description"] = "is required"
	}
	if in.Category == "" {
		details["category"] = "is required"
	}
	if in.Price < 0 {
		details["price"] = "must be non-negative"
	}
	if in.Rarity != "" && !in.Rarity.IsValid() {
		details["rarity"] = "is not a known rarity"
	}
	if len(details) > 0 {
		return catalog.Skin{}, pkgerrors.New(pkgerrors.CodeValidation, "please fill in all required fields").WithDetails(details)
	}

	if in.Image == "" {
		in.Image = DefaultImage
	}
	if in.Price == 0 {
		in.Price = DefaultPrice
	}
	if in.Rarity == "" {
		in.Rarity = enums.RarityCommon
	}
	return catalog.Skin{
		ID:          w.newID(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Rarity:      in.Rarity,
		Price:       in.Price,
		Featured:    in.Featured,
		Category:    in.Category,
		ReleaseDate: w.now().UTC(),
	}, nil
}

// indexOf must be called with mu held.
func (w *Workspace) indexOf(id string) int {
	for i, s := range w.skins {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) debug(ctx context.Context, skinID, msg string) {
	if w.logg == nil {
		return
	}
	w.logg.Debug(w.logg.WithSkinID(ctx, skinID), msg)
}
