package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/skinshop-backend/internal/browse"
	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
)

type toast struct{ title, message string }

type recordingNotifier struct{ toasts []toast }

func (r *recordingNotifier) Notify(_ context.Context, title, message string) {
	r.toasts = append(r.toasts, toast{title, message})
}

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Skin{
		{ID: "1", Name: "Cyber Warrior", Rarity: enums.RarityEpic, Price: 1500, Featured: true, Category: "Sci-Fi"},
		{ID: "2", Name: "Street Ninja", Rarity: enums.RarityRare, Price: 1200, Category: "Urban"},
		{ID: "3", Name: "Galaxy Guardian", Rarity: enums.RarityMythic, Price: 2500, Category: "Sci-Fi"},
	})
	require.NoError(t, err)
	return cat
}

func newWorkspace(t *testing.T) (*Workspace, *catalog.Catalog, *recordingNotifier) {
	t.Helper()
	cat := fixtureCatalog(t)
	n := &recordingNotifier{}
	w, err := NewWorkspace(cat, n, nil)
	require.NoError(t, err)
	w.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	w.newID = func() string { return "new-1" }
	return w, cat, n
}

func TestNewWorkspaceRequiresDependencies(t *testing.T) {
	_, err := NewWorkspace(nil, &recordingNotifier{}, nil)
	require.Error(t, err)
	_, err = NewWorkspace(fixtureCatalog(t), nil, nil)
	require.Error(t, err)
}

func TestAddAppliesDefaults(t *testing.T) {
	w, cat, n := newWorkspace(t)

	skin, err := w.Add(context.Background(), NewSkin{
		Name:        " Pixel Knight ",
		Description: "Retro armour.",
		Category:    "Retro",
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.Skin{
		ID:          "new-1",
		Name:        "Pixel Knight",
		Description: "Retro armour.",
		Image:       DefaultImage,
		Rarity:      enums.RarityCommon,
		Price:       DefaultPrice,
		Category:    "Retro",
		ReleaseDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}, skin)
	assert.Equal(t, uint64(1), w.Version())

	version, skins := w.Snapshot()
	assert.Equal(t, uint64(1), version)
	require.Len(t, skins, 4)
	assert.Equal(t, "new-1", skins[3].ID)

	assert.Equal(t, 3, cat.Len(), "the shared catalog is untouched")
	assert.Equal(t, []toast{{"Skin added", "Pixel Knight was added successfully."}}, n.toasts)
}

func TestAddCanStartFeatured(t *testing.T) {
	w, _, _ := newWorkspace(t)

	skin, err := w.Add(context.Background(), NewSkin{
		Name:        "Neon Drifter",
		Description: "Glows in the dark.",
		Category:    "Cyberpunk",
		Rarity:      enums.RarityLegendary,
		Price:       1800,
		Featured:    true,
	})
	require.NoError(t, err)
	assert.True(t, skin.Featured)
	assert.Equal(t, Stats{Total: 4, AveragePrice: 1750, Featured: 2, HighTier: 2}, w.Stats())
}

func TestAddRejectsMissingFields(t *testing.T) {
	w, _, n := newWorkspace(t)

	_, err := w.Add(context.Background(), NewSkin{Name: "Only a name", Price: -1, Rarity: "shiny"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, map[string]string{
		"description": "is required",
		"category":    "is required",
		"price":       "must be non-negative",
		"rarity":      "is not a known rarity",
	}, typed.Details())
	assert.Equal(t, uint64(0), w.Version())
	assert.Empty(t, n.toasts)
}

func TestDelete(t *testing.T) {
	w, _, n := newWorkspace(t)

	require.NoError(t, w.Delete(context.Background(), "2"))
	_, skins := w.Snapshot()
	require.Len(t, skins, 2)
	assert.Equal(t, "1", skins[0].ID)
	assert.Equal(t, "3", skins[1].ID)
	assert.Equal(t, []toast{{"Skin deleted", "Street Ninja was deleted."}}, n.toasts)

	err := w.Delete(context.Background(), "2")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, uint64(1), w.Version())
}

func TestToggleFeatured(t *testing.T) {
	w, cat, n := newWorkspace(t)
	ctx := context.Background()

	skin, err := w.ToggleFeatured(ctx, "1")
	require.NoError(t, err)
	assert.False(t, skin.Featured)

	skin, err = w.ToggleFeatured(ctx, "1")
	require.NoError(t, err)
	assert.True(t, skin.Featured)

	_, err = w.ToggleFeatured(ctx, "missing")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	assert.Equal(t, []toast{
		{"Removed from featured", "Cyber Warrior is no longer featured."},
		{"Added to featured", "Cyber Warrior is now featured."},
	}, n.toasts)
	original, _ := cat.ByID("1")
	assert.True(t, original.Featured)
}

func TestStats(t *testing.T) {
	w, _, _ := newWorkspace(t)

	assert.Equal(t, Stats{Total: 3, AveragePrice: 1733, Featured: 1, HighTier: 1}, w.Stats())

	require.NoError(t, w.Delete(context.Background(), "1"))
	require.NoError(t, w.Delete(context.Background(), "2"))
	require.NoError(t, w.Delete(context.Background(), "3"))
	assert.Equal(t, Stats{}, w.Stats())
}

func TestWorkspaceEditsInvalidateBrowseViews(t *testing.T) {
	w, _, _ := newWorkspace(t)
	svc, err := browse.NewService(8, time.Minute, nil)
	require.NoError(t, err)
	params := browse.NewParams("", enums.RarityAll, "price-asc")

	before := svc.Query(w, params)
	require.Len(t, before, 3)

	require.NoError(t, w.Delete(context.Background(), "2"))
	after := svc.Query(w, params)
	require.Len(t, after, 2)
	assert.Equal(t, "1", after[0].ID)
}
