package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
	"github.com/angelmondragon/skinshop-backend/pkg/types"
)

type recordedToast struct{ title, message string }

type recordingNotifier struct{ toasts []recordedToast }

func (n *recordingNotifier) Notify(_ context.Context, title, message string) {
	n.toasts = append(n.toasts, recordedToast{title, message})
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	cat, err := catalog.New([]catalog.Skin{
		{ID: "1", Name: "Cyber Warrior", Description: "Futuristic armour", Rarity: enums.RarityEpic, Price: 1500, Featured: true, Category: "Sci-Fi", ReleaseDate: day(2024, 1, 15)},
		{ID: "2", Name: "Mystical Mage", Description: "Arcane robes", Rarity: enums.RarityLegendary, Price: 2000, Featured: true, Category: "Fantasy", ReleaseDate: day(2024, 2, 1)},
		{ID: "3", Name: "Street Ninja", Description: "Urban stealth", Rarity: enums.RarityRare, Price: 1200, Category: "Urban", ReleaseDate: day(2024, 1, 20)},
		{ID: "4", Name: "Casual Gamer", Description: "Everyday look", Rarity: enums.RarityCommon, Price: 800, Category: "Casual", ReleaseDate: day(2024, 2, 10)},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func newTestCart(t *testing.T) (*cart.Cart, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	c, err := cart.New(cart.Params{Notifier: n})
	if err != nil {
		t.Fatalf("cart.New: %v", err)
	}
	return c, n
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withCart(req *http.Request, c *cart.Cart) *http.Request {
	return req.WithContext(cart.WithCart(req.Context(), c))
}

// decodeData unwraps a success envelope into dest.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var env types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return env.Error
}
