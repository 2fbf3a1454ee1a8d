package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

func cartRouter(t *testing.T, c *cart.Cart) http.Handler {
	t.Helper()
	cat := testCatalog(t)
	logg := logger.Nop()
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, withCart(req, c))
		})
	})
	r.Get("/cart", GetCart(logg))
	r.Delete("/cart", ClearCart(logg))
	r.Post("/cart/items", AddCartItem(cat, logg))
	r.Patch("/cart/items/{skinId}", UpdateCartItem(logg))
	r.Delete("/cart/items/{skinId}", RemoveCartItem(logg))
	return r
}

func TestCartScenario(t *testing.T) {
	c, notifier := newTestCart(t)
	r := cartRouter(t, c)

	for _, id := range []string{"1", "1", "2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/cart/items", map[string]string{"skin_id": id}))
		if rec.Code != http.StatusOK {
			t.Fatalf("add %s: expected 200, got %d: %s", id, rec.Code, rec.Body.String())
		}
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
	var state cart.State
	decodeData(t, rec, &state)
	if state.Total != 5000 || state.ItemCount != 3 || len(state.Items) != 2 {
		t.Fatalf("unexpected state %+v", state)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil))
	state = cart.State{}
	decodeData(t, rec, &state)
	if state.Total != 2000 || state.ItemCount != 1 {
		t.Fatalf("unexpected state after remove %+v", state)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart", nil))
	state = cart.State{}
	decodeData(t, rec, &state)
	if state.Total != 0 || state.ItemCount != 0 || len(state.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", state)
	}

	wantTitles := []string{"Added to cart", "Added to cart", "Added to cart", "Removed from cart", "Cart cleared"}
	if len(notifier.toasts) != len(wantTitles) {
		t.Fatalf("expected %d notifications, got %d", len(wantTitles), len(notifier.toasts))
	}
	for i, title := range wantTitles {
		if notifier.toasts[i].title != title {
			t.Fatalf("notification %d: expected %q, got %q", i, title, notifier.toasts[i].title)
		}
	}
}

func TestAddCartItemUnknownSkin(t *testing.T) {
	c, notifier := newTestCart(t)
	rec := httptest.NewRecorder()
	cartRouter(t, c).ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/cart/items", map[string]string{"skin_id": "404"}))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !c.State().IsEmpty() || len(notifier.toasts) != 0 {
		t.Fatalf("cart must be untouched")
	}
}

func TestAddCartItemRequiresSkinID(t *testing.T) {
	c, _ := newTestCart(t)
	rec := httptest.NewRecorder()
	cartRouter(t, c).ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/cart/items", map[string]string{}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateCartItemClampsToZero(t *testing.T) {
	c, _ := newTestCart(t)
	r := cartRouter(t, c)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/cart/items", map[string]string{"skin_id": "3"}))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, http.MethodPatch, "/cart/items/3", map[string]int{"quantity": 4}))
	var state cart.State
	decodeData(t, rec, &state)
	if state.ItemCount != 4 || state.Total != 4800 {
		t.Fatalf("unexpected state %+v", state)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, http.MethodPatch, "/cart/items/3", map[string]int{"quantity": -2}))
	state = cart.State{}
	decodeData(t, rec, &state)
	if len(state.Items) != 0 || state.Total != 0 {
		t.Fatalf("expected line removed, got %+v", state)
	}
}

func TestUpdateCartItemRequiresQuantity(t *testing.T) {
	c, _ := newTestCart(t)
	rec := httptest.NewRecorder()
	cartRouter(t, c).ServeHTTP(rec, jsonRequest(t, http.MethodPatch, "/cart/items/3", map[string]string{}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartHandlerPanicsWithoutScope(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without cart scope")
		}
	}()
	GetCart(logger.Nop()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cart", nil))
}
