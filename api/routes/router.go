package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/angelmondragon/skinshop-backend/api/controllers"
	"github.com/angelmondragon/skinshop-backend/api/middleware"
	"github.com/angelmondragon/skinshop-backend/internal/browse"
	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/config"
	"github.com/angelmondragon/skinshop-backend/pkg/logger"
)

// Deps is everything the HTTP surface is built from.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	Catalog       *catalog.Catalog
	Cart          *cart.Cart
	Views         controllers.ViewQuerier
	Checkout      controllers.CheckoutService
	Notifications controllers.NotificationFeed
	Admin         controllers.AdminWorkspace
	Gatherer      prometheus.Gatherer
}

func (d Deps) validate() error {
	var errs error
	if d.Config == nil {
		errs = multierr.Append(errs, errors.New("config required"))
	}
	if d.Catalog == nil {
		errs = multierr.Append(errs, errors.New("catalog required"))
	}
	if d.Cart == nil {
		errs = multierr.Append(errs, errors.New("cart required: the storefront cannot serve requests without a cart scope"))
	}
	if d.Views == nil {
		errs = multierr.Append(errs, errors.New("view querier required"))
	}
	if d.Checkout == nil {
		errs = multierr.Append(errs, errors.New("checkout service required"))
	}
	if d.Notifications == nil {
		errs = multierr.Append(errs, errors.New("notification feed required"))
	}
	if d.Config != nil && d.Config.Admin.Enabled && d.Admin == nil {
		errs = multierr.Append(errs, errors.New("admin workspace required when admin routes are enabled"))
	}
	return errs
}

func NewRouter(d Deps) (http.Handler, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	cfg, logg := d.Config, d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, d.Catalog.Len))
	})

	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	catalogSource := browse.CatalogSource{Catalog: d.Catalog}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CartScope(d.Cart))

		r.Route("/skins", func(r chi.Router) {
			r.Get("/", controllers.ListSkins(catalogSource, d.Views, logg))
			r.Get("/featured", controllers.FeaturedSkins(d.Catalog, logg))
			r.Get("/rarities", controllers.SkinRarityCounts(d.Catalog, logg))
			r.Get("/{skinId}", controllers.GetSkin(d.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(logg))
			r.Delete("/", controllers.ClearCart(logg))
			r.Post("/items", controllers.AddCartItem(d.Catalog, logg))
			r.Patch("/items/{skinId}", controllers.UpdateCartItem(logg))
			r.Delete("/items/{skinId}", controllers.RemoveCartItem(logg))
		})

		r.Post("/checkout", controllers.Checkout(d.Checkout, logg))

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(d.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(d.Notifications, logg))
			r.Post("/{notificationId}/read", controllers.MarkNotificationRead(d.Notifications, logg))
		})
	})

	if cfg.Admin.Enabled {
		r.Route("/api/admin/v1/skins", func(r chi.Router) {
			r.Get("/", controllers.AdminListSkins(d.Admin, d.Views, logg))
			r.Post("/", controllers.AdminCreateSkin(d.Admin, logg))
			r.Delete("/{skinId}", controllers.AdminDeleteSkin(d.Admin, logg))
			r.Post("/{skinId}/featured", controllers.AdminToggleFeatured(d.Admin, logg))
		})
	}

	return r, nil
}
