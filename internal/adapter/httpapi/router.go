package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/adapter/httpapi/middleware"
)

type Handlers struct {
	Catalog   *CatalogHandler
	Favorites *FavoritesHandler
	Ads       *AdsHandler
	News      *NewsHandler
	Admin     *AdminHandler
}

func NewRouter(h Handlers, jwtSecret string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/listings/search", h.Catalog.HandleSearchListings)
	r.Get("/api/listings/{id}", h.Catalog.HandleGetListing)
	r.Get("/api/garages", h.Catalog.HandleSearchGarages)
	r.Get("/api/garages/{id}", h.Catalog.HandleGetGarage)
	r.Get("/api/brands", h.Catalog.HandleListBrands)

	r.Get("/api/news", h.News.HandleList)
	r.Get("/api/news/{id}", h.News.HandleGet)

	r.Get("/api/ads/zone/{zone}", h.Ads.HandleGetForZone)
	r.Post("/api/ads/{id}/click", h.Ads.HandleClick)

	// Favorites require a signed-in user.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.JWTAuth(jwtSecret, logger))
		pr.Post("/api/favorites/toggle", h.Favorites.HandleToggle)
		pr.Get("/api/favorites", h.Favorites.HandleList)
		pr.Get("/api/favorites/listings", h.Favorites.HandleListings)
		pr.Get("/api/favorites/garages", h.Favorites.HandleGarages)
	})

	// Back-office: garages, brands, editorial content, ad campaigns.
	r.Group(func(ar chi.Router) {
		ar.Use(middleware.JWTAuth(jwtSecret, logger))
		ar.Use(middleware.RequireRole("admin"))
		ar.Route("/api/admin", func(a chi.Router) {
			a.Post("/garages", h.Admin.HandleCreateGarage)
			a.Put("/garages/{id}", h.Admin.HandleUpdateGarage)
			a.Delete("/garages/{id}", h.Admin.HandleDeleteGarage)

			a.Post("/brands", h.Admin.HandleCreateBrand)
			a.Put("/brands/{id}", h.Admin.HandleUpdateBrand)
			a.Delete("/brands/{id}", h.Admin.HandleDeleteBrand)

			a.Post("/news", h.News.HandleCreate)
			a.Put("/news/{id}", h.News.HandleUpdate)
			a.Delete("/news/{id}", h.News.HandleDelete)

			a.Get("/campaigns", h.Admin.HandleListCampaigns)
			a.Post("/campaigns", h.Admin.HandleCreateCampaign)
			a.Put("/campaigns/{id}", h.Admin.HandleUpdateCampaign)
			a.Delete("/campaigns/{id}", h.Admin.HandleDeleteCampaign)
		})
	})

	return r
}
