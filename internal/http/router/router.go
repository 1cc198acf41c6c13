package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/infocomm/inventory-backend/docs"
	"github.com/infocomm/inventory-backend/internal/auth"
	"github.com/infocomm/inventory-backend/internal/http/handlers"
	mw "github.com/infocomm/inventory-backend/internal/http/middleware"
	"github.com/infocomm/inventory-backend/internal/http/rate_limiter"
	"github.com/infocomm/inventory-backend/internal/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Deps are the collaborators the router's middleware needs. Handlers get
// theirs through the handlers package setters.
type Deps struct {
	Tokens  *auth.TokenManager
	Revoker auth.Revoker
	Limiter *rate_limiter.Limiter
	Logger  logger.Logger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if d.Logger != nil {
		r.Use(mw.RequestLogger(d.Logger))
	}
	r.Use(chimw.Recoverer)
	if d.Limiter != nil {
		r.Use(mw.RateLimit(d.Limiter))
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/login", handlers.LoginHandler)

	r.Get("/produits", handlers.GetProductsHandler)
	r.Post("/produits/post", handlers.CreateProductHandler)
	r.Patch("/produit/delete/{id}", handlers.DeleteProductHandler)
	r.Patch("/produit/patch/{id}", handlers.PatchProductHandler)
	r.Get("/produits/{id}/mouvements", handlers.GetMovementsHandler)
	r.Get("/produits/{id}/mouvements/export", handlers.ExportMovementsHandler)
	r.Get("/alertes/{id}", handlers.GetUserAlertsHandler)

	r.Get("/fabricants", handlers.GetManufacturersHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/clients", handlers.GetClientsHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth(d.Tokens, d.Revoker))

		r.Post("/logout", handlers.LogoutHandler)
		r.Post("/produits/import", handlers.ImportProductsHandler)
		r.Post("/fabricants", handlers.CreateManufacturerHandler)
		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Post("/clients", handlers.CreateClientHandler)
		r.Post("/alertes", handlers.CreateAlertHandler)
		r.Patch("/alerte/delete/{id}", handlers.DeleteAlertHandler)
		r.Post("/alertes/{id}/utilisateurs", handlers.LinkAlertUserHandler)
	})

	return r
}
