package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/triosart/storefront/internal/api"
	m "github.com/triosart/storefront/internal/api/middleware"
	"github.com/triosart/storefront/internal/auth"
)

func SetupRouter(server *api.Server, session *auth.Session, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(m.RequestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.CatalogHandler.List)
			r.Get("/{id}", server.CatalogHandler.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.Get)
			r.Post("/items", server.CartHandler.AddItem)
			r.Put("/items/{productID}", server.CartHandler.UpdateItem)
			r.Delete("/items/{productID}", server.CartHandler.RemoveItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
			r.Post("/signup", server.AuthHandler.Signup)
			r.Post("/logout", server.AuthHandler.Logout)
			r.Get("/me", server.AuthHandler.Me)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(m.RequireSession(session))
			r.Post("/products", server.AdminHandler.CreateProduct)
		})
	})

	return r
}
