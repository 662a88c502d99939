package api

import (
	"github.com/triosart/storefront/internal/api/handler"
)

// Server aggregates the storefront's HTTP handlers.
type Server struct {
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
}

func NewServer(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	return &Server{
		CatalogHandler: catalogHandler,
		CartHandler:    cartHandler,
		AuthHandler:    authHandler,
		AdminHandler:   adminHandler,
	}
}
