package handlers

import (
	"net/http"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/microservices/catalog/service"
)

type Handler struct {
	ProductHandler   *ProductHandler
	MenuGroupHandler *MenuGroupHandler
	MenuHandler      *MenuHandler
}

func New(s *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		ProductHandler:   NewProductHandler(s.ProductService, log),
		MenuGroupHandler: NewMenuGroupHandler(s.MenuGroupService, log),
		MenuHandler:      NewMenuHandler(s.MenuService, log),
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/products", h.ProductHandler.Create)
	mux.HandleFunc("GET /api/products", h.ProductHandler.List)
	mux.HandleFunc("POST /api/menu-groups", h.MenuGroupHandler.Create)
	mux.HandleFunc("GET /api/menu-groups", h.MenuGroupHandler.List)
	mux.HandleFunc("POST /api/menus", h.MenuHandler.Create)
	mux.HandleFunc("GET /api/menus", h.MenuHandler.List)
}
