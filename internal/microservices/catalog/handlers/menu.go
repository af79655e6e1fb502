package handlers

import (
	"fmt"
	"net/http"

	"kitchen-pos/internal/common/httpx"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/microservices/catalog/service"
)

type MenuHandler struct {
	service service.MenuServiceInterface
	log     *logger.Logger
}

func NewMenuHandler(s service.MenuServiceInterface, log *logger.Logger) *MenuHandler {
	return &MenuHandler{service: s, log: log}
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMenuRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	m, err := h.service.CreateMenu(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/menus/%d", m.ID))
	httpx.WriteJSON(w, http.StatusCreated, m)
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.ListMenus(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if menus == nil {
		menus = []domain.Menu{}
	}
	httpx.WriteJSON(w, http.StatusOK, menus)
}
