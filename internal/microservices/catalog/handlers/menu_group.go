package handlers

import (
	"fmt"
	"net/http"

	"kitchen-pos/internal/common/httpx"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/microservices/catalog/service"
)

type MenuGroupHandler struct {
	service service.MenuGroupServiceInterface
	log     *logger.Logger
}

func NewMenuGroupHandler(s service.MenuGroupServiceInterface, log *logger.Logger) *MenuGroupHandler {
	return &MenuGroupHandler{service: s, log: log}
}

func (h *MenuGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMenuGroupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	g, err := h.service.CreateMenuGroup(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/menu-groups/%d", g.ID))
	httpx.WriteJSON(w, http.StatusCreated, g)
}

func (h *MenuGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListMenuGroups(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if groups == nil {
		groups = []domain.MenuGroup{}
	}
	httpx.WriteJSON(w, http.StatusOK, groups)
}
