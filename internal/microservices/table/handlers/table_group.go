package handlers

import (
	"fmt"
	"net/http"

	"kitchen-pos/internal/common/httpx"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/microservices/table/service"
)

type TableGroupHandler struct {
	service service.TableGroupServiceInterface
	log     *logger.Logger
}

func NewTableGroupHandler(s service.TableGroupServiceInterface, log *logger.Logger) *TableGroupHandler {
	return &TableGroupHandler{service: s, log: log}
}

func (h *TableGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTableGroupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	g, err := h.service.Group(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/table-groups/%d", g.ID))
	httpx.WriteJSON(w, http.StatusCreated, g)
}

func (h *TableGroupHandler) Ungroup(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "tableGroupId")
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if err := h.service.Ungroup(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
