package handlers

import (
	"fmt"
	"net/http"

	"kitchen-pos/internal/common/httpx"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/microservices/table/service"
)

type TableHandler struct {
	service service.TableServiceInterface
	log     *logger.Logger
}

func NewTableHandler(s service.TableServiceInterface, log *logger.Logger) *TableHandler {
	return &TableHandler{service: s, log: log}
}

func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTableRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	t, err := h.service.CreateTable(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/tables/%d", t.ID))
	httpx.WriteJSON(w, http.StatusCreated, t)
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.ListTables(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if tables == nil {
		tables = []domain.OrderTable{}
	}
	httpx.WriteJSON(w, http.StatusOK, tables)
}

func (h *TableHandler) ChangeEmpty(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "orderTableId")
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	var req service.ChangeEmptyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	t, err := h.service.ChangeEmpty(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

func (h *TableHandler) ChangeNumberOfGuests(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "orderTableId")
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	var req service.ChangeNumberOfGuestsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	t, err := h.service.ChangeNumberOfGuests(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}
