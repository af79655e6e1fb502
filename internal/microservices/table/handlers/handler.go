package handlers

import (
	"net/http"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/microservices/table/service"
)

type Handler struct {
	TableHandler      *TableHandler
	TableGroupHandler *TableGroupHandler
}

func New(s *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		TableHandler:      NewTableHandler(s.TableService, log),
		TableGroupHandler: NewTableGroupHandler(s.TableGroupService, log),
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/tables", h.TableHandler.Create)
	mux.HandleFunc("GET /api/tables", h.TableHandler.List)
	mux.HandleFunc("PUT /api/tables/{orderTableId}/empty", h.TableHandler.ChangeEmpty)
	mux.HandleFunc("PUT /api/tables/{orderTableId}/number-of-guests", h.TableHandler.ChangeNumberOfGuests)
	mux.HandleFunc("POST /api/table-groups", h.TableGroupHandler.Create)
	mux.HandleFunc("DELETE /api/table-groups/{tableGroupId}", h.TableGroupHandler.Ungroup)
}
