package handlers

import (
	"net/http"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/microservices/order/service"
)

type Handler struct {
	OrderHandler *OrderHandler
}

func New(s *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		OrderHandler: NewOrderHandler(s.OrderService, log),
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/orders", h.OrderHandler.AddOrder)
	mux.HandleFunc("GET /api/orders", h.OrderHandler.ListOrders)
	mux.HandleFunc("GET /api/orders/{orderId}", h.OrderHandler.GetOrder)
	mux.HandleFunc("PUT /api/orders/{orderId}/order-status", h.OrderHandler.ChangeOrderStatus)
}
