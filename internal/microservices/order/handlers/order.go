package handlers

import (
	"fmt"
	"net/http"

	"kitchen-pos/internal/common/httpx"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/microservices/order/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	log     *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, log *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, log: log}
}

func (oh *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	o, err := oh.service.CreateOrder(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", o.ID))
	httpx.WriteJSON(w, http.StatusCreated, o)
}

func (oh *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oh.service.ListOrders(r.Context())
	if err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (oh *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "orderId")
	if err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	o, err := oh.service.GetOrder(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

func (oh *OrderHandler) ChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "orderId")
	if err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	var req service.ChangeOrderStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	o, err := oh.service.ChangeOrderStatus(r.Context(), id, req)
	if err != nil {
		httpx.WriteError(w, r, oh.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}
