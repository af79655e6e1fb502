package handlers

import (
	"fmt"
	"net/http"

	"kitchen-pos/internal/common/httpx"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/microservices/catalog/service"
)

type ProductHandler struct {
	service service.ProductServiceInterface
	log     *logger.Logger
}

func NewProductHandler(s service.ProductServiceInterface, log *logger.Logger) *ProductHandler {
	return &ProductHandler{service: s, log: log}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", p.ID))
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}
