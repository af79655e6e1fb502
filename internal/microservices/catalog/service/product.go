package service

import (
	"context"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
)

type CreateProductRequest struct {
	Name  string        `json:"name"`
	Price *domain.Money `json:"price"`
}

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type ProductService struct {
	deps Deps
}

func NewProductService(d Deps) ProductServiceInterface {
	return &ProductService{deps: d}
}

func (ps *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (domain.Product, error) {
	if req.Price == nil {
		return domain.Product{}, domain.Validationf("product price is required")
	}
	p, err := domain.NewProduct(req.Name, *req.Price)
	if err != nil {
		return domain.Product{}, err
	}

	err = ps.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		p, err = s.Products().Save(ctx, p)
		return err
	})
	if err != nil {
		return domain.Product{}, err
	}

	ps.deps.Log.Info("product_created", map[string]any{"product_id": p.ID, "price": p.Price.String()})
	events.Emit(ctx, ps.deps.Events, ps.deps.Log, domain.Event{
		Type:     domain.EventProductCreated,
		EntityID: p.ID,
		Payload:  map[string]any{"name": p.Name, "price": p.Price.String()},
	})
	return p, nil
}

func (ps *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := ps.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		out, err = s.Products().FindAll(ctx)
		return err
	})
	return out, err
}
