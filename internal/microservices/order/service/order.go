package service

import (
	"context"

	"github.com/cockroachdb/errors"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
)

type CreateOrderRequest struct {
	OrderTableID   int64              `json:"orderTableId"`
	OrderLineItems []domain.OrderLine `json:"orderLineItems"`
}

type ChangeOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	ChangeOrderStatus(ctx context.Context, orderID int64, req ChangeOrderStatusRequest) (domain.Order, error)
}

type OrderService struct {
	deps Deps
}

func NewOrderService(d Deps) OrderServiceInterface {
	return &OrderService{deps: d}
}

// CreateOrder places an order in COOKING. The table is checked before the
// lines, all against the same transaction the order is written in.
func (svc *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	if len(req.OrderLineItems) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}

	var order domain.Order
	err := svc.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		table, err := s.OrderTables().FindByID(ctx, req.OrderTableID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Referencef("unknown table %d", req.OrderTableID)
		}
		if err != nil {
			return err
		}
		if err := table.AcceptsOrders(); err != nil {
			return err
		}

		existing, err := s.Menus().FindExistingIDs(ctx, domain.DistinctMenuIDs(req.OrderLineItems))
		if err != nil {
			return err
		}
		known := make(map[int64]bool, len(existing))
		for _, id := range existing {
			known[id] = true
		}
		if err := domain.ValidateOrderLines(req.OrderLineItems, known); err != nil {
			return err
		}

		o, err := domain.PlaceOrder(table, req.OrderLineItems, svc.deps.Now().UTC())
		if err != nil {
			return err
		}
		order, err = s.Orders().Save(ctx, o)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	svc.deps.Log.Info("order_created", map[string]any{
		"order_id":       order.ID,
		"order_table_id": order.OrderTableID,
		"line_items":     len(order.OrderLineItems),
	})
	events.Emit(ctx, svc.deps.Events, svc.deps.Log, domain.Event{
		Type:     domain.EventOrderCreated,
		EntityID: order.ID,
		Payload: map[string]any{
			"order_table_id": order.OrderTableID,
			"order_status":   order.OrderStatus.String(),
		},
	})
	return order, nil
}

func (svc *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := svc.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		out, err = s.Orders().FindAll(ctx)
		return err
	})
	return out, err
}

func (svc *OrderService) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	var out domain.Order
	err := svc.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		out, err = s.Orders().FindByID(ctx, orderID)
		return err
	})
	return out, err
}

// ChangeOrderStatus moves an order to any status unless it is already
// COMPLETION.
func (svc *OrderService) ChangeOrderStatus(ctx context.Context, orderID int64, req ChangeOrderStatusRequest) (domain.Order, error) {
	next, err := domain.ParseOrderStatus(req.OrderStatus)
	if err != nil {
		return domain.Order{}, err
	}

	var (
		order domain.Order
		prev  domain.OrderStatus
	)
	err = svc.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		o, err := s.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		prev = o.OrderStatus
		if err := o.ChangeStatus(next); err != nil {
			return err
		}
		if err := s.Orders().UpdateStatus(ctx, o.ID, o.OrderStatus); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	svc.deps.Log.Info("order_status_changed", map[string]any{
		"order_id": order.ID,
		"from":     prev.String(),
		"to":       order.OrderStatus.String(),
	})
	events.Emit(ctx, svc.deps.Events, svc.deps.Log, domain.Event{
		Type:     domain.EventOrderStatusChanged,
		EntityID: order.ID,
		Payload: map[string]any{
			"order_table_id": order.OrderTableID,
			"from":           prev.String(),
			"to":             order.OrderStatus.String(),
		},
	})
	return order, nil
}
