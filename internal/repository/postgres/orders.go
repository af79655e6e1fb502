package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"kitchen-pos/internal/domain"
)

type OrderRepository struct{ q querier }

func (r *OrderRepository) Save(ctx context.Context, o domain.Order) (domain.Order, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders (order_table_id, order_status, ordered_time) VALUES ($1, $2, $3)
		RETURNING id`, o.OrderTableID, o.OrderStatus.String(), o.OrderedTime).Scan(&o.ID)
	if err != nil {
		return domain.Order{}, errors.Wrap(err, "failed to insert order")
	}

	items := make([]domain.OrderLineItem, len(o.OrderLineItems))
	for i, item := range o.OrderLineItems {
		item.OrderID = o.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO order_line_item (order_id, menu_id, quantity) VALUES ($1, $2, $3)
			RETURNING seq`, item.OrderID, item.MenuID, item.Quantity).Scan(&item.Seq)
		if err != nil {
			return domain.Order{}, errors.Wrapf(err, "failed to insert order line item for menu %d", item.MenuID)
		}
		items[i] = item
	}
	o.OrderLineItems = items
	return o, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	orders, err := r.list(ctx, `SELECT id, order_table_id, order_status, ordered_time FROM orders WHERE id = $1`, id)
	if err != nil {
		return domain.Order{}, err
	}
	if len(orders) == 0 {
		return domain.Order{}, domain.NotFoundf("order %d not found", id)
	}
	return orders[0], nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, `SELECT id, order_table_id, order_status, ordered_time FROM orders ORDER BY id`)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET order_status = $1 WHERE id = $2`, status.String(), id)
	if err != nil {
		return errors.Wrapf(err, "failed to update status of order %d", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("order %d not found", id)
	}
	return nil
}

func (r *OrderRepository) ExistsByTableIDsAndStatusIn(ctx context.Context, tableIDs []int64, statuses []domain.OrderStatus) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM orders WHERE order_table_id = ANY($1) AND order_status = ANY($2)
		)`, tableIDs, statusLabels(statuses)).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "failed to check active orders")
	}
	return exists, nil
}

func (r *OrderRepository) list(ctx context.Context, sql string, args ...any) ([]domain.Order, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders")
	}
	var (
		orders []domain.Order
		ids    []int64
	)
	for rows.Next() {
		var (
			o      domain.Order
			status string
			at     time.Time
		)
		if err := rows.Scan(&o.ID, &o.OrderTableID, &status, &at); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "failed to scan order")
		}
		if o.OrderStatus, err = domain.ParseOrderStatus(status); err != nil {
			rows.Close()
			return nil, errors.Wrapf(err, "order %d", o.ID)
		}
		o.OrderedTime = at.UTC()
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read orders")
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.lineItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].OrderLineItems = items[orders[i].ID]
	}
	return orders, nil
}

func (r *OrderRepository) lineItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderLineItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT seq, order_id, menu_id, quantity
		FROM order_line_item WHERE order_id = ANY($1)
		ORDER BY order_id, seq`, orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query order line items")
	}
	defer rows.Close()

	out := make(map[int64][]domain.OrderLineItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderLineItem
		if err := rows.Scan(&item.Seq, &item.OrderID, &item.MenuID, &item.Quantity); err != nil {
			return nil, errors.Wrap(err, "failed to scan order line item")
		}
		out[item.OrderID] = append(out[item.OrderID], item)
	}
	return out, rows.Err()
}

func statusLabels(statuses []domain.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
