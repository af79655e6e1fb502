package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"kitchen-pos/internal/domain"
)

const tableColumns = `id, table_group_id, number_of_guests, empty`

type OrderTableRepository struct{ q querier }

func (r *OrderTableRepository) Save(ctx context.Context, t domain.OrderTable) (domain.OrderTable, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO order_table (table_group_id, number_of_guests, empty) VALUES ($1, $2, $3)
		RETURNING id`, t.TableGroupID, t.NumberOfGuests, t.Empty).Scan(&t.ID)
	if err != nil {
		return domain.OrderTable{}, errors.Wrap(err, "failed to insert table")
	}
	return t, nil
}

func (r *OrderTableRepository) Update(ctx context.Context, t domain.OrderTable) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE order_table SET table_group_id = $1, number_of_guests = $2, empty = $3
		WHERE id = $4`, t.TableGroupID, t.NumberOfGuests, t.Empty, t.ID)
	if err != nil {
		return errors.Wrapf(err, "failed to update table %d", t.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("table %d not found", t.ID)
	}
	return nil
}

func (r *OrderTableRepository) FindByID(ctx context.Context, id int64) (domain.OrderTable, error) {
	var t domain.OrderTable
	err := r.q.QueryRow(ctx, `SELECT `+tableColumns+` FROM order_table WHERE id = $1`, id).
		Scan(&t.ID, &t.TableGroupID, &t.NumberOfGuests, &t.Empty)
	if err != nil {
		return domain.OrderTable{}, notFound(err, "table %d not found", id)
	}
	return t, nil
}

func (r *OrderTableRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]domain.OrderTable, error) {
	return r.list(ctx, `SELECT `+tableColumns+` FROM order_table WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *OrderTableRepository) FindAllByTableGroupID(ctx context.Context, groupID int64) ([]domain.OrderTable, error) {
	return r.list(ctx, `SELECT `+tableColumns+` FROM order_table WHERE table_group_id = $1 ORDER BY id`, groupID)
}

func (r *OrderTableRepository) FindAll(ctx context.Context) ([]domain.OrderTable, error) {
	return r.list(ctx, `SELECT `+tableColumns+` FROM order_table ORDER BY id`)
}

func (r *OrderTableRepository) CountMatching(ctx context.Context, ids []int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM order_table WHERE id = ANY($1)`, ids).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count tables")
	}
	return n, nil
}

func (r *OrderTableRepository) list(ctx context.Context, sql string, args ...any) ([]domain.OrderTable, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query tables")
	}
	defer rows.Close()

	var out []domain.OrderTable
	for rows.Next() {
		var t domain.OrderTable
		if err := rows.Scan(&t.ID, &t.TableGroupID, &t.NumberOfGuests, &t.Empty); err != nil {
			return nil, errors.Wrap(err, "failed to scan table")
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type TableGroupRepository struct{ q querier }

// Save writes the group header. Members are linked by updating their
// table_group_id separately.
func (r *TableGroupRepository) Save(ctx context.Context, g domain.TableGroup) (domain.TableGroup, error) {
	err := r.q.QueryRow(ctx, `INSERT INTO table_group (created_date) VALUES ($1) RETURNING id`, g.CreatedDate).Scan(&g.ID)
	if err != nil {
		return domain.TableGroup{}, errors.Wrap(err, "failed to insert table group")
	}
	return g, nil
}

func (r *TableGroupRepository) FindByID(ctx context.Context, id int64) (domain.TableGroup, error) {
	var (
		g  domain.TableGroup
		at time.Time
	)
	err := r.q.QueryRow(ctx, `SELECT id, created_date FROM table_group WHERE id = $1`, id).Scan(&g.ID, &at)
	if err != nil {
		return domain.TableGroup{}, notFound(err, "table group %d not found", id)
	}
	g.CreatedDate = at.UTC()

	members, err := (&OrderTableRepository{q: r.q}).FindAllByTableGroupID(ctx, id)
	if err != nil {
		return domain.TableGroup{}, err
	}
	g.OrderTables = members
	return g, nil
}
