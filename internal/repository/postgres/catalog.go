package postgres

import (
	"context"

	"github.com/cockroachdb/errors"

	"kitchen-pos/internal/domain"
)

type ProductRepository struct{ q querier }

func (r *ProductRepository) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO product (name, price) VALUES ($1, $2::text::numeric)
		RETURNING id`, p.Name, p.Price.String()).Scan(&p.ID)
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "failed to insert product")
	}
	return p, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	var (
		p     domain.Product
		price string
	)
	err := r.q.QueryRow(ctx, `SELECT id, name, price::text FROM product WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &price)
	if err != nil {
		return domain.Product{}, notFound(err, "product %d not found", id)
	}
	if p.Price, err = scanMoney(price); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return r.list(ctx, `SELECT id, name, price::text FROM product WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT id, name, price::text FROM product ORDER BY id`)
}

func (r *ProductRepository) list(ctx context.Context, sql string, args ...any) ([]domain.Product, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query products")
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var (
			p     domain.Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name, &price); err != nil {
			return nil, errors.Wrap(err, "failed to scan product")
		}
		if p.Price, err = scanMoney(price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type MenuGroupRepository struct{ q querier }

func (r *MenuGroupRepository) Save(ctx context.Context, g domain.MenuGroup) (domain.MenuGroup, error) {
	if err := r.q.QueryRow(ctx, `INSERT INTO menu_group (name) VALUES ($1) RETURNING id`, g.Name).Scan(&g.ID); err != nil {
		return domain.MenuGroup{}, errors.Wrap(err, "failed to insert menu group")
	}
	return g, nil
}

func (r *MenuGroupRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM menu_group WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "failed to check menu group")
	}
	return exists, nil
}

func (r *MenuGroupRepository) FindAll(ctx context.Context) ([]domain.MenuGroup, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM menu_group ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query menu groups")
	}
	defer rows.Close()

	var out []domain.MenuGroup
	for rows.Next() {
		var g domain.MenuGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, errors.Wrap(err, "failed to scan menu group")
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

type MenuRepository struct{ q querier }

// Save inserts the menu and its line items. The snapshotted unit price is
// stored on menu_product and never joined back to product.
func (r *MenuRepository) Save(ctx context.Context, m domain.Menu) (domain.Menu, error) {
	err := r.q.QueryRow(ctx, `
		INSERT INTO menu (name, price, menu_group_id) VALUES ($1, $2::text::numeric, $3)
		RETURNING id`, m.Name, m.Price.String(), m.MenuGroupID).Scan(&m.ID)
	if err != nil {
		return domain.Menu{}, errors.Wrap(err, "failed to insert menu")
	}

	items := make([]domain.MenuProduct, len(m.MenuProducts))
	for i, mp := range m.MenuProducts {
		mp.MenuID = m.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO menu_product (menu_id, product_id, quantity, price) VALUES ($1, $2, $3, $4::text::numeric)
			RETURNING seq`, mp.MenuID, mp.ProductID, mp.Quantity, mp.Price.String()).Scan(&mp.Seq)
		if err != nil {
			return domain.Menu{}, errors.Wrapf(err, "failed to insert menu product %d", mp.ProductID)
		}
		items[i] = mp
	}
	m.MenuProducts = items
	return m, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id int64) (domain.Menu, error) {
	menus, err := r.list(ctx, `SELECT id, name, price::text, menu_group_id FROM menu WHERE id = $1`, id)
	if err != nil {
		return domain.Menu{}, err
	}
	if len(menus) == 0 {
		return domain.Menu{}, domain.NotFoundf("menu %d not found", id)
	}
	return menus[0], nil
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]domain.Menu, error) {
	return r.list(ctx, `SELECT id, name, price::text, menu_group_id FROM menu ORDER BY id`)
}

func (r *MenuRepository) FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM menu WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query menu ids")
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan menu id")
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *MenuRepository) list(ctx context.Context, sql string, args ...any) ([]domain.Menu, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query menus")
	}
	var (
		menus []domain.Menu
		ids   []int64
	)
	for rows.Next() {
		var (
			m     domain.Menu
			price string
		)
		if err := rows.Scan(&m.ID, &m.Name, &price, &m.MenuGroupID); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "failed to scan menu")
		}
		if m.Price, err = scanMoney(price); err != nil {
			rows.Close()
			return nil, err
		}
		menus = append(menus, m)
		ids = append(ids, m.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read menus")
	}
	if len(menus) == 0 {
		return menus, nil
	}

	items, err := r.menuProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range menus {
		menus[i].MenuProducts = items[menus[i].ID]
	}
	return menus, nil
}

func (r *MenuRepository) menuProducts(ctx context.Context, menuIDs []int64) (map[int64][]domain.MenuProduct, error) {
	rows, err := r.q.Query(ctx, `
		SELECT seq, menu_id, product_id, quantity, price::text
		FROM menu_product WHERE menu_id = ANY($1)
		ORDER BY menu_id, seq`, menuIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query menu products")
	}
	defer rows.Close()

	out := make(map[int64][]domain.MenuProduct, len(menuIDs))
	for rows.Next() {
		var (
			mp    domain.MenuProduct
			price string
		)
		if err := rows.Scan(&mp.Seq, &mp.MenuID, &mp.ProductID, &mp.Quantity, &price); err != nil {
			return nil, errors.Wrap(err, "failed to scan menu product")
		}
		if mp.Price, err = scanMoney(price); err != nil {
			return nil, err
		}
		out[mp.MenuID] = append(out[mp.MenuID], mp)
	}
	return out, rows.Err()
}
