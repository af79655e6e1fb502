package memory

import (
	"context"

	"kitchen-pos/internal/domain"
)

type productRepo view

func (r productRepo) Save(_ context.Context, p domain.Product) (domain.Product, error) {
	p.ID = r.st.next("product")
	r.st.products[p.ID] = p
	return p, nil
}

func (r productRepo) FindByID(_ context.Context, id int64) (domain.Product, error) {
	p, ok := r.st.products[id]
	if !ok {
		return domain.Product{}, domain.NotFoundf("product %d not found", id)
	}
	return p, nil
}

func (r productRepo) FindAllByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range uniq(ids) {
		if p, ok := r.st.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r productRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.st.products))
	for _, id := range sortedKeys(r.st.products) {
		out = append(out, r.st.products[id])
	}
	return out, nil
}

type menuGroupRepo view

func (r menuGroupRepo) Save(_ context.Context, g domain.MenuGroup) (domain.MenuGroup, error) {
	g.ID = r.st.next("menu_group")
	r.st.menuGroups[g.ID] = g
	return g, nil
}

func (r menuGroupRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.st.menuGroups[id]
	return ok, nil
}

func (r menuGroupRepo) FindAll(_ context.Context) ([]domain.MenuGroup, error) {
	out := make([]domain.MenuGroup, 0, len(r.st.menuGroups))
	for _, id := range sortedKeys(r.st.menuGroups) {
		out = append(out, r.st.menuGroups[id])
	}
	return out, nil
}

type menuRepo view

func (r menuRepo) Save(_ context.Context, m domain.Menu) (domain.Menu, error) {
	m = cloneMenu(m)
	m.ID = r.st.next("menu")
	for i := range m.MenuProducts {
		m.MenuProducts[i].Seq = r.st.next("menu_product")
		m.MenuProducts[i].MenuID = m.ID
	}
	r.st.menus[m.ID] = m
	return cloneMenu(m), nil
}

func (r menuRepo) FindByID(_ context.Context, id int64) (domain.Menu, error) {
	m, ok := r.st.menus[id]
	if !ok {
		return domain.Menu{}, domain.NotFoundf("menu %d not found", id)
	}
	return cloneMenu(m), nil
}

func (r menuRepo) FindAll(_ context.Context) ([]domain.Menu, error) {
	out := make([]domain.Menu, 0, len(r.st.menus))
	for _, id := range sortedKeys(r.st.menus) {
		out = append(out, cloneMenu(r.st.menus[id]))
	}
	return out, nil
}

func (r menuRepo) FindExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	for _, id := range uniq(ids) {
		if _, ok := r.st.menus[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

type orderRepo view

func (r orderRepo) Save(_ context.Context, o domain.Order) (domain.Order, error) {
	o = cloneOrder(o)
	o.ID = r.st.next("order")
	for i := range o.OrderLineItems {
		o.OrderLineItems[i].Seq = r.st.next("order_line_item")
		o.OrderLineItems[i].OrderID = o.ID
	}
	r.st.orders[o.ID] = o
	return cloneOrder(o), nil
}

func (r orderRepo) FindByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := r.st.orders[id]
	if !ok {
		return domain.Order{}, domain.NotFoundf("order %d not found", id)
	}
	return cloneOrder(o), nil
}

func (r orderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.st.orders))
	for _, id := range sortedKeys(r.st.orders) {
		out = append(out, cloneOrder(r.st.orders[id]))
	}
	return out, nil
}

func (r orderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	o, ok := r.st.orders[id]
	if !ok {
		return domain.NotFoundf("order %d not found", id)
	}
	o.OrderStatus = status
	r.st.orders[id] = o
	return nil
}

func (r orderRepo) ExistsByTableIDsAndStatusIn(_ context.Context, tableIDs []int64, statuses []domain.OrderStatus) (bool, error) {
	tables := make(map[int64]bool, len(tableIDs))
	for _, id := range tableIDs {
		tables[id] = true
	}
	for _, o := range r.st.orders {
		if !tables[o.OrderTableID] {
			continue
		}
		for _, s := range statuses {
			if o.OrderStatus == s {
				return true, nil
			}
		}
	}
	return false, nil
}

type tableRepo view

func (r tableRepo) Save(_ context.Context, t domain.OrderTable) (domain.OrderTable, error) {
	t = cloneTable(t)
	t.ID = r.st.next("order_table")
	r.st.tables[t.ID] = t
	return cloneTable(t), nil
}

func (r tableRepo) Update(_ context.Context, t domain.OrderTable) error {
	if _, ok := r.st.tables[t.ID]; !ok {
		return domain.NotFoundf("table %d not found", t.ID)
	}
	r.st.tables[t.ID] = cloneTable(t)
	return nil
}

func (r tableRepo) FindByID(_ context.Context, id int64) (domain.OrderTable, error) {
	t, ok := r.st.tables[id]
	if !ok {
		return domain.OrderTable{}, domain.NotFoundf("table %d not found", id)
	}
	return cloneTable(t), nil
}

func (r tableRepo) FindAllByIDs(_ context.Context, ids []int64) ([]domain.OrderTable, error) {
	out := make([]domain.OrderTable, 0, len(ids))
	for _, id := range uniq(ids) {
		if t, ok := r.st.tables[id]; ok {
			out = append(out, cloneTable(t))
		}
	}
	return out, nil
}

func (r tableRepo) FindAllByTableGroupID(_ context.Context, groupID int64) ([]domain.OrderTable, error) {
	var out []domain.OrderTable
	for _, id := range sortedKeys(r.st.tables) {
		t := r.st.tables[id]
		if t.TableGroupID != nil && *t.TableGroupID == groupID {
			out = append(out, cloneTable(t))
		}
	}
	return out, nil
}

func (r tableRepo) FindAll(_ context.Context) ([]domain.OrderTable, error) {
	out := make([]domain.OrderTable, 0, len(r.st.tables))
	for _, id := range sortedKeys(r.st.tables) {
		out = append(out, cloneTable(r.st.tables[id]))
	}
	return out, nil
}

func (r tableRepo) CountMatching(_ context.Context, ids []int64) (int, error) {
	n := 0
	for _, id := range uniq(ids) {
		if _, ok := r.st.tables[id]; ok {
			n++
		}
	}
	return n, nil
}

type tableGroupRepo view

// Save keeps the group header only; membership lives on the tables.
func (r tableGroupRepo) Save(_ context.Context, g domain.TableGroup) (domain.TableGroup, error) {
	g = cloneGroup(g)
	g.ID = r.st.next("table_group")
	r.st.tableGroups[g.ID] = domain.TableGroup{ID: g.ID, CreatedDate: g.CreatedDate}
	return g, nil
}

func (r tableGroupRepo) FindByID(_ context.Context, id int64) (domain.TableGroup, error) {
	g, ok := r.st.tableGroups[id]
	if !ok {
		return domain.TableGroup{}, domain.NotFoundf("table group %d not found", id)
	}
	members, _ := tableRepo(r).FindAllByTableGroupID(context.Background(), id)
	g.OrderTables = members
	return g, nil
}

func uniq(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
