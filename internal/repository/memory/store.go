// Package memory keeps the POS collections in process memory. It backs the
// `memory` storage driver and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"kitchen-pos/internal/domain"
)

type state struct {
	products    map[int64]domain.Product
	menuGroups  map[int64]domain.MenuGroup
	menus       map[int64]domain.Menu
	orders      map[int64]domain.Order
	tables      map[int64]domain.OrderTable
	tableGroups map[int64]domain.TableGroup

	seq map[string]int64
}

func newState() *state {
	return &state{
		products:    map[int64]domain.Product{},
		menuGroups:  map[int64]domain.MenuGroup{},
		menus:       map[int64]domain.Menu{},
		orders:      map[int64]domain.Order{},
		tables:      map[int64]domain.OrderTable{},
		tableGroups: map[int64]domain.TableGroup{},
		seq:         map[string]int64{},
	}
}

func (s *state) next(name string) int64 {
	s.seq[name]++
	return s.seq[name]
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.menuGroups {
		c.menuGroups[k] = v
	}
	for k, v := range s.menus {
		c.menus[k] = cloneMenu(v)
	}
	for k, v := range s.orders {
		c.orders[k] = cloneOrder(v)
	}
	for k, v := range s.tables {
		c.tables[k] = cloneTable(v)
	}
	for k, v := range s.tableGroups {
		c.tableGroups[k] = cloneGroup(v)
	}
	for k, v := range s.seq {
		c.seq[k] = v
	}
	return c
}

// Store is an in-memory domain.Store and domain.Transactor. Transactions are
// serialized on one mutex; a transaction that fails or panics restores the
// state it saw on entry.
type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: newState()}
}

// InTx implements domain.Transactor.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, st domain.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.st = backup
		}
	}()
	if err := fn(ctx, view{st: s.st}); err != nil {
		return err
	}
	committed = true
	return nil
}

// view exposes one state snapshot as a domain.Store.
type view struct{ st *state }

func (v view) Products() domain.ProductRepository       { return productRepo(v) }
func (v view) MenuGroups() domain.MenuGroupRepository   { return menuGroupRepo(v) }
func (v view) Menus() domain.MenuRepository             { return menuRepo(v) }
func (v view) Orders() domain.OrderRepository           { return orderRepo(v) }
func (v view) OrderTables() domain.OrderTableRepository { return tableRepo(v) }
func (v view) TableGroups() domain.TableGroupRepository { return tableGroupRepo(v) }

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func cloneMenu(m domain.Menu) domain.Menu {
	m.MenuProducts = append([]domain.MenuProduct(nil), m.MenuProducts...)
	return m
}

func cloneOrder(o domain.Order) domain.Order {
	o.OrderLineItems = append([]domain.OrderLineItem(nil), o.OrderLineItems...)
	return o
}

func cloneTable(t domain.OrderTable) domain.OrderTable {
	if t.TableGroupID != nil {
		id := *t.TableGroupID
		t.TableGroupID = &id
	}
	return t
}

func cloneGroup(g domain.TableGroup) domain.TableGroup {
	members := make([]domain.OrderTable, len(g.OrderTables))
	for i, t := range g.OrderTables {
		members[i] = cloneTable(t)
	}
	g.OrderTables = members
	return g
}
