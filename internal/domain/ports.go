package domain

import "context"

// ProductRepository stores the catalog. There is no update: products are
// immutable once saved.
type ProductRepository interface {
	Save(ctx context.Context, p Product) (Product, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindAllByIDs(ctx context.Context, ids []int64) ([]Product, error)
	FindAll(ctx context.Context) ([]Product, error)
}

type MenuGroupRepository interface {
	Save(ctx context.Context, g MenuGroup) (MenuGroup, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context) ([]MenuGroup, error)
}

// MenuRepository persists a menu together with its line items.
type MenuRepository interface {
	Save(ctx context.Context, m Menu) (Menu, error)
	FindByID(ctx context.Context, id int64) (Menu, error)
	FindAll(ctx context.Context) ([]Menu, error)
	// FindExistingIDs returns the subset of ids that name a stored menu.
	FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type OrderRepository interface {
	Save(ctx context.Context, o Order) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status OrderStatus) error
	ExistsByTableIDsAndStatusIn(ctx context.Context, tableIDs []int64, statuses []OrderStatus) (bool, error)
}

type OrderTableRepository interface {
	Save(ctx context.Context, t OrderTable) (OrderTable, error)
	Update(ctx context.Context, t OrderTable) error
	FindByID(ctx context.Context, id int64) (OrderTable, error)
	FindAllByIDs(ctx context.Context, ids []int64) ([]OrderTable, error)
	FindAllByTableGroupID(ctx context.Context, groupID int64) ([]OrderTable, error)
	FindAll(ctx context.Context) ([]OrderTable, error)
	// CountMatching returns how many of ids name a stored table.
	CountMatching(ctx context.Context, ids []int64) (int, error)
}

type TableGroupRepository interface {
	Save(ctx context.Context, g TableGroup) (TableGroup, error)
	FindByID(ctx context.Context, id int64) (TableGroup, error)
}

// Store is the set of collections one unit of work can see. FindByID
// implementations return an ErrNotFound-marked error for unknown ids.
type Store interface {
	Products() ProductRepository
	MenuGroups() MenuGroupRepository
	Menus() MenuRepository
	Orders() OrderRepository
	OrderTables() OrderTableRepository
	TableGroups() TableGroupRepository
}

// Transactor runs fn inside one transaction. If fn returns an error nothing
// fn wrote is kept. Conflicts detected by the storage surface as fn's error
// or the commit error, unchanged.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

// EventPublisher announces committed changes. Implementations must not
// block the caller for long; delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
