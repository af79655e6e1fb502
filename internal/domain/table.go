package domain

import "time"

// OrderTable is a seat of the restaurant. TableGroupID is a plain relation
// field; membership is resolved through the table repository, not through a
// pointer to the group.
type OrderTable struct {
	ID             int64  `json:"id"`
	TableGroupID   *int64 `json:"tableGroupId"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Empty          bool   `json:"empty"`
}

func NewOrderTable(numberOfGuests int, empty bool) (OrderTable, error) {
	if numberOfGuests < 0 {
		return OrderTable{}, Validationf("number of guests must not be negative, got %d", numberOfGuests)
	}
	return OrderTable{NumberOfGuests: numberOfGuests, Empty: empty}, nil
}

func (t OrderTable) Grouped() bool { return t.TableGroupID != nil }

// AcceptsOrders reports a conflict for an empty table.
func (t OrderTable) AcceptsOrders() error {
	if t.Empty {
		return Conflictf("table %d is empty and cannot take orders", t.ID)
	}
	return nil
}

// ChangeEmpty toggles occupancy. hasActiveOrders must report whether any of
// the table's orders is COOKING or MEAL.
func (t *OrderTable) ChangeEmpty(empty bool, hasActiveOrders bool) error {
	if t.Grouped() {
		return Conflictf("table %d belongs to table group %d; ungroup it first", t.ID, *t.TableGroupID)
	}
	if hasActiveOrders {
		return Conflictf("table %d has orders that are cooking or being eaten", t.ID)
	}
	t.Empty = empty
	return nil
}

func (t *OrderTable) ChangeNumberOfGuests(n int) error {
	if n < 0 {
		return Validationf("number of guests must not be negative, got %d", n)
	}
	if t.Empty {
		return Conflictf("table %d is empty; guests can only be seated at an occupied table", t.ID)
	}
	t.NumberOfGuests = n
	return nil
}

func (t *OrderTable) joinGroup(groupID int64) {
	id := groupID
	t.TableGroupID = &id
	t.Empty = false
}

// LeaveGroup clears the group reference. Occupancy and guests stay as they are.
func (t *OrderTable) LeaveGroup() {
	t.TableGroupID = nil
}

// TableGroup combines two or more tables into one occupancy unit.
type TableGroup struct {
	ID          int64        `json:"id"`
	CreatedDate time.Time    `json:"createdDate"`
	OrderTables []OrderTable `json:"orderTables"`
}

// MinGroupSize is the smallest number of tables a group may hold.
const MinGroupSize = 2

// ValidateGroupRequest checks the shape of a grouping request before any
// table is loaded.
func ValidateGroupRequest(tableIDs []int64) error {
	if len(tableIDs) < MinGroupSize {
		return Validationf("a table group needs at least %d tables, got %d", MinGroupSize, len(tableIDs))
	}
	seen := make(map[int64]bool, len(tableIDs))
	for _, id := range tableIDs {
		if seen[id] {
			return Validationf("table %d is listed more than once", id)
		}
		seen[id] = true
	}
	return nil
}

// NewTableGroup checks that every candidate is empty and ungrouped.
func NewTableGroup(tables []OrderTable, now time.Time) (TableGroup, error) {
	if len(tables) < MinGroupSize {
		return TableGroup{}, Validationf("a table group needs at least %d tables, got %d", MinGroupSize, len(tables))
	}
	for _, t := range tables {
		if t.Grouped() {
			return TableGroup{}, Conflictf("table %d already belongs to table group %d", t.ID, *t.TableGroupID)
		}
		if !t.Empty {
			return TableGroup{}, Conflictf("table %d is occupied and cannot be grouped", t.ID)
		}
	}
	members := make([]OrderTable, len(tables))
	copy(members, tables)
	return TableGroup{CreatedDate: now, OrderTables: members}, nil
}

// AssignID stamps the persisted id onto the group and all members. Members
// become occupied for as long as they stay in the group.
func (g *TableGroup) AssignID(id int64) {
	g.ID = id
	for i := range g.OrderTables {
		g.OrderTables[i].joinGroup(id)
	}
}

func (g TableGroup) TableIDs() []int64 {
	ids := make([]int64, 0, len(g.OrderTables))
	for _, t := range g.OrderTables {
		ids = append(ids, t.ID)
	}
	return ids
}
