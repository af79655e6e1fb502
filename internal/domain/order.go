package domain

import (
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus int

const (
	StatusCooking OrderStatus = iota + 1
	StatusMeal
	StatusCompletion
)

var orderStatusNames = map[OrderStatus]string{
	StatusCooking:    "COOKING",
	StatusMeal:       "MEAL",
	StatusCompletion: "COMPLETION",
}

// ActiveStatuses are the states that block table and group mutations.
var ActiveStatuses = []OrderStatus{StatusCooking, StatusMeal}

// ParseOrderStatus maps a wire label to a status. Unknown labels are
// validation errors.
func ParseOrderStatus(s string) (OrderStatus, error) {
	label := strings.ToUpper(strings.TrimSpace(s))
	for st, name := range orderStatusNames {
		if name == label {
			return st, nil
		}
	}
	return 0, Validationf("unknown order status %q", s)
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusNames[s]
	return ok
}

// Active reports whether an order in this state is still being served.
func (s OrderStatus) Active() bool {
	return s == StatusCooking || s == StatusMeal
}

// Terminal reports whether the state has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompletion
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, Validationf("unknown order status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *OrderStatus) UnmarshalText(b []byte) error {
	st, err := ParseOrderStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// OrderLine is a requested (menu, quantity) pair.
type OrderLine struct {
	MenuID   int64 `json:"menuId"`
	Quantity int64 `json:"quantity"`
}

type OrderLineItem struct {
	Seq      int64 `json:"seq"`
	OrderID  int64 `json:"orderId"`
	MenuID   int64 `json:"menuId"`
	Quantity int64 `json:"quantity"`
}

type Order struct {
	ID             int64           `json:"id"`
	OrderTableID   int64           `json:"orderTableId"`
	OrderStatus    OrderStatus     `json:"orderStatus"`
	OrderedTime    time.Time       `json:"orderedTime"`
	OrderLineItems []OrderLineItem `json:"orderLineItems"`
}

// ValidateOrderLines checks that lines is non-empty, that quantities are
// positive and that every referenced menu is known. knownMenus holds the ids
// that exist; any miss rejects the whole order.
func ValidateOrderLines(lines []OrderLine, knownMenus map[int64]bool) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	for i, line := range lines {
		if line.Quantity < 1 {
			return Validationf("orderLineItems[%d].quantity must be positive", i)
		}
	}
	for _, line := range lines {
		if !knownMenus[line.MenuID] {
			return Referencef("unknown menu %d", line.MenuID)
		}
	}
	return nil
}

// DistinctMenuIDs returns the referenced menu ids in first-seen order.
func DistinctMenuIDs(lines []OrderLine) []int64 {
	seen := make(map[int64]bool, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if !seen[l.MenuID] {
			seen[l.MenuID] = true
			ids = append(ids, l.MenuID)
		}
	}
	return ids
}

// PlaceOrder creates an order in COOKING for table. The table must be occupied.
func PlaceOrder(table OrderTable, lines []OrderLine, now time.Time) (Order, error) {
	if err := table.AcceptsOrders(); err != nil {
		return Order{}, err
	}
	items := make([]OrderLineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderLineItem{MenuID: l.MenuID, Quantity: l.Quantity})
	}
	return Order{
		OrderTableID:   table.ID,
		OrderStatus:    StatusCooking,
		OrderedTime:    now,
		OrderLineItems: items,
	}, nil
}

// ChangeStatus overwrites the status. A completed order accepts no further
// transitions.
func (o *Order) ChangeStatus(next OrderStatus) error {
	if !next.Valid() {
		return Validationf("unknown order status %d", int(next))
	}
	if o.OrderStatus.Terminal() {
		return Conflictf("order %d already completed", o.ID)
	}
	o.OrderStatus = next
	return nil
}
