package domain

import "strings"

// MenuLine is a requested (product, quantity) pair before pricing.
type MenuLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// MenuProduct is a menu line item. Price is the product's unit price copied
// when the menu was created; later catalog changes never reach it.
type MenuProduct struct {
	Seq       int64 `json:"seq"`
	MenuID    int64 `json:"menuId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
	Price     Money `json:"price"`
}

// Amount is quantity times the snapshotted unit price.
func (mp MenuProduct) Amount() Money {
	return mp.Price.Times(mp.Quantity)
}

type Menu struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Price        Money         `json:"price"`
	MenuGroupID  int64         `json:"menuGroupId"`
	MenuProducts []MenuProduct `json:"menuProducts"`
}

// ComponentTotal sums the snapshotted line amounts.
func (m Menu) ComponentTotal() Money {
	return sumMenuProducts(m.MenuProducts)
}

// ValidateMenuPrice resolves every line against catalog, snapshots the
// product prices and accepts price only when it does not exceed the sum of
// the snapshotted line amounts. The returned line items carry the snapshot.
func ValidateMenuPrice(price Money, lines []MenuLine, catalog map[int64]Product) ([]MenuProduct, error) {
	if price.IsNegative() {
		return nil, Validationf("menu price must not be negative, got %s", price)
	}

	items := make([]MenuProduct, 0, len(lines))
	for i, line := range lines {
		if line.Quantity < 0 {
			return nil, Validationf("menuProducts[%d].quantity must not be negative", i)
		}
		product, ok := catalog[line.ProductID]
		if !ok {
			return nil, Referencef("unknown product %d", line.ProductID)
		}
		items = append(items, MenuProduct{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	total := sumMenuProducts(items)
	if price.Cmp(total) > 0 {
		return nil, Validationf("menu price %s exceeds the sum of its products %s", price, total)
	}
	return items, nil
}

// NewMenu builds a menu from already validated line items.
func NewMenu(name string, price Money, menuGroupID int64, items []MenuProduct) (Menu, error) {
	if strings.TrimSpace(name) == "" {
		return Menu{}, Validationf("menu name is required")
	}
	return Menu{
		Name:         name,
		Price:        price,
		MenuGroupID:  menuGroupID,
		MenuProducts: items,
	}, nil
}

func sumMenuProducts(items []MenuProduct) Money {
	total := MoneyFromInt(0)
	for _, it := range items {
		total = total.Add(it.Amount())
	}
	return total
}
