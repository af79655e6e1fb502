package domain

import "strings"

// Product is a catalog entry. Its price is never updated after creation.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

func NewProduct(name string, price Money) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, Validationf("product name is required")
	}
	if price.IsNegative() {
		return Product{}, Validationf("product price must not be negative, got %s", price)
	}
	return Product{Name: name, Price: price}, nil
}

// MenuGroup categorizes menus.
type MenuGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewMenuGroup(name string) (MenuGroup, error) {
	if strings.TrimSpace(name) == "" {
		return MenuGroup{}, Validationf("menu group name is required")
	}
	return MenuGroup{Name: name}, nil
}
