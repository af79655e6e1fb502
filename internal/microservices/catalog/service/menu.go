package service

import (
	"context"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
)

type CreateMenuRequest struct {
	Name         string            `json:"name"`
	Price        *domain.Money     `json:"price"`
	MenuGroupID  int64             `json:"menuGroupId"`
	MenuProducts []domain.MenuLine `json:"menuProducts"`
}

type MenuServiceInterface interface {
	CreateMenu(ctx context.Context, req CreateMenuRequest) (domain.Menu, error)
	ListMenus(ctx context.Context) ([]domain.Menu, error)
}

type MenuService struct {
	deps Deps
}

func NewMenuService(d Deps) MenuServiceInterface {
	return &MenuService{deps: d}
}

// CreateMenu prices the menu against the catalog as it is inside the
// transaction and stores the unit prices it saw.
func (ms *MenuService) CreateMenu(ctx context.Context, req CreateMenuRequest) (domain.Menu, error) {
	if req.Price == nil {
		return domain.Menu{}, domain.Validationf("menu price is required")
	}
	if req.Price.IsNegative() {
		return domain.Menu{}, domain.Validationf("menu price must not be negative, got %s", *req.Price)
	}

	var menu domain.Menu
	err := ms.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		ok, err := s.MenuGroups().ExistsByID(ctx, req.MenuGroupID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.Referencef("unknown menu group %d", req.MenuGroupID)
		}

		products, err := s.Products().FindAllByIDs(ctx, productIDs(req.MenuProducts))
		if err != nil {
			return err
		}
		catalog := make(map[int64]domain.Product, len(products))
		for _, p := range products {
			catalog[p.ID] = p
		}

		items, err := domain.ValidateMenuPrice(*req.Price, req.MenuProducts, catalog)
		if err != nil {
			return err
		}
		m, err := domain.NewMenu(req.Name, *req.Price, req.MenuGroupID, items)
		if err != nil {
			return err
		}
		menu, err = s.Menus().Save(ctx, m)
		return err
	})
	if err != nil {
		return domain.Menu{}, err
	}

	ms.deps.Log.Info("menu_created", map[string]any{
		"menu_id":         menu.ID,
		"price":           menu.Price.String(),
		"component_total": menu.ComponentTotal().String(),
	})
	events.Emit(ctx, ms.deps.Events, ms.deps.Log, domain.Event{
		Type:     domain.EventMenuCreated,
		EntityID: menu.ID,
		Payload:  map[string]any{"name": menu.Name, "price": menu.Price.String(), "menu_group_id": menu.MenuGroupID},
	})
	return menu, nil
}

func (ms *MenuService) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	var out []domain.Menu
	err := ms.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		out, err = s.Menus().FindAll(ctx)
		return err
	})
	return out, err
}

func productIDs(lines []domain.MenuLine) []int64 {
	seen := make(map[int64]bool, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}
