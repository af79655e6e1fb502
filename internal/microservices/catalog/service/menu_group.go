package service

import (
	"context"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
)

type CreateMenuGroupRequest struct {
	Name string `json:"name"`
}

type MenuGroupServiceInterface interface {
	CreateMenuGroup(ctx context.Context, req CreateMenuGroupRequest) (domain.MenuGroup, error)
	ListMenuGroups(ctx context.Context) ([]domain.MenuGroup, error)
}

type MenuGroupService struct {
	deps Deps
}

func NewMenuGroupService(d Deps) MenuGroupServiceInterface {
	return &MenuGroupService{deps: d}
}

func (gs *MenuGroupService) CreateMenuGroup(ctx context.Context, req CreateMenuGroupRequest) (domain.MenuGroup, error) {
	g, err := domain.NewMenuGroup(req.Name)
	if err != nil {
		return domain.MenuGroup{}, err
	}
	err = gs.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		g, err = s.MenuGroups().Save(ctx, g)
		return err
	})
	if err != nil {
		return domain.MenuGroup{}, err
	}

	gs.deps.Log.Info("menu_group_created", map[string]any{"menu_group_id": g.ID})
	events.Emit(ctx, gs.deps.Events, gs.deps.Log, domain.Event{
		Type:     domain.EventMenuGroupCreated,
		EntityID: g.ID,
		Payload:  map[string]any{"name": g.Name},
	})
	return g, nil
}

func (gs *MenuGroupService) ListMenuGroups(ctx context.Context) ([]domain.MenuGroup, error) {
	var out []domain.MenuGroup
	err := gs.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		out, err = s.MenuGroups().FindAll(ctx)
		return err
	})
	return out, err
}
