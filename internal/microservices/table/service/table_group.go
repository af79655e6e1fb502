package service

import (
	"context"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
)

type TableRef struct {
	ID int64 `json:"id"`
}

type CreateTableGroupRequest struct {
	OrderTables []TableRef `json:"orderTables"`
}

func (r CreateTableGroupRequest) TableIDs() []int64 {
	ids := make([]int64, len(r.OrderTables))
	for i, ref := range r.OrderTables {
		ids[i] = ref.ID
	}
	return ids
}

type TableGroupServiceInterface interface {
	Group(ctx context.Context, req CreateTableGroupRequest) (domain.TableGroup, error)
	Ungroup(ctx context.Context, groupID int64) error
}

type TableGroupService struct {
	deps Deps
}

func NewTableGroupService(d Deps) TableGroupServiceInterface {
	return &TableGroupService{deps: d}
}

// Group combines empty, ungrouped tables. Every member ends up occupied and
// pointing at the new group.
func (gs *TableGroupService) Group(ctx context.Context, req CreateTableGroupRequest) (domain.TableGroup, error) {
	ids := req.TableIDs()
	if err := domain.ValidateGroupRequest(ids); err != nil {
		return domain.TableGroup{}, err
	}

	var group domain.TableGroup
	err := gs.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		n, err := s.OrderTables().CountMatching(ctx, ids)
		if err != nil {
			return err
		}
		if n != len(ids) {
			return domain.NotFoundf("%d of %d requested tables do not exist", len(ids)-n, len(ids))
		}
		tables, err := s.OrderTables().FindAllByIDs(ctx, ids)
		if err != nil {
			return err
		}

		g, err := domain.NewTableGroup(tables, gs.deps.Now().UTC())
		if err != nil {
			return err
		}
		saved, err := s.TableGroups().Save(ctx, g)
		if err != nil {
			return err
		}
		g.AssignID(saved.ID)
		for _, t := range g.OrderTables {
			if err := s.OrderTables().Update(ctx, t); err != nil {
				return err
			}
		}
		group = g
		return nil
	})
	if err != nil {
		return domain.TableGroup{}, err
	}

	gs.deps.Log.Info("table_group_created", map[string]any{"table_group_id": group.ID, "table_ids": group.TableIDs()})
	events.Emit(ctx, gs.deps.Events, gs.deps.Log, domain.Event{
		Type:     domain.EventTableGroupCreated,
		EntityID: group.ID,
		Payload:  map[string]any{"table_ids": group.TableIDs()},
	})
	return group, nil
}

// Ungroup releases every member of the group. Occupancy and guest counts are
// left as they are.
func (gs *TableGroupService) Ungroup(ctx context.Context, groupID int64) error {
	var members []int64
	err := gs.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		g, err := s.TableGroups().FindByID(ctx, groupID)
		if err != nil {
			return err
		}
		if len(g.OrderTables) == 0 {
			return domain.NotFoundf("table group %d has no member tables", groupID)
		}
		members = g.TableIDs()

		active, err := s.Orders().ExistsByTableIDsAndStatusIn(ctx, members, domain.ActiveStatuses)
		if err != nil {
			return err
		}
		if active {
			return domain.Conflictf("table group %d has orders that are cooking or being eaten", groupID)
		}

		for _, t := range g.OrderTables {
			t.LeaveGroup()
			if err := s.OrderTables().Update(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	gs.deps.Log.Info("table_group_ungrouped", map[string]any{"table_group_id": groupID, "table_ids": members})
	events.Emit(ctx, gs.deps.Events, gs.deps.Log, domain.Event{
		Type:     domain.EventTableGroupUngrouped,
		EntityID: groupID,
		Payload:  map[string]any{"table_ids": members},
	})
	return nil
}
