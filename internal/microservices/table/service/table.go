package service

import (
	"context"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
)

type CreateTableRequest struct {
	NumberOfGuests int  `json:"numberOfGuests"`
	Empty          bool `json:"empty"`
}

type ChangeEmptyRequest struct {
	Empty bool `json:"empty"`
}

type ChangeNumberOfGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

type TableServiceInterface interface {
	CreateTable(ctx context.Context, req CreateTableRequest) (domain.OrderTable, error)
	ListTables(ctx context.Context) ([]domain.OrderTable, error)
	ChangeEmpty(ctx context.Context, tableID int64, req ChangeEmptyRequest) (domain.OrderTable, error)
	ChangeNumberOfGuests(ctx context.Context, tableID int64, req ChangeNumberOfGuestsRequest) (domain.OrderTable, error)
}

type TableService struct {
	deps Deps
}

func NewTableService(d Deps) TableServiceInterface {
	return &TableService{deps: d}
}

func (ts *TableService) CreateTable(ctx context.Context, req CreateTableRequest) (domain.OrderTable, error) {
	t, err := domain.NewOrderTable(req.NumberOfGuests, req.Empty)
	if err != nil {
		return domain.OrderTable{}, err
	}
	err = ts.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		t, err = s.OrderTables().Save(ctx, t)
		return err
	})
	if err != nil {
		return domain.OrderTable{}, err
	}

	ts.deps.Log.Info("table_created", map[string]any{"table_id": t.ID, "empty": t.Empty})
	events.Emit(ctx, ts.deps.Events, ts.deps.Log, domain.Event{
		Type:     domain.EventTableCreated,
		EntityID: t.ID,
		Payload:  map[string]any{"number_of_guests": t.NumberOfGuests, "empty": t.Empty},
	})
	return t, nil
}

func (ts *TableService) ListTables(ctx context.Context) ([]domain.OrderTable, error) {
	var out []domain.OrderTable
	err := ts.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		out, err = s.OrderTables().FindAll(ctx)
		return err
	})
	return out, err
}

// ChangeEmpty toggles occupancy of an ungrouped table with no COOKING or
// MEAL orders.
func (ts *TableService) ChangeEmpty(ctx context.Context, tableID int64, req ChangeEmptyRequest) (domain.OrderTable, error) {
	var t domain.OrderTable
	err := ts.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		if t, err = s.OrderTables().FindByID(ctx, tableID); err != nil {
			return err
		}
		active, err := s.Orders().ExistsByTableIDsAndStatusIn(ctx, []int64{t.ID}, domain.ActiveStatuses)
		if err != nil {
			return err
		}
		if err := t.ChangeEmpty(req.Empty, active); err != nil {
			return err
		}
		return s.OrderTables().Update(ctx, t)
	})
	if err != nil {
		return domain.OrderTable{}, err
	}

	ts.deps.Log.Info("table_empty_changed", map[string]any{"table_id": t.ID, "empty": t.Empty})
	events.Emit(ctx, ts.deps.Events, ts.deps.Log, domain.Event{
		Type:     domain.EventTableEmptyChanged,
		EntityID: t.ID,
		Payload:  map[string]any{"empty": t.Empty},
	})
	return t, nil
}

func (ts *TableService) ChangeNumberOfGuests(ctx context.Context, tableID int64, req ChangeNumberOfGuestsRequest) (domain.OrderTable, error) {
	if req.NumberOfGuests < 0 {
		return domain.OrderTable{}, domain.Validationf("number of guests must not be negative, got %d", req.NumberOfGuests)
	}

	var t domain.OrderTable
	err := ts.deps.Tx.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		if t, err = s.OrderTables().FindByID(ctx, tableID); err != nil {
			return err
		}
		if err := t.ChangeNumberOfGuests(req.NumberOfGuests); err != nil {
			return err
		}
		return s.OrderTables().Update(ctx, t)
	})
	if err != nil {
		return domain.OrderTable{}, err
	}

	ts.deps.Log.Info("table_guests_changed", map[string]any{"table_id": t.ID, "number_of_guests": t.NumberOfGuests})
	events.Emit(ctx, ts.deps.Events, ts.deps.Log, domain.Event{
		Type:     domain.EventTableGuestsChanged,
		EntityID: t.ID,
		Payload:  map[string]any{"number_of_guests": t.NumberOfGuests},
	})
	return t, nil
}
