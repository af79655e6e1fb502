// Package postgres implements the POS repositories on PostgreSQL via pgx.
package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"kitchen-pos/internal/domain"
)

// querier is the part of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// InTx runs fn in a SERIALIZABLE transaction. Serialization failures reach
// the caller as the error of fn or of the commit; nothing is retried here.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, st domain.Store) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, view{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

type view struct{ q querier }

func (v view) Products() domain.ProductRepository       { return &ProductRepository{q: v.q} }
func (v view) MenuGroups() domain.MenuGroupRepository   { return &MenuGroupRepository{q: v.q} }
func (v view) Menus() domain.MenuRepository             { return &MenuRepository{q: v.q} }
func (v view) Orders() domain.OrderRepository           { return &OrderRepository{q: v.q} }
func (v view) OrderTables() domain.OrderTableRepository { return &OrderTableRepository{q: v.q} }
func (v view) TableGroups() domain.TableGroupRepository { return &TableGroupRepository{q: v.q} }

func scanMoney(s string) (domain.Money, error) {
	m, err := domain.NewMoney(s)
	if err != nil {
		return domain.Money{}, errors.Wrapf(err, "stored amount %q", s)
	}
	return m, nil
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFoundf(format, args...)
	}
	return errors.Wrapf(err, format, args...)
}
