package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appctx "github.com/jsamuelsen11/devflix-admin/internal/app/context"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/breaker"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork runs the request's staged actions inside one database
// transaction. Any failing action rolls the whole transaction back.
type UnitOfWork struct {
	pool    *pgxpool.Pool
	breaker *breaker.Breaker
}

// NewUnitOfWork creates a UnitOfWork over pool, guarded by b.
func NewUnitOfWork(pool *pgxpool.Pool, b *breaker.Breaker) *UnitOfWork {
	return &UnitOfWork{pool: pool, breaker: b}
}

// Commit opens a transaction, executes the staged actions in order and
// commits. Nothing is written if any action fails.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	rc, err := appctx.Require(ctx)
	if err != nil {
		return err
	}

	return u.breaker.Execute(ctx, "commit", func(ctx context.Context) (err error) {
		ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.pool)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() {
			if err != nil && tx.IsActive() {
				if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
					logging.FromContext(ctx).ErrorContext(ctx, "transaction rollback failed",
						slog.String("operation", "UnitOfWork.Commit"),
						slog.Any("error", rbErr),
					)
				}
			}
		}()

		pgxTx, ok := tx.Transaction().(pgx.Tx)
		if !ok {
			return errors.New("unexpected transaction type")
		}

		if err = rc.Commit(withTx(ctx, pgxTx)); err != nil {
			return err
		}

		if err = tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}
