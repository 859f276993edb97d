package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sales-api/internal/application/usecase"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

var _ usecase.SaleTxRunner = (*TxRunner)(nil)

const txMaxAttempts = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales ejecuta fn con un repo de ventas atado a la tx (lectura y escritura atómicas).
func (r *TxRunner) RunSales(ctx context.Context, fn func(repo repository.SaleRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewSaleRepository(tx))
	})
}

// run reintenta solo ante fallos de serialización; cualquier otro error se devuelve tal cual.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("transacción abortada tras %d intentos: %w", txMaxAttempts, err)
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
