package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"payment-intention-service/internal/infra/db"
	"payment-intention-service/internal/infra/repository"
	"payment-intention-service/internal/pkg/errs"
	"payment-intention-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, retry: defaultRetryPolicy}
}

// ReadCommitted is enough here: the payer advisory lock serializes the count and insert.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return repository.NewPaymentIntentionRepository(u.pool)
}

func (u *PostgresUoW) run(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt >= u.retry.maxRetries {
			slog.ErrorContext(ctx, "transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt runs fn in a single transaction; the rollback is a no-op after a successful commit.
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.base
	return wait + time.Duration(cryptoRandInt63n(int64(wait/5)))
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	paymentIntentionRepo shared.PaymentIntentionRepository
}

func (t *pgTx) PaymentIntentions() shared.PaymentIntentionRepository {
	if t.paymentIntentionRepo == nil {
		t.paymentIntentionRepo = repository.NewPaymentIntentionRepository(t.dbtx)
	}
	return t.paymentIntentionRepo
}
