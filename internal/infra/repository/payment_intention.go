package repository

import (
	"context"
	"time"

	"payment-intention-service/internal/domain/payment"
	"payment-intention-service/internal/infra"
	"payment-intention-service/internal/infra/db"
	"payment-intention-service/internal/pkg/pgconv"
)

const (
	lockPayerSQL = `SELECT pg_advisory_xact_lock($1)`

	countByPayerInWindowSQL = `
		SELECT COUNT(*)
		FROM payment_intentions
		WHERE payer_id = $1
		  AND created_at BETWEEN $2 AND $3`

	intentionExistsSQL = `SELECT EXISTS (SELECT 1 FROM payment_intentions WHERE id = $1)`

	insertPaymentIntentionSQL = `
		INSERT INTO payment_intentions (id, payer_id, receiver_id, description, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`
)

type PaymentIntentionRepository struct {
	db db.DBTX
}

func NewPaymentIntentionRepository(dbtx db.DBTX) *PaymentIntentionRepository {
	return &PaymentIntentionRepository{db: dbtx}
}

// LockPayer only holds while dbtx is a transaction.
func (r *PaymentIntentionRepository) LockPayer(ctx context.Context, payerID int64) error {
	if _, err := r.db.Exec(ctx, lockPayerSQL, payerID); err != nil {
		return infra.WrapRepoErr("failed to lock payer", err)
	}
	return nil
}

func (r *PaymentIntentionRepository) CountByPayerInWindow(ctx context.Context, payerID int64, start, end time.Time) (int, error) {
	var count int64
	err := r.db.QueryRow(ctx, countByPayerInWindowSQL, payerID, start, end).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count payment intentions", err, infra.KindDBFailure)
	}
	return int(count), nil
}

func (r *PaymentIntentionRepository) IntentionExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, intentionExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to look up payment intention", err, infra.KindDBFailure)
	}
	return exists, nil
}

func (r *PaymentIntentionRepository) Insert(ctx context.Context, pi *payment.PaymentIntention) error {
	tag, err := r.db.Exec(ctx, insertPaymentIntentionSQL,
		pi.ID(),
		pi.PayerID(),
		pi.ReceiverID(),
		pgconv.StringPtrToPgtype(pi.Description()),
		pgconv.DecimalToNumeric(pi.Value().Decimal()),
		pgconv.TimeToPgtype(pi.CreatedAt()),
		pgconv.TimeToPgtype(pi.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert payment intention", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindDuplicateKey, "payment intention id already exists")
	}
	return nil
}
