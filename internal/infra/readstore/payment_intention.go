package readstore

import (
	"context"

	"payment-intention-service/internal/infra"
	"payment-intention-service/internal/infra/db"
	"payment-intention-service/internal/pkg/pgconv"
	"payment-intention-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const getPaymentIntentionViewByIDSQL = `
	SELECT id, payer_id, receiver_id, description, value, created_at, updated_at
	FROM payment_intentions
	WHERE id = $1`

type PaymentIntentionReadStore struct {
	db db.DBTX
}

func NewPaymentIntentionReadStore(dbtx db.DBTX) *PaymentIntentionReadStore {
	return &PaymentIntentionReadStore{db: dbtx}
}

func (r *PaymentIntentionReadStore) FindByID(ctx context.Context, id string) (*queries.PaymentIntentionView, error) {
	var (
		view        queries.PaymentIntentionView
		description pgtype.Text
		value       pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getPaymentIntentionViewByIDSQL, id).
		Scan(&view.ID, &view.PayerID, &view.ReceiverID, &description, &value, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment intention not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment intention view by id", err)
	}

	amount, err := pgconv.DecimalFromNumeric(value)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment intention value", err, infra.KindDBFailure)
	}
	view.Description = pgconv.StringPtrFromPgtype(description)
	view.Value = amount
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
