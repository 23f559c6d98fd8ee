package queries

import (
	"context"
	"time"

	"payment-intention-service/internal/infra"
	"payment-intention-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentIntentionNotFound    = errs.New("payment intention not found")
	ErrPaymentIntentionQueryFailed = errs.New("payment intention query failed")
)

type PaymentIntentionView struct {
	ID          string          `json:"id"`
	PayerID     int64           `json:"payer_id"`
	ReceiverID  int64           `json:"receiver_id"`
	Description *string         `json:"description,omitempty"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PaymentIntentionReadStore interface {
	FindByID(ctx context.Context, id string) (*PaymentIntentionView, error)
}

type PaymentIntentionQueries interface {
	GetByID(ctx context.Context, id string) (*PaymentIntentionView, error)
}

type paymentIntentionQueriesImpl struct {
	store PaymentIntentionReadStore
}

func NewPaymentIntentionQueries(store PaymentIntentionReadStore) PaymentIntentionQueries {
	return &paymentIntentionQueriesImpl{store: store}
}

func (q *paymentIntentionQueriesImpl) GetByID(ctx context.Context, id string) (*PaymentIntentionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentIntentionNotFound
		}
		return nil, errs.Mark(err, ErrPaymentIntentionQueryFailed)
	}
	return view, nil
}
