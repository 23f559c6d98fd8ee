package response

import (
	"time"

	"payment-intention-service/internal/domain/payment"
	"payment-intention-service/internal/usecase/queries"
)

// RFC 3339 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type PaymentIntentionResponse struct {
	ID          string  `json:"id"`
	PayerID     int64   `json:"payer_id"`
	ReceiverID  int64   `json:"receiver_id"`
	Description *string `json:"description,omitempty"`
	Value       float64 `json:"value"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func FromPaymentIntention(pi *payment.PaymentIntention) *PaymentIntentionResponse {
	return &PaymentIntentionResponse{
		ID:          pi.ID(),
		PayerID:     pi.PayerID(),
		ReceiverID:  pi.ReceiverID(),
		Description: pi.Description(),
		Value:       pi.Value().Float64(),
		CreatedAt:   formatTimestamp(pi.CreatedAt()),
		UpdatedAt:   formatTimestamp(pi.UpdatedAt()),
	}
}

func FromPaymentIntentionView(v *queries.PaymentIntentionView) *PaymentIntentionResponse {
	return &PaymentIntentionResponse{
		ID:          v.ID,
		PayerID:     v.PayerID,
		ReceiverID:  v.ReceiverID,
		Description: v.Description,
		Value:       v.Value.InexactFloat64(),
		CreatedAt:   formatTimestamp(v.CreatedAt),
		UpdatedAt:   formatTimestamp(v.UpdatedAt),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
