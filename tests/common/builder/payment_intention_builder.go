//go:build unit || e2e

package builder

import (
	"time"

	"payment-intention-service/internal/domain/payment"
	reqdto "payment-intention-service/internal/handler/dto/request"
	"payment-intention-service/internal/usecase/commands"
	"payment-intention-service/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PaymentIntentionBuilder struct {
	ID          string
	PayerID     int64
	ReceiverID  int64
	Description *string
	Value       decimal.Decimal
	CreatedAt   time.Time
}

func NewPaymentIntentionBuilder() *PaymentIntentionBuilder {
	description := "dinner split"
	return &PaymentIntentionBuilder{
		ID:          "pi-0001",
		PayerID:     1,
		ReceiverID:  2,
		Description: &description,
		Value:       decimal.RequireFromString("150.25"),
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PaymentIntentionBuilder) With(mutate func(*PaymentIntentionBuilder)) *PaymentIntentionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PaymentIntentionBuilder) BuildDomain() *payment.PaymentIntention {
	return payment.NewPaymentIntention(b.ID, b.PayerID, b.ReceiverID, b.Description, payment.NewAmount(b.Value), b.CreatedAt)
}

func (b *PaymentIntentionBuilder) BuildCommand() commands.CreatePaymentIntentionRequest {
	id := b.ID
	return commands.CreatePaymentIntentionRequest{
		ID:          &id,
		PayerID:     b.PayerID,
		ReceiverID:  b.ReceiverID,
		Description: b.Description,
		Value:       payment.NewAmount(b.Value),
	}
}

func (b *PaymentIntentionBuilder) BuildCreateRequestDTO() reqdto.CreatePaymentIntentionRequest {
	id := b.ID
	value := b.Value
	return reqdto.CreatePaymentIntentionRequest{
		ID:          &id,
		PayerID:     b.PayerID,
		ReceiverID:  b.ReceiverID,
		Description: b.Description,
		Value:       &value,
	}
}

func (b *PaymentIntentionBuilder) BuildView() *queries.PaymentIntentionView {
	return &queries.PaymentIntentionView{
		ID:          b.ID,
		PayerID:     b.PayerID,
		ReceiverID:  b.ReceiverID,
		Description: b.Description,
		Value:       b.Value,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
