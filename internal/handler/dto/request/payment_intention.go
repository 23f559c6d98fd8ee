package request

import (
	"payment-intention-service/internal/domain/payment"
	"payment-intention-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreatePaymentIntentionRequest struct {
	ID          *string          `json:"id" binding:"omitempty,min=1,max=64"`
	PayerID     int64            `json:"payer_id" binding:"required,gt=0"`
	ReceiverID  int64            `json:"receiver_id" binding:"required,gt=0"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Value       *decimal.Decimal `json:"value" binding:"required"`
}

func (r *CreatePaymentIntentionRequest) ToCommand() commands.CreatePaymentIntentionRequest {
	return commands.CreatePaymentIntentionRequest{
		ID:          r.ID,
		PayerID:     r.PayerID,
		ReceiverID:  r.ReceiverID,
		Description: r.Description,
		Value:       payment.NewAmount(*r.Value),
	}
}
