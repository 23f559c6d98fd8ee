package payment

import (
	"strings"
	"time"
)

const MaxIDLength = 64

type PaymentIntention struct {
	id          string
	payerID     int64
	receiverID  int64
	description *string
	value       Amount
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPaymentIntention assembles an intention that already passed the rule chain.
func NewPaymentIntention(id string, payerID, receiverID int64, description *string, value Amount, now time.Time) *PaymentIntention {
	return &PaymentIntention{
		id:          id,
		payerID:     payerID,
		receiverID:  receiverID,
		description: normalizeDescription(description),
		value:       value,
		createdAt:   now,
		updatedAt:   now,
	}
}

func Reconstruct(
	id string,
	payerID, receiverID int64,
	description *string,
	value Amount,
	createdAt, updatedAt time.Time,
) *PaymentIntention {
	return &PaymentIntention{
		id:          id,
		payerID:     payerID,
		receiverID:  receiverID,
		description: description,
		value:       value,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *PaymentIntention) ID() string           { return p.id }
func (p *PaymentIntention) PayerID() int64       { return p.payerID }
func (p *PaymentIntention) ReceiverID() int64    { return p.receiverID }
func (p *PaymentIntention) Description() *string { return p.description }
func (p *PaymentIntention) Value() Amount        { return p.value }
func (p *PaymentIntention) CreatedAt() time.Time { return p.createdAt }
func (p *PaymentIntention) UpdatedAt() time.Time { return p.updatedAt }

// Blank descriptions are stored as absent.
func normalizeDescription(d *string) *string {
	if d == nil {
		return nil
	}
	t := strings.TrimSpace(*d)
	if t == "" {
		return nil
	}
	return &t
}
