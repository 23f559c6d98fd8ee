package shared

import (
	"context"
	"time"

	"payment-intention-service/internal/domain/payment"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	PaymentIntentions() PaymentIntentionRepository
}

// CommandReads are non-locking reads used before the transaction starts.
type CommandReads interface {
	CountByPayerInWindow(ctx context.Context, payerID int64, start, end time.Time) (int, error)
	IntentionExists(ctx context.Context, id string) (bool, error)
}

type PaymentIntentionRepository interface {
	// LockPayer serializes creations for one payer until the surrounding transaction ends.
	LockPayer(ctx context.Context, payerID int64) error
	CountByPayerInWindow(ctx context.Context, payerID int64, start, end time.Time) (int, error)
	// Insert fails with an infra.KindDuplicateKey error when the id is already taken.
	Insert(ctx context.Context, pi *payment.PaymentIntention) error
}

type UserDirectory interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}
