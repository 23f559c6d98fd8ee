package commands

import (
	"context"
	"log/slog"

	"payment-intention-service/internal/domain/payment"
	"payment-intention-service/internal/infra"
	"payment-intention-service/internal/pkg/clock"
	"payment-intention-service/internal/pkg/idgen"
	"payment-intention-service/internal/pkg/metrics"
	"payment-intention-service/internal/usecase/shared"
)

type CreatePaymentIntentionRequest struct {
	ID          *string
	PayerID     int64
	ReceiverID  int64
	Description *string
	Value       payment.Amount
}

type PaymentIntentionCommands interface {
	Create(ctx context.Context, req CreatePaymentIntentionRequest) (*payment.PaymentIntention, error)
}

type paymentIntentionUseCaseImpl struct {
	uow     shared.UnitOfWork
	reads   shared.CommandReads
	users   shared.UserDirectory
	rules   *payment.RuleChain
	policy  payment.Policy
	clock   clock.Clock
	ids     idgen.Generator
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewPaymentIntentionCommands(
	uow shared.UnitOfWork,
	users shared.UserDirectory,
	policy payment.Policy,
	clk clock.Clock,
	ids idgen.Generator,
	m *metrics.Metrics,
	logger *slog.Logger,
) PaymentIntentionCommands {
	reads := uow.CommandReads()
	return &paymentIntentionUseCaseImpl{
		uow:     uow,
		reads:   reads,
		users:   users,
		rules:   payment.NewRuleChain(policy, reads, users),
		policy:  policy,
		clock:   clk,
		ids:     ids,
		metrics: m,
		logger:  logger,
	}
}

func (uc *paymentIntentionUseCaseImpl) Create(ctx context.Context, req CreatePaymentIntentionRequest) (*payment.PaymentIntention, error) {
	id, supplied := uc.resolveID(req.ID)

	// An existing id is a conflict regardless of what the new payload would validate to.
	if supplied {
		exists, err := uc.reads.IntentionExists(ctx, id)
		if err != nil {
			return nil, uc.reject(ctx, id, req, err)
		}
		if exists {
			return nil, uc.reject(ctx, id, req, payment.DuplicateIntention(id))
		}
	}

	cand := payment.Candidate{
		PayerID:    req.PayerID,
		ReceiverID: req.ReceiverID,
		Value:      req.Value,
	}
	if err := uc.rules.Validate(ctx, cand, uc.clock.Now()); err != nil {
		return nil, uc.reject(ctx, id, req, err)
	}

	intention, err := uc.persist(ctx, id, req)
	if err != nil {
		return nil, uc.reject(ctx, id, req, err)
	}

	uc.metrics.ObserveCreated()
	uc.logger.InfoContext(ctx, "payment intention created",
		"id", intention.ID(),
		"payer_id", intention.PayerID(),
		"receiver_id", intention.ReceiverID(),
		"value", intention.Value().String())

	return intention, nil
}

// persist re-checks the limit under the payer lock, so the insert is the final arbiter
// for both the rate limit and id uniqueness. The clock is read under the lock so the
// recount covers every committed competitor; the intention is stamped with that instant.
func (uc *paymentIntentionUseCaseImpl) persist(ctx context.Context, id string, req CreatePaymentIntentionRequest) (*payment.PaymentIntention, error) {
	var intention *payment.PaymentIntention

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.PaymentIntentions()
		if err := repo.LockPayer(ctx, req.PayerID); err != nil {
			return err
		}

		now := uc.clock.Now()
		start, end := uc.policy.Rate.Bounds(now)
		count, err := repo.CountByPayerInWindow(ctx, req.PayerID, start, end)
		if err != nil {
			return err
		}
		if err := payment.CheckLimit(req.PayerID, count, uc.policy.MaxPerWindow); err != nil {
			return err
		}

		intention = payment.NewPaymentIntention(id, req.PayerID, req.ReceiverID, req.Description, req.Value, now)
		return repo.Insert(ctx, intention)
	})
	switch {
	case err == nil:
		return intention, nil
	case infra.IsKind(err, infra.KindDuplicateKey):
		return nil, payment.DuplicateIntention(id)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return nil, uc.missingUsers(ctx, req, err)
	default:
		return nil, err
	}
}

// missingUsers resolves which party disappeared after validation. A directory that still
// reports both users (e.g. a stale cache entry) yields both ids.
func (uc *paymentIntentionUseCaseImpl) missingUsers(ctx context.Context, req CreatePaymentIntentionRequest, cause error) error {
	var missing []int64
	for _, userID := range []int64{req.PayerID, req.ReceiverID} {
		ok, err := uc.users.Exists(ctx, userID)
		if err != nil {
			return cause
		}
		if !ok {
			missing = append(missing, userID)
		}
	}
	if len(missing) == 0 {
		missing = []int64{req.PayerID, req.ReceiverID}
	}
	return payment.UserNotFound(missing...)
}

func (uc *paymentIntentionUseCaseImpl) resolveID(supplied *string) (string, bool) {
	if supplied == nil || *supplied == "" {
		return uc.ids.NewID(), false
	}
	return *supplied, true
}

func (uc *paymentIntentionUseCaseImpl) reject(ctx context.Context, id string, req CreatePaymentIntentionRequest, err error) error {
	kind := payment.Classify(err)
	uc.metrics.ObserveRejected(kind.String())

	attrs := []any{
		"id", id,
		"payer_id", req.PayerID,
		"receiver_id", req.ReceiverID,
		"kind", kind.String(),
	}
	if kind == payment.KindInternal {
		uc.logger.ErrorContext(ctx, "payment intention creation failed", append(attrs, "error", err.Error())...)
		return err
	}
	uc.logger.InfoContext(ctx, "payment intention rejected", append(attrs, "reason", err.Error())...)
	return err
}
