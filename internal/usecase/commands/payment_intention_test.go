//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"payment-intention-service/internal/domain/payment"
	"payment-intention-service/internal/infra"
	"payment-intention-service/internal/pkg/clock"
	"payment-intention-service/internal/pkg/idgen"
	"payment-intention-service/internal/pkg/metrics"
	"payment-intention-service/internal/usecase/commands"
	"payment-intention-service/internal/usecase/shared"
	"payment-intention-service/tests/common/builder"
	sharedmock "payment-intention-service/tests/mock/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testPolicy(maxPerWindow int) payment.Policy {
	values, _ := payment.NewValueWindow(decimal.NewFromInt(1), decimal.NewFromInt(10000))
	rate, _ := payment.NewRateWindow(payment.WindowRolling, 24*time.Hour)
	policy, _ := payment.NewPolicy(values, rate, maxPerWindow)
	return policy
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type PaymentIntentionCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	repo    *sharedmock.MockPaymentIntentionRepository
	reads   *sharedmock.MockCommandReads
	users   *sharedmock.MockUserDirectory
	metrics *metrics.Metrics
	clock   *clock.MockClock
	cmds    commands.PaymentIntentionCommands
}

func (s *PaymentIntentionCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.repo = sharedmock.NewMockPaymentIntentionRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.users = sharedmock.NewMockUserDirectory(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.clock = clock.NewMockClock(fixedNow)

	s.uow.EXPECT().CommandReads().Return(s.reads).Times(1)
	s.tx.EXPECT().PaymentIntentions().Return(s.repo).AnyTimes()

	s.cmds = commands.NewPaymentIntentionCommands(
		s.uow, s.users, testPolicy(5), s.clock, idgen.NewSequenceGenerator("pi"), s.metrics, discardLogger(),
	)
}

func (s *PaymentIntentionCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentIntentionCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentIntentionCommandsTestSuite))
}

func (s *PaymentIntentionCommandsTestSuite) expectTransaction() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *PaymentIntentionCommandsTestSuite) expectIDFree(req commands.CreatePaymentIntentionRequest) {
	if req.ID != nil {
		s.reads.EXPECT().IntentionExists(gomock.Any(), *req.ID).Return(false, nil)
	}
}

func (s *PaymentIntentionCommandsTestSuite) expectValidChain(req commands.CreatePaymentIntentionRequest, count int) {
	start, end := fixedNow.Add(-24*time.Hour), fixedNow
	s.expectIDFree(req)
	s.reads.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, start, end).Return(count, nil)
	s.users.EXPECT().Exists(gomock.Any(), req.PayerID).Return(true, nil)
	s.users.EXPECT().Exists(gomock.Any(), req.ReceiverID).Return(true, nil)
}

func (s *PaymentIntentionCommandsTestSuite) TestCreate() {
	s.Run("success: locks payer, recounts and inserts in order", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		s.expectValidChain(req, 2)
		s.expectTransaction()

		start, end := fixedNow.Add(-24*time.Hour), fixedNow
		var inserted *payment.PaymentIntention
		gomock.InOrder(
			s.repo.EXPECT().LockPayer(gomock.Any(), req.PayerID).Return(nil),
			s.repo.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, start, end).Return(2, nil),
			s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, pi *payment.PaymentIntention) error {
					inserted = pi
					return nil
				}),
		)

		got, err := s.cmds.Create(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(*req.ID, got.ID())
		s.Equal(fixedNow, got.CreatedAt())
		s.Equal(got.CreatedAt(), got.UpdatedAt())
		s.Same(got, inserted)
		s.InDelta(1, testutil.ToFloat64(s.metrics.Created), 0)
	})

	s.Run("success: generates an id when none is supplied", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		req.ID = nil
		s.expectValidChain(req, 0)
		s.expectTransaction()
		s.repo.EXPECT().LockPayer(gomock.Any(), req.PayerID).Return(nil)
		s.repo.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, gomock.Any(), gomock.Any()).Return(0, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.cmds.Create(context.Background(), req)

		s.Require().NoError(err)
		s.NotEmpty(got.ID())
		s.NotEqual("pi-0001", got.ID())
	})

	s.Run("error: out of window value never touches the ports", func() {
		req := builder.NewPaymentIntentionBuilder().
			With(func(b *builder.PaymentIntentionBuilder) { b.Value = decimal.NewFromInt(20000) }).
			BuildCommand()
		req.ID = nil

		_, err := s.cmds.Create(context.Background(), req)

		s.ErrorIs(err, payment.ErrOutOfWindowValue)
		s.InDelta(1, testutil.ToFloat64(s.metrics.Rejected.WithLabelValues(payment.KindOutOfWindowValue.String())), 0)
	})

	s.Run("error: limit reached on the pre-check skips the transaction", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		s.expectIDFree(req)
		s.reads.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, gomock.Any(), gomock.Any()).Return(5, nil)

		_, err := s.cmds.Create(context.Background(), req)

		f, ok := payment.AsFailure(err)
		s.Require().True(ok)
		s.Equal(payment.KindMaxLimitReached, f.Kind)
		s.Equal(5, f.Limit.Count)
		s.Equal(5, f.Limit.Limit)
	})

	s.Run("error: limit reached at commit time aborts before insert", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		s.expectValidChain(req, 4)
		s.expectTransaction()
		s.repo.EXPECT().LockPayer(gomock.Any(), req.PayerID).Return(nil)
		s.repo.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, gomock.Any(), gomock.Any()).Return(5, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.cmds.Create(context.Background(), req)

		s.ErrorIs(err, payment.ErrMaxLimitReached)
	})

	s.Run("error: duplicate key on insert becomes DuplicateIntention", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		s.expectValidChain(req, 0)
		s.expectTransaction()
		s.repo.EXPECT().LockPayer(gomock.Any(), req.PayerID).Return(nil)
		s.repo.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, gomock.Any(), gomock.Any()).Return(0, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindDuplicateKey, "payment intention id already exists"))

		_, err := s.cmds.Create(context.Background(), req)

		f, ok := payment.AsFailure(err)
		s.Require().True(ok)
		s.Equal(payment.KindDuplicateIntention, f.Kind)
		s.Equal(*req.ID, f.Duplicate.ID)
	})

	s.Run("error: user directory failure is surfaced unmodified", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		boom := errors.New("directory unavailable")
		s.expectIDFree(req)
		s.reads.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, gomock.Any(), gomock.Any()).Return(0, nil)
		s.users.EXPECT().Exists(gomock.Any(), req.PayerID).Return(false, boom)

		_, err := s.cmds.Create(context.Background(), req)

		s.Same(boom, err)
		s.Equal(payment.KindInternal, payment.Classify(err))
		s.InDelta(1, testutil.ToFloat64(s.metrics.Rejected.WithLabelValues(payment.KindInternal.String())), 0)
	})

	s.Run("error: lock failure is surfaced unmodified", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		lockErr := infra.NewRepoErr(infra.KindDBFailure, "failed to lock payer")
		s.expectValidChain(req, 0)
		s.expectTransaction()
		s.repo.EXPECT().LockPayer(gomock.Any(), req.PayerID).Return(lockErr)

		_, err := s.cmds.Create(context.Background(), req)

		s.Equal(lockErr, err)
	})
	s.Run("error: an existing id conflicts before any validation", func() {
		req := builder.NewPaymentIntentionBuilder().
			With(func(b *builder.PaymentIntentionBuilder) {
				b.ReceiverID = b.PayerID
				b.Value = decimal.NewFromInt(20000)
			}).
			BuildCommand()
		s.reads.EXPECT().IntentionExists(gomock.Any(), *req.ID).Return(true, nil)

		_, err := s.cmds.Create(context.Background(), req)

		f, ok := payment.AsFailure(err)
		s.Require().True(ok)
		s.Equal(payment.KindDuplicateIntention, f.Kind)
		s.Equal(*req.ID, f.Duplicate.ID)
		s.InDelta(1, testutil.ToFloat64(s.metrics.Rejected.WithLabelValues(payment.KindDuplicateIntention.String())), 0)
	})

	s.Run("error: id lookup failure is surfaced unmodified", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		lookupErr := infra.NewRepoErr(infra.KindDBFailure, "failed to look up payment intention")
		s.reads.EXPECT().IntentionExists(gomock.Any(), *req.ID).Return(false, lookupErr)

		_, err := s.cmds.Create(context.Background(), req)

		s.Equal(lookupErr, err)
	})

	s.Run("success: window and timestamps use the clock read under the lock", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		s.expectValidChain(req, 0)
		s.expectTransaction()

		locked := fixedNow.Add(time.Minute)
		defer s.clock.Set(fixedNow)
		s.repo.EXPECT().LockPayer(gomock.Any(), req.PayerID).
			DoAndReturn(func(context.Context, int64) error {
				s.clock.Set(locked)
				return nil
			})
		s.repo.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, locked.Add(-24*time.Hour), locked).Return(0, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.cmds.Create(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(locked, got.CreatedAt())
		s.Equal(locked, got.UpdatedAt())
	})

	s.Run("error: user removed before insert becomes UserNotFound", func() {
		req := builder.NewPaymentIntentionBuilder().BuildCommand()
		s.expectValidChain(req, 0)
		s.expectTransaction()
		s.repo.EXPECT().LockPayer(gomock.Any(), req.PayerID).Return(nil)
		s.repo.EXPECT().CountByPayerInWindow(gomock.Any(), req.PayerID, gomock.Any(), gomock.Any()).Return(0, nil)
		s.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindForeignKeyViolated, "referenced user is missing"))
		s.users.EXPECT().Exists(gomock.Any(), req.PayerID).Return(true, nil)
		s.users.EXPECT().Exists(gomock.Any(), req.ReceiverID).Return(false, nil)

		_, err := s.cmds.Create(context.Background(), req)

		f, ok := payment.AsFailure(err)
		s.Require().True(ok)
		s.Equal(payment.KindUserNotFound, f.Kind)
		s.Equal([]int64{req.ReceiverID}, f.UserNotFound.MissingIDs)
	})
}
