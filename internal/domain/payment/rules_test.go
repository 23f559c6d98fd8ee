//go:build unit

package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-intention-service/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count int
	err   error
	calls int
	start time.Time
	end   time.Time
}

func (f *fakeCounter) CountByPayerInWindow(_ context.Context, _ int64, start, end time.Time) (int, error) {
	f.calls++
	f.start, f.end = start, end
	return f.count, f.err
}

type fakeDirectory struct {
	known map[int64]bool
	err   error
	calls []int64
}

func (f *fakeDirectory) Exists(_ context.Context, id int64) (bool, error) {
	f.calls = append(f.calls, id)
	if f.err != nil {
		return false, f.err
	}
	return f.known[id], nil
}

func newPolicy(t *testing.T) payment.Policy {
	t.Helper()
	values, err := payment.NewValueWindow(decimal.NewFromInt(1), decimal.NewFromInt(10000))
	require.NoError(t, err)
	rate, err := payment.NewRateWindow(payment.WindowRolling, 24*time.Hour)
	require.NoError(t, err)
	policy, err := payment.NewPolicy(values, rate, 5)
	require.NoError(t, err)
	return policy
}

func candidate(payer, receiver int64, value int64) payment.Candidate {
	return payment.Candidate{PayerID: payer, ReceiverID: receiver, Value: payment.NewAmount(decimal.NewFromInt(value))}
}

func TestRuleChain(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("order is window, limit, same origin, user existence", func(t *testing.T) {
		chain := payment.NewRuleChain(newPolicy(t), &fakeCounter{}, &fakeDirectory{})
		assert.Equal(t, []string{"window", "limit", "same_origin", "user_existence"}, chain.Names())
	})

	t.Run("accepts a valid candidate", func(t *testing.T) {
		counter := &fakeCounter{count: 0}
		users := &fakeDirectory{known: map[int64]bool{1: true, 2: true}}
		chain := payment.NewRuleChain(newPolicy(t), counter, users)

		err := chain.Validate(context.Background(), candidate(1, 2, 100), now)
		require.NoError(t, err)
		assert.Equal(t, 1, counter.calls)
		assert.Equal(t, now.Add(-24*time.Hour), counter.start)
		assert.Equal(t, now, counter.end)
		assert.Equal(t, []int64{1, 2}, users.calls)
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		cases := []struct {
			name         string
			cand         payment.Candidate
			count        int
			known        map[int64]bool
			wantKind     payment.Kind
			counterCalls int
			dirCalls     int
		}{
			{
				name:     "every rule fails: window reported",
				cand:     candidate(7, 7, 20000),
				count:    5,
				known:    map[int64]bool{},
				wantKind: payment.KindOutOfWindowValue,
			},
			{
				name:         "limit, same origin and unknown user fail: limit reported",
				cand:         candidate(7, 7, 100),
				count:        5,
				known:        map[int64]bool{},
				wantKind:     payment.KindMaxLimitReached,
				counterCalls: 1,
			},
			{
				name:         "same origin and unknown user fail: same origin reported",
				cand:         candidate(7, 7, 100),
				count:        4,
				known:        map[int64]bool{},
				wantKind:     payment.KindSameOrigin,
				counterCalls: 1,
			},
			{
				name:         "only user existence fails",
				cand:         candidate(1, 999, 100),
				count:        0,
				known:        map[int64]bool{1: true},
				wantKind:     payment.KindUserNotFound,
				counterCalls: 1,
				dirCalls:     2,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				counter := &fakeCounter{count: tc.count}
				users := &fakeDirectory{known: tc.known}
				chain := payment.NewRuleChain(newPolicy(t), counter, users)

				err := chain.Validate(context.Background(), tc.cand, now)
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, payment.Classify(err))
				assert.Equal(t, tc.counterCalls, counter.calls)
				assert.Len(t, users.calls, tc.dirCalls)
			})
		}
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		users := &fakeDirectory{known: map[int64]bool{1: true, 2: true}}
		chain := payment.NewRuleChain(newPolicy(t), &fakeCounter{}, users)

		require.NoError(t, chain.Validate(context.Background(), candidate(1, 2, 1), now))
		require.NoError(t, chain.Validate(context.Background(), candidate(1, 2, 10000), now))

		err := chain.Validate(context.Background(), payment.Candidate{
			PayerID: 1, ReceiverID: 2, Value: payment.NewAmount(decimal.RequireFromString("0.99")),
		}, now)
		f, ok := payment.AsFailure(err)
		require.True(t, ok)
		require.NotNil(t, f.OutOfWindow)
		assert.Equal(t, "0.99", f.OutOfWindow.Value.String())
		assert.True(t, f.OutOfWindow.Min.Equal(decimal.NewFromInt(1)))
		assert.True(t, f.OutOfWindow.Max.Equal(decimal.NewFromInt(10000)))

		err = chain.Validate(context.Background(), candidate(1, 2, 10001), now)
		assert.ErrorIs(t, err, payment.ErrOutOfWindowValue)
	})

	t.Run("limit failure carries count and limit", func(t *testing.T) {
		chain := payment.NewRuleChain(newPolicy(t), &fakeCounter{count: 6}, &fakeDirectory{})

		err := chain.Validate(context.Background(), candidate(3, 4, 100), now)
		f, ok := payment.AsFailure(err)
		require.True(t, ok)
		require.NotNil(t, f.Limit)
		assert.Equal(t, int64(3), f.Limit.PayerID)
		assert.Equal(t, 6, f.Limit.Count)
		assert.Equal(t, 5, f.Limit.Limit)
	})

	t.Run("same origin failure carries both ids", func(t *testing.T) {
		chain := payment.NewRuleChain(newPolicy(t), &fakeCounter{}, &fakeDirectory{})

		err := chain.Validate(context.Background(), candidate(1, 1, 100), now)
		f, ok := payment.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, &payment.SameOriginDetail{PayerID: 1, ReceiverID: 1}, f.SameOrigin)
	})

	t.Run("user not found names every missing id", func(t *testing.T) {
		chain := payment.NewRuleChain(newPolicy(t), &fakeCounter{}, &fakeDirectory{known: map[int64]bool{}})

		err := chain.Validate(context.Background(), candidate(998, 999, 100), now)
		f, ok := payment.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, []int64{998, 999}, f.UserNotFound.MissingIDs)
		assert.Contains(t, f.Message, "998")
		assert.Contains(t, f.Message, "999")
	})

	t.Run("port errors are surfaced unchanged", func(t *testing.T) {
		boom := errors.New("connection refused")

		chain := payment.NewRuleChain(newPolicy(t), &fakeCounter{err: boom}, &fakeDirectory{})
		err := chain.Validate(context.Background(), candidate(1, 2, 100), now)
		assert.Same(t, boom, err)
		assert.Equal(t, payment.KindInternal, payment.Classify(err))

		chain = payment.NewRuleChain(newPolicy(t), &fakeCounter{}, &fakeDirectory{err: boom})
		err = chain.Validate(context.Background(), candidate(1, 2, 100), now)
		assert.Same(t, boom, err)
	})
}
