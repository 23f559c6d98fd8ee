package payment

import (
	"context"
	"time"
)

// IntentionCounter reads how many intentions a payer created within [start, end].
type IntentionCounter interface {
	CountByPayerInWindow(ctx context.Context, payerID int64, start, end time.Time) (int, error)
}

type UserDirectory interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// Candidate is the part of a creation request the rules look at.
type Candidate struct {
	PayerID    int64
	ReceiverID int64
	Value      Amount
}

// Rule returns a *Failure when the candidate is rejected, or a port error unchanged.
type Rule interface {
	Name() string
	Check(ctx context.Context, c Candidate, now time.Time) error
}

// RuleChain evaluates its rules in order and stops at the first failure.
type RuleChain struct {
	rules []Rule
}

// NewRuleChain orders the checks cheapest first: local numeric checks, then the
// count read, then the local identity check, then the remote existence lookup.
func NewRuleChain(policy Policy, counter IntentionCounter, users UserDirectory) *RuleChain {
	return &RuleChain{
		rules: []Rule{
			&windowRule{window: policy.Values},
			&limitRule{rate: policy.Rate, max: policy.MaxPerWindow, counter: counter},
			&sameOriginRule{},
			&userExistenceRule{users: users},
		},
	}
}

func (c *RuleChain) Validate(ctx context.Context, cand Candidate, now time.Time) error {
	for _, r := range c.rules {
		if err := r.Check(ctx, cand, now); err != nil {
			return err
		}
	}
	return nil
}

func (c *RuleChain) Names() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name()
	}
	return names
}

type windowRule struct {
	window ValueWindow
}

func (r *windowRule) Name() string { return "window" }

func (r *windowRule) Check(_ context.Context, c Candidate, _ time.Time) error {
	if !r.window.Contains(c.Value) {
		return OutOfWindowValue(c.Value, r.window)
	}
	return nil
}

type limitRule struct {
	rate    RateWindow
	max     int
	counter IntentionCounter
}

func (r *limitRule) Name() string { return "limit" }

func (r *limitRule) Check(ctx context.Context, c Candidate, now time.Time) error {
	start, end := r.rate.Bounds(now)
	count, err := r.counter.CountByPayerInWindow(ctx, c.PayerID, start, end)
	if err != nil {
		return err
	}
	return CheckLimit(c.PayerID, count, r.max)
}

// CheckLimit is shared with the commit-time recount performed under the payer lock.
func CheckLimit(payerID int64, count, max int) error {
	if count >= max {
		return MaxLimitReached(payerID, count, max)
	}
	return nil
}

type sameOriginRule struct{}

func (r *sameOriginRule) Name() string { return "same_origin" }

func (r *sameOriginRule) Check(_ context.Context, c Candidate, _ time.Time) error {
	if c.PayerID == c.ReceiverID {
		return SameOrigin(c.PayerID, c.ReceiverID)
	}
	return nil
}

type userExistenceRule struct {
	users UserDirectory
}

func (r *userExistenceRule) Name() string { return "user_existence" }

// Both ids are resolved so the failure can name every missing user.
func (r *userExistenceRule) Check(ctx context.Context, c Candidate, _ time.Time) error {
	var missing []int64
	for _, id := range []int64{c.PayerID, c.ReceiverID} {
		ok, err := r.users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return UserNotFound(missing...)
	}
	return nil
}
