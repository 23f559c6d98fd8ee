package payment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind discriminates the closed set of creation failures.
type Kind string

const (
	KindOutOfWindowValue   Kind = "OUT_OF_WINDOW_VALUE"
	KindMaxLimitReached    Kind = "MAX_LIMIT_REACHED"
	KindSameOrigin         Kind = "SAME_ORIGIN"
	KindUserNotFound       Kind = "USER_NOT_FOUND"
	KindDuplicateIntention Kind = "DUPLICATE_INTENTION"
	KindInternal           Kind = "INTERNAL"
)

func (k Kind) String() string { return string(k) }

type OutOfWindowDetail struct {
	Value Amount
	Min   decimal.Decimal
	Max   decimal.Decimal
}

type LimitDetail struct {
	PayerID int64
	Count   int
	Limit   int
}

type SameOriginDetail struct {
	PayerID    int64
	ReceiverID int64
}

type UserNotFoundDetail struct {
	MissingIDs []int64
}

type DuplicateDetail struct {
	ID string
}

// Failure is a rejected creation attempt. Exactly one payload field matching Kind is set.
type Failure struct {
	Kind    Kind
	Message string

	OutOfWindow  *OutOfWindowDetail
	Limit        *LimitDetail
	SameOrigin   *SameOriginDetail
	UserNotFound *UserNotFoundDetail
	Duplicate    *DuplicateDetail
}

func (f *Failure) Error() string {
	return f.Code() + ": " + f.Message
}

func (f *Failure) Code() string {
	return string(f.Kind)
}

// Is lets errors.Is match on the kind alone, e.g. errors.Is(err, payment.ErrSameOrigin).
func (f *Failure) Is(target error) bool {
	var t *Failure
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == f.Kind
}

// Kind-only sentinels for errors.Is comparisons.
var (
	ErrOutOfWindowValue   = &Failure{Kind: KindOutOfWindowValue, Message: "value out of window"}
	ErrMaxLimitReached    = &Failure{Kind: KindMaxLimitReached, Message: "max limit reached"}
	ErrSameOrigin         = &Failure{Kind: KindSameOrigin, Message: "same origin"}
	ErrUserNotFound       = &Failure{Kind: KindUserNotFound, Message: "user not found"}
	ErrDuplicateIntention = &Failure{Kind: KindDuplicateIntention, Message: "duplicate intention"}
)

func OutOfWindowValue(value Amount, window ValueWindow) *Failure {
	return &Failure{
		Kind:        KindOutOfWindowValue,
		Message:     fmt.Sprintf("value %s is outside the allowed window [%s, %s]", value, window.Min, window.Max),
		OutOfWindow: &OutOfWindowDetail{Value: value, Min: window.Min, Max: window.Max},
	}
}

func MaxLimitReached(payerID int64, count, limit int) *Failure {
	return &Failure{
		Kind:    KindMaxLimitReached,
		Message: fmt.Sprintf("payer %d reached the limit of %d payment intentions for the current window (%d created)", payerID, limit, count),
		Limit:   &LimitDetail{PayerID: payerID, Count: count, Limit: limit},
	}
}

func SameOrigin(payerID, receiverID int64) *Failure {
	return &Failure{
		Kind:       KindSameOrigin,
		Message:    fmt.Sprintf("payer %d and receiver %d must be different users", payerID, receiverID),
		SameOrigin: &SameOriginDetail{PayerID: payerID, ReceiverID: receiverID},
	}
}

func UserNotFound(missing ...int64) *Failure {
	ids := make([]string, len(missing))
	for i, id := range missing {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return &Failure{
		Kind:         KindUserNotFound,
		Message:      fmt.Sprintf("user(s) not found: %s", strings.Join(ids, ", ")),
		UserNotFound: &UserNotFoundDetail{MissingIDs: missing},
	}
}

func DuplicateIntention(id string) *Failure {
	return &Failure{
		Kind:      KindDuplicateIntention,
		Message:   fmt.Sprintf("payment intention %q already exists", id),
		Duplicate: &DuplicateDetail{ID: id},
	}
}

// AsFailure extracts the domain failure from an error chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Classify returns KindInternal for anything that is not a domain failure.
func Classify(err error) Kind {
	if f, ok := AsFailure(err); ok {
		return f.Kind
	}
	return KindInternal
}
