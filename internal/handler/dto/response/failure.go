package response

import (
	"payment-intention-service/internal/domain/payment"
)

type OutOfWindowDetail struct {
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type LimitDetail struct {
	PayerID int64 `json:"payer_id"`
	Count   int   `json:"count"`
	Limit   int   `json:"limit"`
}

type SameOriginDetail struct {
	PayerID    int64 `json:"payer_id"`
	ReceiverID int64 `json:"receiver_id"`
}

type UserNotFoundDetail struct {
	MissingIDs []int64 `json:"missing_ids"`
}

type DuplicateDetail struct {
	ID string `json:"id"`
}

// FailureDetail renders the payload of f, or nil when it carries none.
func FailureDetail(f *payment.Failure) any {
	switch {
	case f.OutOfWindow != nil:
		return OutOfWindowDetail{
			Value: f.OutOfWindow.Value.Float64(),
			Min:   f.OutOfWindow.Min.InexactFloat64(),
			Max:   f.OutOfWindow.Max.InexactFloat64(),
		}
	case f.Limit != nil:
		return LimitDetail{PayerID: f.Limit.PayerID, Count: f.Limit.Count, Limit: f.Limit.Limit}
	case f.SameOrigin != nil:
		return SameOriginDetail{PayerID: f.SameOrigin.PayerID, ReceiverID: f.SameOrigin.ReceiverID}
	case f.UserNotFound != nil:
		return UserNotFoundDetail{MissingIDs: f.UserNotFound.MissingIDs}
	case f.Duplicate != nil:
		return DuplicateDetail{ID: f.Duplicate.ID}
	default:
		return nil
	}
}
