package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"payment-intention-service/internal/domain/payment"
	"payment-intention-service/internal/infra"
	"payment-intention-service/internal/usecase/queries"
	"payment-intention-service/internal/usecase/shared"
)

// Store keeps payment intentions and known users in process memory.
// Within holds a store-wide write lock for the whole callback, so transactions are serialized.
type Store struct {
	writeMu sync.Mutex

	mu         sync.RWMutex
	intentions map[string]*payment.PaymentIntention
	users      map[int64]struct{}
}

func NewStore(userIDs ...int64) *Store {
	s := &Store{
		intentions: make(map[string]*payment.PaymentIntention),
		users:      make(map[int64]struct{}),
	}
	s.AddUsers(userIDs...)
	return s
}

func (s *Store) AddUsers(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.users[id] = struct{}{}
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx := &memTx{store: s, staged: make(map[string]*payment.PaymentIntention)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, pi := range tx.staged {
		s.intentions[id] = pi
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return s
}

func (s *Store) CountByPayerInWindow(ctx context.Context, payerID int64, start, end time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countInWindow(s.intentions, payerID, start, end), nil
}

func (s *Store) IntentionExists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.intentions[id]
	return ok, nil
}

func (s *Store) Exists(ctx context.Context, userID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*queries.PaymentIntentionView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	pi, ok := s.intentions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "payment intention not found")
	}
	return &queries.PaymentIntentionView{
		ID:          pi.ID(),
		PayerID:     pi.PayerID(),
		ReceiverID:  pi.ReceiverID(),
		Description: pi.Description(),
		Value:       pi.Value().Decimal(),
		CreatedAt:   pi.CreatedAt(),
		UpdatedAt:   pi.UpdatedAt(),
	}, nil
}

// Intentions returns a snapshot ordered by creation time.
func (s *Store) Intentions() []*payment.PaymentIntention {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*payment.PaymentIntention, 0, len(s.intentions))
	for _, pi := range s.intentions {
		out = append(out, pi)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].ID() < out[j].ID()
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out
}

type memTx struct {
	store  *Store
	staged map[string]*payment.PaymentIntention
}

func (t *memTx) PaymentIntentions() shared.PaymentIntentionRepository {
	return t
}

// LockPayer is satisfied by the store-wide write lock held in Within.
func (t *memTx) LockPayer(ctx context.Context, _ int64) error {
	return ctx.Err()
}

func (t *memTx) CountByPayerInWindow(ctx context.Context, payerID int64, start, end time.Time) (int, error) {
	committed, err := t.store.CountByPayerInWindow(ctx, payerID, start, end)
	if err != nil {
		return 0, err
	}
	return committed + countInWindow(t.staged, payerID, start, end), nil
}

func (t *memTx) Insert(ctx context.Context, pi *payment.PaymentIntention) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.store.mu.RLock()
	_, taken := t.store.intentions[pi.ID()]
	t.store.mu.RUnlock()
	if _, staged := t.staged[pi.ID()]; taken || staged {
		return infra.NewRepoErr(infra.KindDuplicateKey, "payment intention id already exists")
	}
	t.staged[pi.ID()] = pi
	return nil
}

func countInWindow(set map[string]*payment.PaymentIntention, payerID int64, start, end time.Time) int {
	n := 0
	for _, pi := range set {
		if pi.PayerID() != payerID {
			continue
		}
		at := pi.CreatedAt()
		if !at.Before(start) && !at.After(end) {
			n++
		}
	}
	return n
}
