package client

import (
	"context"
	"sync"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/domain/transaction"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/google/uuid"
)

// TransactionAPI is the part of Client used by TransactionStore.
type TransactionAPI interface {
	Transactions(ctx context.Context, kind domain.EntryType) ([]*dto.TransactionRead, error)
	CreateTransaction(ctx context.Context, in NewTransaction) (*dto.TransactionRead, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// TransactionStore caches the signed-in user's transactions, most recent
// first.
type TransactionStore struct {
	api TransactionAPI

	mu           sync.RWMutex
	transactions []*dto.TransactionRead
	loading      bool
	err          error
}

func NewTransactionStore(api TransactionAPI) *TransactionStore {
	return &TransactionStore{api: api}
}

func (s *TransactionStore) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	list, err := s.api.Transactions(ctx, "")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
	if err == nil {
		s.transactions = list
	}
	return err
}

// Add records a transaction and puts it at the head of the cache.
func (s *TransactionStore) Add(ctx context.Context, in NewTransaction) (*dto.TransactionRead, error) {
	created, err := s.api.CreateTransaction(ctx, in)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	if err != nil {
		return nil, err
	}
	s.transactions = append([]*dto.TransactionRead{created}, s.transactions...)
	return created, nil
}

// Remove deletes a transaction and drops it from the cache.
func (s *TransactionStore) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.api.DeleteTransaction(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	if err != nil {
		return err
	}
	kept := s.transactions[:0:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
	return nil
}

func (s *TransactionStore) All() []*dto.TransactionRead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*dto.TransactionRead, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *TransactionStore) ByType(kind domain.EntryType) []*dto.TransactionRead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*dto.TransactionRead
	for _, t := range s.transactions {
		if t.Type == kind {
			out = append(out, t)
		}
	}
	return out
}

// Totals derives income, expense and balance from the cache.
func (s *TransactionStore) Totals() transaction.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var t transaction.Totals
	for _, tx := range s.transactions {
		t.Add(tx.Type, tx.Amount)
	}
	return t
}

func (s *TransactionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *TransactionStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
