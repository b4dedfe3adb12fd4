// Package fixtures provides an in-memory Unit of Work for service and
// handler tests. It keeps the guarantees of the Postgres schema that the
// services rely on: unique (user, category name), unique user email, the
// transaction to category foreign key and ownership scoping.
package fixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/repository"
	"github.com/Enryuk3/kash-app/pkg/repository/category"
	"github.com/Enryuk3/kash-app/pkg/repository/goal"
	"github.com/Enryuk3/kash-app/pkg/repository/transaction"
	"github.com/Enryuk3/kash-app/pkg/repository/user"
	"github.com/google/uuid"
)

var _ repository.UnitOfWork = (*Store)(nil)

type tables struct {
	users        map[uuid.UUID]dto.UserRead
	categories   map[uuid.UUID]dto.CategoryRead
	goals        map[uuid.UUID]dto.GoalRead
	transactions map[uuid.UUID]dto.TransactionRead
}

func newTables() tables {
	return tables{
		users:        map[uuid.UUID]dto.UserRead{},
		categories:   map[uuid.UUID]dto.CategoryRead{},
		goals:        map[uuid.UUID]dto.GoalRead{},
		transactions: map[uuid.UUID]dto.TransactionRead{},
	}
}

func (t tables) clone() tables {
	c := newTables()
	for k, v := range t.users {
		c.users[k] = v
	}
	for k, v := range t.categories {
		c.categories[k] = v
	}
	for k, v := range t.goals {
		c.goals[k] = v
	}
	for k, v := range t.transactions {
		c.transactions[k] = v
	}
	return c
}

// Store is an in-memory repository.UnitOfWork. Do serializes transactions
// and restores a snapshot when fn fails.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data tables

	failures map[string]error
	clock    time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data:     newTables(),
		failures: map[string]error{},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FailWith makes every call of op return err until cleared with a nil err.
// Operation names are "<entity>.<Method>", e.g. "category.CreateBatch".
func (s *Store) FailWith(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Counts reports the number of stored rows per table.
func (s *Store) Counts() (users, categories, goals, transactions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.users), len(s.data.categories), len(s.data.goals), len(s.data.transactions)
}

func (s *Store) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(txStore{s}); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) CategoryRepository() (category.Repository, error) {
	return categoryRepo{s}, nil
}

func (s *Store) GoalRepository() (goal.Repository, error) {
	return goalRepo{s}, nil
}

func (s *Store) TransactionRepository() (transaction.Repository, error) {
	return transactionRepo{s}, nil
}

func (s *Store) UserRepository() (user.Repository, error) {
	return userRepo{s}, nil
}

// txStore is handed to Do callbacks. Nested Do calls join the running
// transaction.
type txStore struct {
	*Store
}

func (t txStore) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(t)
}

// lock acquires the data lock for op. When a failure is configured for op
// the lock is released and the failure returned.
func (s *Store) lock(op string) error {
	s.mu.Lock()
	if err := s.failures[op]; err != nil {
		s.mu.Unlock()
		return err
	}
	return nil
}

// tick returns a strictly increasing timestamp so ordering by creation time
// is deterministic.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

type categoryRepo struct{ s *Store }

func (r categoryRepo) insert(c *dto.CategoryCreate) (dto.CategoryRead, error) {
	for _, existing := range r.s.data.categories {
		if existing.UserID == c.UserID && existing.Name == c.Name {
			return dto.CategoryRead{}, domain.ErrAlreadyExists
		}
	}
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	row := dto.CategoryRead{
		ID:        id,
		Name:      c.Name,
		Type:      c.Type,
		Icon:      c.Icon,
		Color:     c.Color,
		UserID:    c.UserID,
		CreatedAt: r.s.tick(),
	}
	r.s.data.categories[id] = row
	return row, nil
}

func (r categoryRepo) Create(_ context.Context, c *dto.CategoryCreate) (*dto.CategoryRead, error) {
	if err := r.s.lock("category.Create"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	row, err := r.insert(c)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r categoryRepo) CreateBatch(_ context.Context, creates []*dto.CategoryCreate) (int64, error) {
	if err := r.s.lock("category.CreateBatch"); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	for _, c := range creates {
		if _, err := r.insert(c); err == nil {
			n++
		}
	}
	return n, nil
}

func (r categoryRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*dto.CategoryRead, error) {
	if err := r.s.lock("category.ListForUser"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	out := make([]*dto.CategoryRead, 0)
	for _, c := range r.s.data.categories {
		if c.UserID == userID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r categoryRepo) GetForUser(_ context.Context, id, userID uuid.UUID) (*dto.CategoryRead, error) {
	if err := r.s.lock("category.GetForUser"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	c, ok := r.s.data.categories[id]
	if !ok || c.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r categoryRepo) GetByNameForUser(_ context.Context, name string, userID uuid.UUID) (*dto.CategoryRead, error) {
	if err := r.s.lock("category.GetByNameForUser"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, c := range r.s.data.categories {
		if c.UserID == userID && c.Name == name {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r categoryRepo) CountForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	if err := r.s.lock("category.CountForUser"); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	var n int64
	for _, c := range r.s.data.categories {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

type goalRepo struct{ s *Store }

func (r goalRepo) Create(_ context.Context, c *dto.GoalCreate) (*dto.GoalRead, error) {
	if err := r.s.lock("goal.Create"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := r.s.tick()
	row := dto.GoalRead{
		ID:            id,
		Name:          c.Name,
		Description:   c.Description,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		TargetDate:    c.TargetDate,
		IsCompleted:   c.IsCompleted,
		UserID:        c.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.s.data.goals[id] = row
	return &row, nil
}

func (r goalRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*dto.GoalRead, error) {
	if err := r.s.lock("goal.ListForUser"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	out := make([]*dto.GoalRead, 0)
	for _, g := range r.s.data.goals {
		if g.UserID == userID {
			out = append(out, &g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r goalRepo) GetForUser(_ context.Context, id, userID uuid.UUID) (*dto.GoalRead, error) {
	if err := r.s.lock("goal.GetForUser"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	g, ok := r.s.data.goals[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &g, nil
}

func (r goalRepo) UpdateForUser(_ context.Context, id, userID uuid.UUID, u *dto.GoalUpdate) (int64, error) {
	if err := r.s.lock("goal.UpdateForUser"); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	g, ok := r.s.data.goals[id]
	if !ok || g.UserID != userID || u.Empty() {
		return 0, nil
	}
	if u.Name != nil {
		g.Name = *u.Name
	}
	switch {
	case u.ClearDescription:
		g.Description = nil
	case u.Description != nil:
		d := *u.Description
		g.Description = &d
	}
	if u.TargetAmount != nil {
		g.TargetAmount = *u.TargetAmount
	}
	if u.CurrentAmount != nil {
		g.CurrentAmount = *u.CurrentAmount
	}
	switch {
	case u.ClearTargetDate:
		g.TargetDate = nil
	case u.TargetDate != nil:
		d := *u.TargetDate
		g.TargetDate = &d
	}
	if u.IsCompleted != nil {
		g.IsCompleted = *u.IsCompleted
	}
	g.UpdatedAt = r.s.tick()
	r.s.data.goals[id] = g
	return 1, nil
}

func (r goalRepo) DeleteForUser(_ context.Context, id, userID uuid.UUID) (int64, error) {
	if err := r.s.lock("goal.DeleteForUser"); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	g, ok := r.s.data.goals[id]
	if !ok || g.UserID != userID {
		return 0, nil
	}
	delete(r.s.data.goals, id)
	return 1, nil
}

type transactionRepo struct{ s *Store }

// owned reports whether t sits under a category of userID.
func (r transactionRepo) owned(t dto.TransactionRead, userID uuid.UUID) (dto.CategoryRead, bool) {
	c, ok := r.s.data.categories[t.CategoryID]
	return c, ok && c.UserID == userID
}

func (r transactionRepo) Create(_ context.Context, c *dto.TransactionCreate) (*dto.TransactionRead, error) {
	if err := r.s.lock("transaction.Create"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.categories[c.CategoryID]; !ok {
		return nil, domain.ErrInvalidReference
	}
	if c.Amount <= 0 {
		return nil, domain.ErrValidation
	}
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := r.s.tick()
	row := dto.TransactionRead{
		ID:          id,
		Type:        c.Type,
		Amount:      c.Amount,
		Description: c.Description,
		Date:        c.Date,
		CategoryID:  c.CategoryID,
		UserID:      c.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.s.data.transactions[id] = row
	return &row, nil
}

func (r transactionRepo) ListForUser(_ context.Context, userID uuid.UUID, kind domain.EntryType) ([]*dto.TransactionRead, error) {
	if err := r.s.lock("transaction.ListForUser"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	out := make([]*dto.TransactionRead, 0)
	for _, t := range r.s.data.transactions {
		c, ok := r.owned(t, userID)
		if !ok || (kind != "" && t.Type != kind) {
			continue
		}
		t.Category = &c
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r transactionRepo) GetForUser(_ context.Context, id, userID uuid.UUID) (*dto.TransactionRead, error) {
	if err := r.s.lock("transaction.GetForUser"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	t, ok := r.s.data.transactions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c, ok := r.owned(t, userID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Category = &c
	return &t, nil
}

func (r transactionRepo) UpdateForUser(_ context.Context, id, userID uuid.UUID, u *dto.TransactionUpdate) (int64, error) {
	if err := r.s.lock("transaction.UpdateForUser"); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	t, ok := r.s.data.transactions[id]
	if !ok {
		return 0, nil
	}
	if _, ok := r.owned(t, userID); !ok {
		return 0, nil
	}
	if _, ok := r.s.data.categories[u.CategoryID]; !ok {
		return 0, domain.ErrInvalidReference
	}
	if u.Amount <= 0 {
		return 0, domain.ErrValidation
	}
	t.Type = u.Type
	t.Amount = u.Amount
	t.Description = u.Description
	t.Date = u.Date
	t.CategoryID = u.CategoryID
	t.UpdatedAt = r.s.tick()
	r.s.data.transactions[id] = t
	return 1, nil
}

func (r transactionRepo) DeleteForUser(_ context.Context, id, userID uuid.UUID) (int64, error) {
	if err := r.s.lock("transaction.DeleteForUser"); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	t, ok := r.s.data.transactions[id]
	if !ok {
		return 0, nil
	}
	if _, ok := r.owned(t, userID); !ok {
		return 0, nil
	}
	delete(r.s.data.transactions, id)
	return 1, nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, c *dto.UserCreate) error {
	if err := r.s.lock("user.Create"); err != nil {
		return err
	}
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.users {
		if u.Email == c.Email {
			return domain.ErrAlreadyExists
		}
	}
	r.s.data.users[c.ID] = dto.UserRead{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	return nil
}

func (r userRepo) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	if err := r.s.lock("user.Get"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*dto.UserRead, error) {
	if err := r.s.lock("user.GetByEmail"); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}
