package handlers_test

import (
	"context"
	"sort"
	"sync"

	"marketplace/models"
)

// memRepo - хранилище в памяти с тем же контрактом, что и db.Table
type memRepo[T any] struct {
	mu      sync.Mutex
	idOf    func(T) int
	rows    map[int]T
	listErr error
	saveErr error
}

func newMemRepo[T any](idOf func(T) int, recs ...T) *memRepo[T] {
	m := &memRepo[T]{idOf: idOf, rows: map[int]T{}}
	for _, rec := range recs {
		m.rows[idOf(rec)] = rec
	}
	return m
}

func (m *memRepo[T]) Create(ctx context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	id := m.idOf(*rec)
	if _, ok := m.rows[id]; ok {
		return models.ErrDuplicateID
	}
	m.rows[id] = *rec
	return nil
}

func (m *memRepo[T]) GetByID(ctx context.Context, id int) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &rec, nil
}

func (m *memRepo[T]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	recs := make([]T, 0, len(m.rows))
	for _, rec := range m.rows {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return m.idOf(recs[i]) < m.idOf(recs[j]) })
	return recs, nil
}

func (m *memRepo[T]) Update(ctx context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	id := m.idOf(*rec)
	if _, ok := m.rows[id]; !ok {
		return models.ErrNotFound
	}
	m.rows[id] = *rec
	return nil
}

func (m *memRepo[T]) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func userID(u models.User) int   { return u.ID }
func orderID(o models.Order) int { return o.ID }
func offerID(o models.Offer) int { return o.ID }
