package seed

import (
	"context"
	"testing"

	"marketplace/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeInserter[T any] struct {
	entity string
	calls  *[]string
	err    error
	rows   []T
}

func (f *fakeInserter[T]) InsertAll(ctx context.Context, recs []T) error {
	*f.calls = append(*f.calls, f.entity)
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, recs...)
	return nil
}

type fakeRecorder map[string]int

func (r fakeRecorder) RecordSeeded(entity string, n int) { r[entity] += n }

type loaderFixture struct {
	calls  []string
	users  *fakeInserter[models.User]
	offers *fakeInserter[models.Offer]
	orders *fakeInserter[models.Order]
	rec    fakeRecorder
	loader *Loader
}

func newLoaderFixture(t *testing.T) *loaderFixture {
	f := &loaderFixture{rec: fakeRecorder{}}
	f.users = &fakeInserter[models.User]{entity: "users", calls: &f.calls}
	f.offers = &fakeInserter[models.Offer]{entity: "offers", calls: &f.calls}
	f.orders = &fakeInserter[models.Order]{entity: "orders", calls: &f.calls}
	f.loader = NewLoader(f.users, f.offers, f.orders, zaptest.NewLogger(t), f.rec)
	return f
}

func defaultBatch(t *testing.T) *Batch {
	ds, err := Default()
	require.NoError(t, err)
	b, err := ds.Build()
	require.NoError(t, err)
	return b
}

func TestLoadOrder(t *testing.T) {
	f := newLoaderFixture(t)
	b := defaultBatch(t)

	require.NoError(t, f.loader.Load(t.Context(), b))

	require.Equal(t, []string{"users", "offers", "orders"}, f.calls)
	require.Equal(t, fakeRecorder{"users": 6, "offers": 6, "orders": 5}, f.rec)

	// каждая сид-запись доступна по своему id без изменений
	byID := map[int]models.Order{}
	for _, o := range f.orders.rows {
		byID[o.ID] = o
	}
	for _, want := range b.Orders {
		require.Equal(t, want, byID[want.ID])
	}
	require.ElementsMatch(t, b.Users, f.users.rows)
	require.ElementsMatch(t, b.Offers, f.offers.rows)
}

func TestLoadStopsOnFailure(t *testing.T) {
	f := newLoaderFixture(t)
	f.offers.err = models.ErrDuplicateID

	err := f.loader.Load(t.Context(), defaultBatch(t))

	require.ErrorIs(t, err, models.ErrDuplicateID)
	require.Contains(t, err.Error(), "seed offers")
	require.Equal(t, []string{"users", "offers"}, f.calls)
	require.Len(t, f.users.rows, 6)
	require.Empty(t, f.orders.rows)
	require.Equal(t, fakeRecorder{"users": 6}, f.rec)
}

func TestLoadEmptyBatch(t *testing.T) {
	f := newLoaderFixture(t)

	require.NoError(t, f.loader.Load(t.Context(), &Batch{}))
	require.Equal(t, fakeRecorder{"users": 0, "offers": 0, "orders": 0}, f.rec)
	require.Equal(t, []string{"users", "offers", "orders"}, f.calls)
}
