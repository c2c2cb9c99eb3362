package role

import (
	"context"

	"go.identistore.tech/store"
)

// instrumentedStore wraps a Store with metrics and logging
type instrumentedStore struct {
	inner Store
}

// newInstrumentedStore creates an instrumented wrapper around a Store
func newInstrumentedStore(inner Store) Store {
	return &instrumentedStore{inner: inner}
}

func (s *instrumentedStore) Create(ctx context.Context, r *Role) error {
	return store.InstrumentVoid(ctx, collectionName, "Create", func() error {
		return s.inner.Create(ctx, r)
	})
}

func (s *instrumentedStore) FindByID(ctx context.Context, id string) (*Role, error) {
	return store.Instrument(ctx, collectionName, "FindByID", func() (*Role, error) {
		return s.inner.FindByID(ctx, id)
	})
}

func (s *instrumentedStore) FindByName(ctx context.Context, name string) (*Role, error) {
	return store.Instrument(ctx, collectionName, "FindByName", func() (*Role, error) {
		return s.inner.FindByName(ctx, name)
	})
}

func (s *instrumentedStore) Update(ctx context.Context, r *Role) error {
	return store.InstrumentVoid(ctx, collectionName, "Update", func() error {
		return s.inner.Update(ctx, r)
	})
}

func (s *instrumentedStore) Delete(ctx context.Context, r *Role) error {
	return store.InstrumentVoid(ctx, collectionName, "Delete", func() error {
		return s.inner.Delete(ctx, r)
	})
}

func (s *instrumentedStore) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}
