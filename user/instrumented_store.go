package user

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

func (s *instrumentedStore) Create(ctx context.Context, u *User) error {
	return store.InstrumentVoid(ctx, collectionName, "Create", func() error {
		return s.inner.Create(ctx, u)
	})
}

func (s *instrumentedStore) FindByID(ctx context.Context, id string) (*User, error) {
	return store.Instrument(ctx, collectionName, "FindByID", func() (*User, error) {
		return s.inner.FindByID(ctx, id)
	})
}

func (s *instrumentedStore) FindByName(ctx context.Context, userName string) (*User, error) {
	return store.Instrument(ctx, collectionName, "FindByName", func() (*User, error) {
		return s.inner.FindByName(ctx, userName)
	})
}

func (s *instrumentedStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	return store.Instrument(ctx, collectionName, "FindByEmail", func() (*User, error) {
		return s.inner.FindByEmail(ctx, email)
	})
}

func (s *instrumentedStore) Update(ctx context.Context, u *User) error {
	return store.InstrumentVoid(ctx, collectionName, "Update", func() error {
		return s.inner.Update(ctx, u)
	})
}

func (s *instrumentedStore) Delete(ctx context.Context, u *User) error {
	return store.InstrumentVoid(ctx, collectionName, "Delete", func() error {
		return s.inner.Delete(ctx, u)
	})
}

func (s *instrumentedStore) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}
