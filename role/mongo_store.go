package role

import (
	"context"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go.identistore.tech/mongostore"
	"go.identistore.tech/store"
)

// Role represents a named permission group
type Role struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// mongoStore provides MongoDB access to role data
type mongoStore struct {
	client     *mongostore.Client
	collection *mongo.Collection
	closed     atomic.Bool
}

func newMongoStore(client *mongostore.Client) *mongoStore {
	return &mongoStore{
		client:     client,
		collection: client.Collection(collectionName),
	}
}

// Create inserts a new role. A zero id is assigned before the insert; no
// name collision check is performed.
func (s *mongoStore) Create(ctx context.Context, r *Role) error {
	if err := s.guard(r); err != nil {
		return err
	}
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, r)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicateKey
	}
	return err
}

// FindByID finds a role by its hex id
func (s *mongoStore) FindByID(ctx context.Context, id string) (*Role, error) {
	if s.closed.Load() {
		return nil, store.ErrStoreClosed
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	var r Role
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&r)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// FindByName finds the oldest role with the given name
func (s *mongoStore) FindByName(ctx context.Context, name string) (*Role, error) {
	if s.closed.Load() {
		return nil, store.ErrStoreClosed
	}

	var r Role
	err := s.collection.FindOne(ctx, bson.M{"name": name},
		options.FindOne().SetSort(bson.M{"_id": 1})).Decode(&r)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// Update replaces the whole document, inserting it when absent
func (s *mongoStore) Update(ctx context.Context, r *Role) error {
	if err := s.guard(r); err != nil {
		return err
	}
	if r.ID.IsZero() {
		return store.ErrInvalidID
	}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": r.ID}, r,
		options.Replace().SetUpsert(true))
	return err
}

// Delete removes the document keyed by the role's id
func (s *mongoStore) Delete(ctx context.Context, r *Role) error {
	if err := s.guard(r); err != nil {
		return err
	}
	if r.ID.IsZero() {
		return store.ErrInvalidID
	}
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": r.ID})
	return err
}

// Close marks the store closed and disconnects an owned connection.
// Close is idempotent.
func (s *mongoStore) Close(ctx context.Context) error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.client.Close(ctx)
}

// guard runs the checks every write shares, before any driver call.
func (s *mongoStore) guard(r *Role) error {
	if s.closed.Load() {
		return store.ErrStoreClosed
	}
	if r == nil {
		return store.ErrNilRole
	}
	return nil
}
