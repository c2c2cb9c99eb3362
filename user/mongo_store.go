package user

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

// mongoStore provides MongoDB access to user data
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

// Create inserts a new user. A zero id is assigned before the insert; no
// userName collision check is performed.
func (s *mongoStore) Create(ctx context.Context, u *User) error {
	if err := s.guard(u); err != nil {
		return err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicateKey
	}
	return err
}

// FindByID finds a user by its hex id
func (s *mongoStore) FindByID(ctx context.Context, id string) (*User, error) {
	if s.closed.Load() {
		return nil, store.ErrStoreClosed
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

// FindByName finds the oldest user with the given userName
func (s *mongoStore) FindByName(ctx context.Context, userName string) (*User, error) {
	if s.closed.Load() {
		return nil, store.ErrStoreClosed
	}
	return s.findOne(ctx, bson.M{"userName": userName})
}

// FindByEmail finds the oldest user with the given email
func (s *mongoStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if s.closed.Load() {
		return nil, store.ErrStoreClosed
	}
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *mongoStore) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var u User
	err := s.collection.FindOne(ctx, filter,
		options.FindOne().SetSort(bson.M{"_id": 1})).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Update replaces the whole document, inserting it when absent
func (s *mongoStore) Update(ctx context.Context, u *User) error {
	if err := s.guard(u); err != nil {
		return err
	}
	if u.ID.IsZero() {
		return store.ErrInvalidID
	}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": u.ID}, u,
		options.Replace().SetUpsert(true))
	return err
}

// Delete removes the document keyed by the user's id
func (s *mongoStore) Delete(ctx context.Context, u *User) error {
	if err := s.guard(u); err != nil {
		return err
	}
	if u.ID.IsZero() {
		return store.ErrInvalidID
	}
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": u.ID})
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
func (s *mongoStore) guard(u *User) error {
	if s.closed.Load() {
		return store.ErrStoreClosed
	}
	if u == nil {
		return store.ErrNilUser
	}
	return nil
}
