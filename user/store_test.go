package user

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go.identistore.tech/store"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Failed to create driver client: %v", err)
	}

	return NewStore(client.Database("identity_test"))
}

func TestCreateNilUser(t *testing.T) {
	s := newTestStore(t)

	err := s.Create(context.Background(), nil)
	if !errors.Is(err, store.ErrNilUser) {
		t.Errorf("Expected ErrNilUser, got %v", err)
	}
}

func TestFindByIDMalformed(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindByID(context.Background(), "not-an-object-id")
	if !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
}

func TestUpdateZeroID(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(context.Background(), &User{UserName: "alice"})
	if !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
}

func TestOperationsAfterClose(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	u := &User{UserName: "alice"}

	if err := s.Create(ctx, u); !errors.Is(err, store.ErrStoreClosed) {
		t.Errorf("Expected ErrStoreClosed from Create, got %v", err)
	}

	if _, err := s.FindByName(ctx, "alice"); !errors.Is(err, store.ErrStoreClosed) {
		t.Errorf("Expected ErrStoreClosed from FindByName, got %v", err)
	}

	if _, err := s.FindByEmail(ctx, "alice@example.com"); !errors.Is(err, store.ErrStoreClosed) {
		t.Errorf("Expected ErrStoreClosed from FindByEmail, got %v", err)
	}
}

// === Entity helper tests ===

func TestRoleMembership(t *testing.T) {
	u := &User{UserName: "alice"}

	u.AddRole("Admin")
	u.AddRole("Admin") // duplicate is a no-op
	u.AddRole("Editor")

	if len(u.Roles) != 2 {
		t.Fatalf("Expected 2 roles, got %d", len(u.Roles))
	}

	if !u.HasRole("Admin") {
		t.Error("Expected user to have role 'Admin'")
	}

	u.RemoveRole("Admin")

	if u.HasRole("Admin") {
		t.Error("Expected role 'Admin' to be removed")
	}

	if !u.HasRole("Editor") {
		t.Error("Expected role 'Editor' to survive removal of 'Admin'")
	}
}

func TestClaims(t *testing.T) {
	u := &User{UserName: "alice"}

	u.AddClaim("scope", "read")
	u.AddClaim("scope", "write")
	u.AddClaim("tenant", "acme")

	if len(u.Claims) != 3 {
		t.Fatalf("Expected 3 claims, got %d", len(u.Claims))
	}

	u.RemoveClaim("scope", "read")

	if len(u.Claims) != 2 {
		t.Fatalf("Expected 2 claims after removal, got %d", len(u.Claims))
	}

	for _, c := range u.Claims {
		if c.Type == "scope" && c.Value == "read" {
			t.Error("Expected scope=read claim to be removed")
		}
	}
}

func TestLogins(t *testing.T) {
	u := &User{UserName: "alice"}

	u.AddLogin("google", "g-123")
	u.AddLogin("google", "g-123") // duplicate is a no-op
	u.AddLogin("github", "gh-456")

	if len(u.Logins) != 2 {
		t.Fatalf("Expected 2 logins, got %d", len(u.Logins))
	}

	u.RemoveLogin("google", "g-123")

	if len(u.Logins) != 1 {
		t.Fatalf("Expected 1 login after removal, got %d", len(u.Logins))
	}

	if u.Logins[0].Provider != "github" {
		t.Errorf("Expected github login to survive, got '%s'", u.Logins[0].Provider)
	}
}
