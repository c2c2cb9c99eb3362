package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user record as the identity framework shapes it.
// This layer stores the record opaquely: password hashing, credential
// validation, and lockout policy all live in the consuming framework.
// Collection: AspNetUsers
type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName             string             `bson:"userName" json:"userName"`
	Email                string             `bson:"email,omitempty" json:"email,omitempty"`
	EmailConfirmed       bool               `bson:"emailConfirmed" json:"emailConfirmed"`
	PasswordHash         string             `bson:"passwordHash,omitempty" json:"-"` // Never serialize to JSON
	SecurityStamp        string             `bson:"securityStamp,omitempty" json:"-"`
	PhoneNumber          string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	PhoneNumberConfirmed bool               `bson:"phoneNumberConfirmed" json:"phoneNumberConfirmed"`
	TwoFactorEnabled     bool               `bson:"twoFactorEnabled" json:"twoFactorEnabled"`
	LockoutEnd           *time.Time         `bson:"lockoutEnd,omitempty" json:"lockoutEnd,omitempty"`
	LockoutEnabled       bool               `bson:"lockoutEnabled" json:"lockoutEnabled"`
	AccessFailedCount    int                `bson:"accessFailedCount" json:"accessFailedCount"`
	Roles                []string           `bson:"roles,omitempty" json:"roles,omitempty"`
	Claims               []Claim            `bson:"claims,omitempty" json:"claims,omitempty"`
	Logins               []Login            `bson:"logins,omitempty" json:"logins,omitempty"`
}

// Claim is a typed statement about the user, stored verbatim
type Claim struct {
	Type  string `bson:"type" json:"type"`
	Value string `bson:"value" json:"value"`
}

// Login identifies the user at an external login provider
type Login struct {
	Provider    string `bson:"provider" json:"provider"`
	ProviderKey string `bson:"providerKey" json:"providerKey"`
}

// The helpers below mutate the in-memory record only; persistence still
// goes through Store.Update.

// HasRole checks if the user has a specific role
func (u *User) HasRole(roleName string) bool {
	for _, r := range u.Roles {
		if r == roleName {
			return true
		}
	}
	return false
}

// AddRole adds a role to the user if not already present
func (u *User) AddRole(roleName string) {
	if u.HasRole(roleName) {
		return
	}
	u.Roles = append(u.Roles, roleName)
}

// RemoveRole removes a role from the user
func (u *User) RemoveRole(roleName string) {
	for i, r := range u.Roles {
		if r == roleName {
			u.Roles = append(u.Roles[:i], u.Roles[i+1:]...)
			return
		}
	}
}

// AddClaim adds a claim to the user
func (u *User) AddClaim(claimType, value string) {
	u.Claims = append(u.Claims, Claim{Type: claimType, Value: value})
}

// RemoveClaim removes all claims matching type and value
func (u *User) RemoveClaim(claimType, value string) {
	kept := u.Claims[:0]
	for _, c := range u.Claims {
		if c.Type != claimType || c.Value != value {
			kept = append(kept, c)
		}
	}
	u.Claims = kept
}

// AddLogin adds an external login if not already present
func (u *User) AddLogin(provider, providerKey string) {
	for _, l := range u.Logins {
		if l.Provider == provider && l.ProviderKey == providerKey {
			return
		}
	}
	u.Logins = append(u.Logins, Login{Provider: provider, ProviderKey: providerKey})
}

// RemoveLogin removes an external login
func (u *User) RemoveLogin(provider, providerKey string) {
	for i, l := range u.Logins {
		if l.Provider == provider && l.ProviderKey == providerKey {
			u.Logins = append(u.Logins[:i], u.Logins[i+1:]...)
			return
		}
	}
}
