package domain

import (
	"context"
	"time"
)

// User is a registered account. PasswordHash and Salt are stored with the
// document; the delivery layer responds with PublicUser instead.
type User struct {
	Base
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Salt         string `json:"salt"`
}

// PublicUser is the externally visible shape of a user.
// swagger:model PublicUser
type PublicUser struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}

// Public strips the credential fields.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Username: u.Username}
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues bearer tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID ID, username string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (ID, error)
}

// UserService handles accounts: registration, authentication, profile-free
// account updates, and the cascading account deletion flow.
type UserService interface {
	// Register creates a user (ErrBadValues on a taken username) and an
	// empty profile for it.
	Register(ctx context.Context, username, password string) (*User, error)
	// Authenticate checks the credentials and returns the user. Unknown
	// username and wrong password both fail with ErrNotAllowed.
	Authenticate(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id ID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetAll returns every account, newest update first.
	GetAll(ctx context.Context) ([]*User, error)
	// Exists returns nil when the user exists, ErrNotFound otherwise.
	Exists(ctx context.Context, id ID) error
	// Update changes username and/or password. Any other patch key fails
	// with FieldNotAllowedError; a taken username fails with ErrBadValues.
	Update(ctx context.Context, id ID, patch Patch) (*User, error)
	// Delete removes the account and everything it owns: tag-index entries
	// for the user's content, then the user's posts and boards, the
	// profile, the follow edges, and finally the user record. The steps are
	// separate writes; the tag index is cleaned first so a partial failure
	// never leaves it pointing at deleted content.
	Delete(ctx context.Context, id ID) error
}
