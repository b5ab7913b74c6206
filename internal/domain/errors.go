package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all services. Services return these (possibly
// wrapped via fmt.Errorf and %w) and the delivery layer maps them to HTTP
// status codes.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBadValues is returned when a precondition is violated: duplicate
	// board membership or tagging, a malformed or reserved tag name,
	// removing a member or tag that is not there.
	ErrBadValues = errors.New("bad values")
	// ErrNotAllowed is returned on an attempted mutation of a protected
	// field or an authorization mismatch.
	ErrNotAllowed = errors.New("not allowed")
	// ErrConflict is returned when a conditional update lost a race with a
	// concurrent writer. The operation had no effect and may be retried.
	ErrConflict = errors.New("conflict")
)

// FieldNotAllowedError reports an update touching a field outside the
// sanctioned set. errors.Is(err, ErrNotAllowed) is true.
type FieldNotAllowedError struct {
	Field string
}

func (e *FieldNotAllowedError) Error() string {
	return fmt.Sprintf("cannot update %q field", e.Field)
}

func (e *FieldNotAllowedError) Unwrap() error { return ErrNotAllowed }

// AuthorMismatchError reports an author-scoped operation attempted by a user
// who is not the content's author. errors.Is(err, ErrNotAllowed) is true.
type AuthorMismatchError struct {
	User    ID
	Content ID
}

func (e *AuthorMismatchError) Error() string {
	return fmt.Sprintf("user %s is not the author of content %s", e.User, e.Content)
}

func (e *AuthorMismatchError) Unwrap() error { return ErrNotAllowed }
