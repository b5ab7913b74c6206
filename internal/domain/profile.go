package domain

import "context"

// Profile holds the presentation data attached to a user: one per account,
// created at registration. The user reference is immutable.
// swagger:model Profile
type Profile struct {
	Base
	User      ID     `json:"user"`
	Avatar    string `json:"avatar"`
	Biography string `json:"biography"`
}

// Profile field names accepted by ProfileService.Update.
const (
	FieldAvatar    = "avatar"
	FieldBiography = "biography"
)

// ProfileService owns the profiles collection.
type ProfileService interface {
	// Create stores an empty profile for user. Called once at registration.
	Create(ctx context.Context, user ID) (*Profile, error)
	// GetByUser returns the user's profile or ErrNotFound.
	GetByUser(ctx context.Context, user ID) (*Profile, error)
	// GetAll returns every profile, newest update first.
	GetAll(ctx context.Context) ([]*Profile, error)
	// Update merges patch into the user's profile. Only avatar and
	// biography may change; any other key fails with FieldNotAllowedError.
	Update(ctx context.Context, user ID, patch Patch) (*Profile, error)
	// DeleteByUser removes the user's profile as part of account deletion.
	DeleteByUser(ctx context.Context, user ID) error
}
