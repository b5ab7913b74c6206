package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pc0808/easel/internal/domain"
)

func newProfileFixture() (domain.ProfileService, *fakeCollection[domain.Profile]) {
	profiles := newFakeCollection[domain.Profile]()
	return NewProfileService(profiles, testTimeout), profiles
}

func TestProfileService_CreateAndGet(t *testing.T) {
	svc, _ := newProfileFixture()
	user := domain.NewID()

	profile, err := svc.Create(context.Background(), user)
	require.NoError(t, err)
	require.False(t, profile.ID.IsZero())
	assert.Equal(t, user, profile.User)
	assert.Empty(t, profile.Avatar)
	assert.Empty(t, profile.Biography)

	got, err := svc.GetByUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	_, err = svc.GetByUser(context.Background(), domain.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileService_Update(t *testing.T) {
	svc, _ := newProfileFixture()
	user := domain.NewID()

	_, err := svc.Create(context.Background(), user)
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), user, domain.Patch{
		"avatar":    "https://img.example/alice.png",
		"biography": "painter",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/alice.png", got.Avatar)
	assert.Equal(t, "painter", got.Biography)
}

func TestProfileService_UpdateRejectsProtectedFields(t *testing.T) {
	svc, _ := newProfileFixture()
	user := domain.NewID()

	_, err := svc.Create(context.Background(), user)
	require.NoError(t, err)

	for _, field := range []string{"user", "id", "dateCreated"} {
		t.Run(field, func(t *testing.T) {
			_, err := svc.Update(context.Background(), user, domain.Patch{field: domain.NewID()})
			assert.ErrorIs(t, err, domain.ErrNotAllowed)
			var fieldErr *domain.FieldNotAllowedError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, field, fieldErr.Field)
		})
	}

	// The owning user reference survives every rejected patch.
	got, err := svc.GetByUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, got.User)
}

func TestProfileService_UpdateUnknownUser(t *testing.T) {
	svc, _ := newProfileFixture()

	_, err := svc.Update(context.Background(), domain.NewID(), domain.Patch{"avatar": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileService_DeleteByUser(t *testing.T) {
	svc, _ := newProfileFixture()
	user := domain.NewID()

	_, err := svc.Create(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByUser(context.Background(), user))
	_, err = svc.GetByUser(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteByUser(context.Background(), user), domain.ErrNotFound)
}

func TestProfileService_StoreFailure(t *testing.T) {
	svc, profiles := newProfileFixture()
	profiles.err = errors.New("connection refused")

	_, err := svc.Create(context.Background(), domain.NewID())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBadValues)
}
