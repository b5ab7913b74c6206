package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

type profileService struct {
	profiles       domain.Collection[domain.Profile]
	contextTimeout time.Duration
}

// NewProfileService returns a ProfileService owning the profiles collection.
func NewProfileService(profiles domain.Collection[domain.Profile], timeout time.Duration) domain.ProfileService {
	return &profileService{profiles: profiles, contextTimeout: timeout}
}

func (s *profileService) Create(ctx context.Context, user domain.ID) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile := &domain.Profile{User: user, Avatar: "", Biography: ""}
	if _, err := s.profiles.CreateOne(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetByUser(ctx context.Context, user domain.ID) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := s.profiles.ReadOne(ctx, domain.Filter{"user": user})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profiles, err := s.profiles.ReadMany(ctx, nil, domain.ReadOptions{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (s *profileService) Update(ctx context.Context, user domain.ID, patch domain.Patch) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	for field := range patch {
		if field != domain.FieldAvatar && field != domain.FieldBiography {
			return nil, &domain.FieldNotAllowedError{Field: field}
		}
	}
	if err := s.profiles.UpdateOne(ctx, domain.Filter{"user": user}, patch); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.GetByUser(ctx, user)
}

func (s *profileService) DeleteByUser(ctx context.Context, user domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.profiles.DeleteOne(ctx, domain.Filter{"user": user}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
