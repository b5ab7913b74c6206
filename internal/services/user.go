package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

const minPasswordLen = 8

var usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// Patch field names accepted by UserService.Update.
const (
	fieldUsername = "username"
	fieldPassword = "password"
)

type userService struct {
	users          domain.Collection[domain.User]
	hasher         domain.PasswordHasher
	profiles       domain.ProfileService
	posts          domain.ContentService[string]
	boards         domain.BoardService
	postTags       domain.TagService
	boardTags      domain.TagService
	follows        domain.FollowService
	contextTimeout time.Duration
}

// NewUserService returns a UserService. It holds the other services because
// account deletion is the one sanctioned compound flow: it walks everything
// the account owns.
func NewUserService(
	users domain.Collection[domain.User],
	hasher domain.PasswordHasher,
	profiles domain.ProfileService,
	posts domain.ContentService[string],
	boards domain.BoardService,
	postTags domain.TagService,
	boardTags domain.TagService,
	follows domain.FollowService,
	timeout time.Duration,
) domain.UserService {
	return &userService{
		users:          users,
		hasher:         hasher,
		profiles:       profiles,
		posts:          posts,
		boards:         boards,
		postTags:       postTags,
		boardTags:      boardTags,
		follows:        follows,
		contextTimeout: timeout,
	}
}

func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !usernameRegexp.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-32 characters of letters, digits, '_', '.' or '-'", domain.ErrBadValues)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrBadValues, minPasswordLen)
	}
	if _, err := s.users.ReadOne(ctx, domain.Filter{"username": username}); err == nil {
		return nil, fmt.Errorf("%w: username %q already taken", domain.ErrBadValues, username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{Username: username, PasswordHash: hash, Salt: salt}
	if _, err := s.users.CreateOne(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBadValues) {
			return nil, fmt.Errorf("%w: username %q already taken", domain.ErrBadValues, username)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	if _, err := s.profiles.Create(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.users.ReadOne(ctx, domain.Filter{"username": username})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", domain.ErrNotAllowed)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrNotAllowed)
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.users.ReadOne(ctx, domain.Filter{"id": id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.users.ReadOne(ctx, domain.Filter{"username": username})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, err := s.users.ReadMany(ctx, nil, domain.ReadOptions{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Exists(ctx context.Context, id domain.ID) error {
	_, err := s.GetByID(ctx, id)
	return err
}

func (s *userService) Update(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stored := domain.Patch{}
	for field, value := range patch {
		switch field {
		case fieldUsername:
			username, ok := value.(string)
			if !ok || !usernameRegexp.MatchString(username) {
				return nil, fmt.Errorf("%w: invalid username", domain.ErrBadValues)
			}
			existing, err := s.users.ReadOne(ctx, domain.Filter{"username": username})
			if err == nil && existing.ID != id {
				return nil, fmt.Errorf("%w: username %q already taken", domain.ErrBadValues, username)
			} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("check username: %w", err)
			}
			stored[fieldUsername] = username
		case fieldPassword:
			password, ok := value.(string)
			if !ok || len(password) < minPasswordLen {
				return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrBadValues, minPasswordLen)
			}
			salt, err := s.hasher.GenerateSalt()
			if err != nil {
				return nil, fmt.Errorf("generate salt: %w", err)
			}
			hash, err := s.hasher.Hash(salt, password)
			if err != nil {
				return nil, fmt.Errorf("hash password: %w", err)
			}
			stored["salt"] = salt
			stored["passwordHash"] = hash
		default:
			return nil, &domain.FieldNotAllowedError{Field: field}
		}
	}
	if err := s.users.UpdateOne(ctx, domain.Filter{"id": id}, stored); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.Exists(ctx, id); err != nil {
		return err
	}

	posts, err := s.posts.GetByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}
	boards, err := s.boards.GetByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("list boards: %w", err)
	}

	// Index first, content second: a crash in between leaves orphaned
	// content, never an index pointing at deleted content.
	if err := s.postTags.DeleteTagsForContent(ctx, contentIDs(posts)); err != nil {
		return fmt.Errorf("clean post tags: %w", err)
	}
	if err := s.boardTags.DeleteTagsForContent(ctx, contentIDs(boards)); err != nil {
		return fmt.Errorf("clean board tags: %w", err)
	}
	if err := s.posts.DeleteAllByAuthor(ctx, id); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	if err := s.boards.DeleteAllByAuthor(ctx, id); err != nil {
		return fmt.Errorf("delete boards: %w", err)
	}
	if err := s.profiles.DeleteByUser(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.follows.DeleteAllForUser(ctx, id); err != nil {
		return fmt.Errorf("delete follow edges: %w", err)
	}
	if err := s.users.DeleteOne(ctx, domain.Filter{"id": id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func contentIDs[T any](docs []*domain.Content[T]) []domain.ID {
	ids := make([]domain.ID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids
}
