package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

type followService struct {
	follows        domain.Collection[domain.Follow]
	users          domain.Collection[domain.User]
	posts          domain.ContentService[string]
	boards         domain.BoardService
	contextTimeout time.Duration
}

// NewFollowService returns a FollowService owning the follow-edge collection.
func NewFollowService(
	follows domain.Collection[domain.Follow],
	users domain.Collection[domain.User],
	posts domain.ContentService[string],
	boards domain.BoardService,
	timeout time.Duration,
) domain.FollowService {
	return &followService{
		follows:        follows,
		users:          users,
		posts:          posts,
		boards:         boards,
		contextTimeout: timeout,
	}
}

func (s *followService) Follow(ctx context.Context, follower, followee domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if follower == followee {
		return fmt.Errorf("%w: cannot follow yourself", domain.ErrBadValues)
	}
	if _, err := s.users.ReadOne(ctx, domain.Filter{"id": followee}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get followee: %w", err)
	}
	edge := domain.Filter{"follower": follower, "followee": followee}
	if _, err := s.follows.ReadOne(ctx, edge); err == nil {
		return fmt.Errorf("%w: already following", domain.ErrBadValues)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check follow edge: %w", err)
	}
	if _, err := s.follows.CreateOne(ctx, &domain.Follow{Follower: follower, Followee: followee}); err != nil {
		return fmt.Errorf("create follow edge: %w", err)
	}
	return nil
}

func (s *followService) Unfollow(ctx context.Context, follower, followee domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.follows.DeleteOne(ctx, domain.Filter{"follower": follower, "followee": followee})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: not following", domain.ErrBadValues)
		}
		return fmt.Errorf("delete follow edge: %w", err)
	}
	return nil
}

func (s *followService) GetFollowing(ctx context.Context, user domain.ID) ([]*domain.User, error) {
	return s.edgeUsers(ctx, domain.Filter{"follower": user}, func(f *domain.Follow) domain.ID { return f.Followee })
}

func (s *followService) GetFollowers(ctx context.Context, user domain.ID) ([]*domain.User, error) {
	return s.edgeUsers(ctx, domain.Filter{"followee": user}, func(f *domain.Follow) domain.ID { return f.Follower })
}

func (s *followService) edgeUsers(ctx context.Context, filter domain.Filter, pick func(*domain.Follow) domain.ID) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	edges, err := s.follows.ReadMany(ctx, filter, domain.ReadOptions{})
	if err != nil {
		return nil, fmt.Errorf("list follow edges: %w", err)
	}
	users := make([]*domain.User, 0, len(edges))
	for _, edge := range edges {
		user, err := s.users.ReadOne(ctx, domain.Filter{"id": pick(edge)})
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *followService) FeedPosts(ctx context.Context, user domain.ID) ([]*domain.Post, error) {
	following, err := s.GetFollowing(ctx, user)
	if err != nil {
		return nil, err
	}
	feed := make([]*domain.Post, 0)
	for _, followee := range following {
		posts, err := s.posts.GetByAuthor(ctx, followee.ID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, posts...)
	}
	sortNewestFirst(feed)
	return feed, nil
}

func (s *followService) FeedBoards(ctx context.Context, user domain.ID) ([]*domain.Board, error) {
	following, err := s.GetFollowing(ctx, user)
	if err != nil {
		return nil, err
	}
	feed := make([]*domain.Board, 0)
	for _, followee := range following {
		boards, err := s.boards.GetByAuthor(ctx, followee.ID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, boards...)
	}
	sortNewestFirst(feed)
	return feed, nil
}

func (s *followService) DeleteAllForUser(ctx context.Context, user domain.ID) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.follows.DeleteMany(ctx, domain.Filter{"follower": user}); err != nil {
		return fmt.Errorf("delete outgoing edges: %w", err)
	}
	if err := s.follows.DeleteMany(ctx, domain.Filter{"followee": user}); err != nil {
		return fmt.Errorf("delete incoming edges: %w", err)
	}
	return nil
}

func sortNewestFirst[T any](docs []*domain.Content[T]) {
	slices.SortFunc(docs, func(a, b *domain.Content[T]) int {
		return b.DateUpdated.Compare(a.DateUpdated)
	})
}
