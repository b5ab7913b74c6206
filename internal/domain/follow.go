package domain

import "context"

// Follow is a directed edge: Follower follows Followee. The pair is unique
// and a user never follows themselves.
type Follow struct {
	Base
	Follower ID `json:"follower"`
	Followee ID `json:"followee"`
}

// FollowService owns the follow graph and the feeds derived from it.
type FollowService interface {
	// Follow records follower → followee. Self-follow and an existing edge
	// fail with ErrBadValues; an unknown followee fails with ErrNotFound.
	Follow(ctx context.Context, follower, followee ID) error
	// Unfollow removes the edge, failing with ErrBadValues "not following"
	// when it does not exist.
	Unfollow(ctx context.Context, follower, followee ID) error
	// GetFollowing returns the users that user follows.
	GetFollowing(ctx context.Context, user ID) ([]*User, error)
	// GetFollowers returns the users following user.
	GetFollowers(ctx context.Context, user ID) ([]*User, error)
	// FeedPosts returns the posts of every followed user, newest update
	// first.
	FeedPosts(ctx context.Context, user ID) ([]*Post, error)
	// FeedBoards returns the boards of every followed user, newest update
	// first.
	FeedBoards(ctx context.Context, user ID) ([]*Board, error)
	// DeleteAllForUser removes every edge touching user, in either
	// direction, as part of account deletion.
	DeleteAllForUser(ctx context.Context, user ID) error
}
