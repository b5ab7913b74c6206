package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pc0808/easel/internal/domain"
)

func TestFollowService_FollowUnfollow(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	alice, err := b.users.Register(ctx, "alice", "hunter2hunter2")
	require.NoError(t, err)
	bob, err := b.users.Register(ctx, "bob", "hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, b.follows.Follow(ctx, alice.ID, bob.ID))

	following, err := b.follows.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)

	followers, err := b.follows.GetFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)

	// Follows are one-way.
	followers, err = b.follows.GetFollowers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	require.NoError(t, b.follows.Unfollow(ctx, alice.ID, bob.ID))
	following, err = b.follows.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollowService_FollowRejections(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	alice, err := b.users.Register(ctx, "alice", "hunter2hunter2")
	require.NoError(t, err)
	bob, err := b.users.Register(ctx, "bob", "hunter2hunter2")
	require.NoError(t, err)

	assert.ErrorIs(t, b.follows.Follow(ctx, alice.ID, alice.ID), domain.ErrBadValues)
	assert.ErrorIs(t, b.follows.Follow(ctx, alice.ID, domain.NewID()), domain.ErrNotFound)

	require.NoError(t, b.follows.Follow(ctx, alice.ID, bob.ID))
	assert.ErrorIs(t, b.follows.Follow(ctx, alice.ID, bob.ID), domain.ErrBadValues)

	assert.ErrorIs(t, b.follows.Unfollow(ctx, bob.ID, alice.ID), domain.ErrBadValues)
}

func TestFollowService_Feeds(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	alice, err := b.users.Register(ctx, "alice", "hunter2hunter2")
	require.NoError(t, err)
	bob, err := b.users.Register(ctx, "bob", "hunter2hunter2")
	require.NoError(t, err)
	carol, err := b.users.Register(ctx, "carol", "hunter2hunter2")
	require.NoError(t, err)

	bobPost, err := b.posts.Create(ctx, bob.ID, "bobs", "1", nil)
	require.NoError(t, err)
	carolPost, err := b.posts.Create(ctx, carol.ID, "carols", "2", nil)
	require.NoError(t, err)
	_, err = b.posts.Create(ctx, alice.ID, "own", "3", nil)
	require.NoError(t, err)
	carolBoard, err := b.boards.Create(ctx, carol.ID, "board", []domain.ID{}, nil)
	require.NoError(t, err)

	require.NoError(t, b.follows.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, b.follows.Follow(ctx, alice.ID, carol.ID))

	feed, err := b.follows.FeedPosts(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2, "own posts are not part of the feed")
	assert.Equal(t, carolPost.ID, feed[0].ID, "newest update first")
	assert.Equal(t, bobPost.ID, feed[1].ID)

	// An edit bubbles the post back up.
	_, err = b.posts.Update(ctx, bobPost.ID, domain.Patch{"caption": "bobs, edited"})
	require.NoError(t, err)
	feed, err = b.follows.FeedPosts(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, bobPost.ID, feed[0].ID)

	boardFeed, err := b.follows.FeedBoards(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, boardFeed, 1)
	assert.Equal(t, carolBoard.ID, boardFeed[0].ID)

	empty, err := b.follows.FeedPosts(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
