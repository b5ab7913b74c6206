package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pc0808/easel/internal/domain"
)

func newBoardFixture(t *testing.T) (domain.BoardService, domain.ContentService[string], domain.ID) {
	t.Helper()
	posts := NewContentRegistry[string](newFakeCollection[domain.Post](), testTimeout)
	boards := NewBoardService(newFakeCollection[domain.Board](), posts, testTimeout)
	return boards, posts, domain.NewID()
}

func TestBoardService_AddRemovePost(t *testing.T) {
	boards, posts, author := newBoardFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, author, "a post", "body", nil)
	require.NoError(t, err)
	board, err := boards.Create(ctx, author, "a board", []domain.ID{}, nil)
	require.NoError(t, err)

	require.NoError(t, boards.AddPost(ctx, board.ID, post.ID))

	got, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{post.ID}, got.Content)

	member, err := boards.IsMember(ctx, board.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, member)

	require.NoError(t, boards.RemovePost(ctx, board.ID, post.ID))

	got, err = boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Content)

	member, err = boards.IsMember(ctx, board.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, member)
}

func TestBoardService_AddPostDuplicate(t *testing.T) {
	boards, posts, author := newBoardFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, author, "a post", "body", nil)
	require.NoError(t, err)
	board, err := boards.Create(ctx, author, "a board", []domain.ID{}, nil)
	require.NoError(t, err)
	require.NoError(t, boards.AddPost(ctx, board.ID, post.ID))

	err = boards.AddPost(ctx, board.ID, post.ID)
	assert.ErrorIs(t, err, domain.ErrBadValues)
	assert.True(t, strings.Contains(err.Error(), "already in board"))

	got, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, got.Content, 1, "failed add must not change membership")
}

// Membership is keyed on identity, not on the spelling of the ID: an ID
// parsed back from an uppercased string is the same member.
func TestBoardService_AddPostCanonicalIdentity(t *testing.T) {
	boards, posts, author := newBoardFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, author, "a post", "body", nil)
	require.NoError(t, err)
	board, err := boards.Create(ctx, author, "a board", []domain.ID{}, nil)
	require.NoError(t, err)

	respelled, err := domain.ParseID(strings.ToUpper(post.ID.String()))
	require.NoError(t, err)
	require.Equal(t, post.ID, respelled)

	require.NoError(t, boards.AddPost(ctx, board.ID, post.ID))
	err = boards.AddPost(ctx, board.ID, respelled)
	assert.ErrorIs(t, err, domain.ErrBadValues)
}

func TestBoardService_RemovePostAbsent(t *testing.T) {
	boards, posts, author := newBoardFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, author, "a post", "body", nil)
	require.NoError(t, err)
	board, err := boards.Create(ctx, author, "a board", []domain.ID{}, nil)
	require.NoError(t, err)

	err = boards.RemovePost(ctx, board.ID, post.ID)
	assert.ErrorIs(t, err, domain.ErrBadValues)
	assert.True(t, strings.Contains(err.Error(), "not in board"))
}

func TestBoardService_AddPostMissingEither(t *testing.T) {
	boards, posts, author := newBoardFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, author, "a post", "body", nil)
	require.NoError(t, err)
	board, err := boards.Create(ctx, author, "a board", []domain.ID{}, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, boards.AddPost(ctx, domain.NewID(), post.ID), domain.ErrNotFound)
	assert.ErrorIs(t, boards.AddPost(ctx, board.ID, domain.NewID()), domain.ErrNotFound)
}

func TestBoardService_UpdateCannotTouchMembership(t *testing.T) {
	boards, _, author := newBoardFixture(t)
	ctx := context.Background()

	board, err := boards.Create(ctx, author, "a board", []domain.ID{}, nil)
	require.NoError(t, err)

	_, err = boards.Update(ctx, board.ID, domain.Patch{"caption": "renamed"})
	require.NoError(t, err)

	_, err = boards.Update(ctx, board.ID, domain.Patch{"author": domain.NewID()})
	assert.ErrorIs(t, err, domain.ErrNotAllowed)

	// Membership only moves through AddPost/RemovePost, where the duplicate
	// and existence checks live; a wholesale member-list patch is rejected.
	_, err = boards.Update(ctx, board.ID, domain.Patch{"content": []domain.ID{domain.NewID()}})
	assert.ErrorIs(t, err, domain.ErrNotAllowed)
	var fieldErr *domain.FieldNotAllowedError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "content", fieldErr.Field)

	got, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Content)
}
