package controllers

import (
	"context"
	"slices"
	"time"

	"github.com/pc0808/easel/internal/domain"
)

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	user      *domain.User
	err       error
	deletedID domain.ID
	lastPatch domain.Patch
}

func (f *fakeUserService) Register(_ context.Context, username, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.user.Username = username
	return f.user, nil
}

func (f *fakeUserService) Authenticate(_ context.Context, _, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) GetByID(_ context.Context, _ domain.ID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) GetAll(_ context.Context) ([]*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.User{f.user}, nil
}

func (f *fakeUserService) Exists(_ context.Context, _ domain.ID) error { return f.err }

func (f *fakeUserService) Update(_ context.Context, _ domain.ID, patch domain.Patch) (*domain.User, error) {
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) Delete(_ context.Context, id domain.ID) error {
	f.deletedID = id
	return f.err
}

// fakeTokenIssuer implements domain.TokenIssuer.
type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Issue(domain.ID, string, time.Duration) (string, error) {
	return f.token, f.err
}

// fakePostService implements domain.ContentService[string].
type fakePostService struct {
	post       *domain.Post
	posts      []*domain.Post
	err        error
	authorErr  error
	tagErr     error
	addedTags  []string
	deletedID  domain.ID
	lastPatch  domain.Patch
}

func (f *fakePostService) Create(_ context.Context, author domain.ID, caption, content string, _ []string) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.post.Author = author
	f.post.Caption = caption
	f.post.Content = content
	return f.post, nil
}

func (f *fakePostService) GetByID(_ context.Context, _ domain.ID) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.post, nil
}

func (f *fakePostService) GetByAuthor(_ context.Context, _ domain.ID) ([]*domain.Post, error) {
	return f.posts, f.err
}

func (f *fakePostService) GetAll(_ context.Context, _ domain.Filter) ([]*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakePostService) Update(_ context.Context, _ domain.ID, patch domain.Patch) (*domain.Post, error) {
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return f.post, nil
}

func (f *fakePostService) Delete(_ context.Context, id domain.ID) error {
	f.deletedID = id
	return f.err
}

func (f *fakePostService) DeleteAllByAuthor(_ context.Context, _ domain.ID) error { return f.err }

func (f *fakePostService) IsAuthor(_ context.Context, _, _ domain.ID) error { return f.authorErr }

func (f *fakePostService) ContentExists(_ context.Context, _ domain.ID) error { return f.err }

func (f *fakePostService) GetTags(_ context.Context, _ domain.ID) ([]string, error) {
	return f.addedTags, f.tagErr
}

func (f *fakePostService) AddTag(_ context.Context, name string, _ domain.ID) error {
	if f.tagErr != nil {
		return f.tagErr
	}
	f.addedTags = append(f.addedTags, name)
	return nil
}

func (f *fakePostService) RemoveTag(_ context.Context, name string, _ domain.ID) error {
	if f.tagErr != nil {
		return f.tagErr
	}
	f.addedTags = slices.DeleteFunc(f.addedTags, func(t string) bool { return t == name })
	return nil
}

// fakeBoardService implements domain.BoardService.
type fakeBoardService struct {
	board      *domain.Board
	boards     []*domain.Board
	err        error
	authorErr  error
	memberErr  error
	added      []domain.ID
	removed    []domain.ID
	lastPatch  domain.Patch
	deletedID  domain.ID
}

func (f *fakeBoardService) Create(_ context.Context, author domain.ID, caption string, content []domain.ID, _ []string) (*domain.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.board.Author = author
	f.board.Caption = caption
	f.board.Content = content
	return f.board, nil
}

func (f *fakeBoardService) GetByID(_ context.Context, _ domain.ID) (*domain.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.board, nil
}

func (f *fakeBoardService) GetByAuthor(_ context.Context, _ domain.ID) ([]*domain.Board, error) {
	return f.boards, f.err
}

func (f *fakeBoardService) GetAll(_ context.Context, _ domain.Filter) ([]*domain.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.boards, nil
}

func (f *fakeBoardService) Update(_ context.Context, _ domain.ID, patch domain.Patch) (*domain.Board, error) {
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return f.board, nil
}

func (f *fakeBoardService) Delete(_ context.Context, id domain.ID) error {
	f.deletedID = id
	return f.err
}

func (f *fakeBoardService) DeleteAllByAuthor(_ context.Context, _ domain.ID) error { return f.err }

func (f *fakeBoardService) IsAuthor(_ context.Context, _, _ domain.ID) error { return f.authorErr }

func (f *fakeBoardService) ContentExists(_ context.Context, _ domain.ID) error { return f.err }

func (f *fakeBoardService) GetTags(_ context.Context, _ domain.ID) ([]string, error) {
	return nil, f.err
}

func (f *fakeBoardService) AddTag(_ context.Context, _ string, _ domain.ID) error { return f.err }

func (f *fakeBoardService) RemoveTag(_ context.Context, _ string, _ domain.ID) error { return f.err }

func (f *fakeBoardService) AddPost(_ context.Context, _, post domain.ID) error {
	if f.memberErr != nil {
		return f.memberErr
	}
	f.added = append(f.added, post)
	return nil
}

func (f *fakeBoardService) RemovePost(_ context.Context, _, post domain.ID) error {
	if f.memberErr != nil {
		return f.memberErr
	}
	f.removed = append(f.removed, post)
	return nil
}

func (f *fakeBoardService) IsMember(_ context.Context, _, post domain.ID) (bool, error) {
	return slices.Contains(f.added, post), f.err
}

// fakeTagService implements domain.TagService.
type fakeTagService struct {
	tag        *domain.Tag
	tags       []*domain.Tag
	err        error
	attachErr  error
	attached   []domain.ID
	detached   []domain.ID
	cleanedFor []domain.ID
}

func (f *fakeTagService) Create(_ context.Context, _ string) (*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tag, nil
}

func (f *fakeTagService) GetByName(_ context.Context, _ string) (*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tag, nil
}

func (f *fakeTagService) GetOrCreateByName(_ context.Context, _ string) (*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tag, nil
}

func (f *fakeTagService) Attach(_ context.Context, _, content domain.ID) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attached = append(f.attached, content)
	return nil
}

func (f *fakeTagService) Detach(_ context.Context, _, content domain.ID) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.detached = append(f.detached, content)
	return nil
}

func (f *fakeTagService) DeleteTagsForContent(_ context.Context, contents []domain.ID) error {
	f.cleanedFor = append(f.cleanedFor, contents...)
	return f.err
}

func (f *fakeTagService) Query(_ context.Context, _ domain.TagQuery) ([]*domain.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tags, nil
}

// fakeProfileService implements domain.ProfileService.
type fakeProfileService struct {
	profile   *domain.Profile
	profiles  []*domain.Profile
	err       error
	lastPatch domain.Patch
}

func (f *fakeProfileService) Create(_ context.Context, user domain.ID) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.profile.User = user
	return f.profile, nil
}

func (f *fakeProfileService) GetByUser(_ context.Context, _ domain.ID) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileService) GetAll(_ context.Context) ([]*domain.Profile, error) {
	return f.profiles, f.err
}

func (f *fakeProfileService) Update(_ context.Context, _ domain.ID, patch domain.Patch) (*domain.Profile, error) {
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileService) DeleteByUser(_ context.Context, _ domain.ID) error { return f.err }

// fakeFollowService implements domain.FollowService.
type fakeFollowService struct {
	users      []*domain.User
	posts      []*domain.Post
	boards     []*domain.Board
	err        error
	followed   []domain.ID
	unfollowed []domain.ID
}

func (f *fakeFollowService) Follow(_ context.Context, _, followee domain.ID) error {
	if f.err != nil {
		return f.err
	}
	f.followed = append(f.followed, followee)
	return nil
}

func (f *fakeFollowService) Unfollow(_ context.Context, _, followee domain.ID) error {
	if f.err != nil {
		return f.err
	}
	f.unfollowed = append(f.unfollowed, followee)
	return nil
}

func (f *fakeFollowService) GetFollowing(_ context.Context, _ domain.ID) ([]*domain.User, error) {
	return f.users, f.err
}

func (f *fakeFollowService) GetFollowers(_ context.Context, _ domain.ID) ([]*domain.User, error) {
	return f.users, f.err
}

func (f *fakeFollowService) FeedPosts(_ context.Context, _ domain.ID) ([]*domain.Post, error) {
	return f.posts, f.err
}

func (f *fakeFollowService) FeedBoards(_ context.Context, _ domain.ID) ([]*domain.Board, error) {
	return f.boards, f.err
}

func (f *fakeFollowService) DeleteAllForUser(_ context.Context, _ domain.ID) error { return f.err }
