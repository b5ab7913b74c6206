package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pc0808/easel/internal/delivery/http/controllers"
	"github.com/pc0808/easel/internal/delivery/http/middleware"
	"github.com/pc0808/easel/internal/domain"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Profiles  *controllers.ProfileController
	Posts     *controllers.PostController
	Boards    *controllers.BoardController
	PostTags  *controllers.TagController
	BoardTags *controllers.TagController
	Follows   *controllers.FollowController
}

// NewRouter initializes the HTTP router with all application routes. Reads
// are public; every mutation goes through RequireAuth.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/register", c.Auth.Register)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Users
	mux.HandleFunc("GET /users", c.Users.ListUsers)
	mux.HandleFunc("GET /users/me", authed(c.Users.GetMe))
	mux.HandleFunc("PATCH /users/me", authed(c.Users.UpdateMe))
	mux.HandleFunc("DELETE /users/me", authed(c.Users.DeleteMe))
	mux.HandleFunc("GET /users/{userID}", c.Users.GetUser)

	// Profiles
	mux.HandleFunc("GET /profiles", c.Profiles.ListProfiles)
	mux.HandleFunc("GET /users/{userID}/profile", c.Profiles.GetProfile)
	mux.HandleFunc("PATCH /users/me/profile", authed(c.Profiles.UpdateMyProfile))

	// Posts
	mux.HandleFunc("GET /posts", c.Posts.ListPosts)
	mux.HandleFunc("POST /posts", authed(c.Posts.CreatePost))
	mux.HandleFunc("GET /posts/{postID}", c.Posts.GetPost)
	mux.HandleFunc("PATCH /posts/{postID}", authed(c.Posts.UpdatePost))
	mux.HandleFunc("DELETE /posts/{postID}", authed(c.Posts.DeletePost))

	// Post tags
	mux.HandleFunc("GET /posts/tags", c.PostTags.ListTags)
	mux.HandleFunc("POST /posts/tags", authed(c.PostTags.CreateTag))
	mux.HandleFunc("GET /posts/tags/{name}", c.PostTags.GetTag)
	mux.HandleFunc("PUT /posts/{postID}/tags/{name}", authed(c.PostTags.TagContent))
	mux.HandleFunc("DELETE /posts/{postID}/tags/{name}", authed(c.PostTags.UntagContent))

	// Boards
	mux.HandleFunc("GET /boards", c.Boards.ListBoards)
	mux.HandleFunc("POST /boards", authed(c.Boards.CreateBoard))
	mux.HandleFunc("GET /boards/{boardID}", c.Boards.GetBoard)
	mux.HandleFunc("PATCH /boards/{boardID}", authed(c.Boards.UpdateBoard))
	mux.HandleFunc("DELETE /boards/{boardID}", authed(c.Boards.DeleteBoard))
	mux.HandleFunc("PUT /boards/{boardID}/posts/{postID}", authed(c.Boards.AddBoardPost))
	mux.HandleFunc("DELETE /boards/{boardID}/posts/{postID}", authed(c.Boards.RemoveBoardPost))

	// Board tags
	mux.HandleFunc("GET /boards/tags", c.BoardTags.ListTags)
	mux.HandleFunc("POST /boards/tags", authed(c.BoardTags.CreateTag))
	mux.HandleFunc("GET /boards/tags/{name}", c.BoardTags.GetTag)
	mux.HandleFunc("PUT /boards/{boardID}/tags/{name}", authed(c.BoardTags.TagContent))
	mux.HandleFunc("DELETE /boards/{boardID}/tags/{name}", authed(c.BoardTags.UntagContent))

	// Follows and feeds
	mux.HandleFunc("PUT /users/me/following/{userID}", authed(c.Follows.Follow))
	mux.HandleFunc("DELETE /users/me/following/{userID}", authed(c.Follows.Unfollow))
	mux.HandleFunc("GET /users/{userID}/following", c.Follows.ListFollowing)
	mux.HandleFunc("GET /users/{userID}/followers", c.Follows.ListFollowers)
	mux.HandleFunc("GET /feed/posts", authed(c.Follows.FeedPosts))
	mux.HandleFunc("GET /feed/boards", authed(c.Follows.FeedBoards))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
