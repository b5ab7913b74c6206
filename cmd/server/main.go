package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/pc0808/easel/config"
	_ "github.com/pc0808/easel/docs"
	"github.com/pc0808/easel/internal/adapters/auth"
	deliveryhttp "github.com/pc0808/easel/internal/delivery/http"
	"github.com/pc0808/easel/internal/delivery/http/controllers"
	"github.com/pc0808/easel/internal/delivery/http/middleware"
	"github.com/pc0808/easel/internal/domain"
	"github.com/pc0808/easel/internal/repository/postgres"
	"github.com/pc0808/easel/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Easel API
// @version 1.0
// @description Social content backend: posts, boards, tags, profiles, and follows.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	posts := services.NewContentRegistry[string](
		postgres.NewCollection[domain.Content[string]](db, postgres.CollPosts), serviceTimeout)
	boards := services.NewBoardService(
		postgres.NewCollection[domain.Board](db, postgres.CollBoards), posts, serviceTimeout)
	postTags := services.NewTagIndex(
		postgres.NewCollection[domain.Tag](db, postgres.CollPostTags), posts, serviceTimeout)
	boardTags := services.NewTagIndex(
		postgres.NewCollection[domain.Tag](db, postgres.CollBoardTags), boards, serviceTimeout)
	profiles := services.NewProfileService(
		postgres.NewCollection[domain.Profile](db, postgres.CollProfiles), serviceTimeout)

	userColl := postgres.NewCollection[domain.User](db, postgres.CollUsers)
	follows := services.NewFollowService(
		postgres.NewCollection[domain.Follow](db, postgres.CollFollowing),
		userColl, posts, boards, serviceTimeout)
	users := services.NewUserService(
		userColl, auth.NewBcryptHasher(bcrypt.DefaultCost),
		profiles, posts, boards, postTags, boardTags, follows, serviceTimeout)

	tokens := auth.NewJWTCodec(cfg.JWTSecret)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:      controllers.NewAuthController(logger, users, tokens, cfg.JWTExpiry),
		Users:     controllers.NewUserController(logger, users),
		Profiles:  controllers.NewProfileController(logger, profiles),
		Posts:     controllers.NewPostController(logger, posts, postTags),
		Boards:    controllers.NewBoardController(logger, boards, boardTags),
		PostTags:  controllers.NewTagController(logger, postTags, posts, "postID"),
		BoardTags: controllers.NewTagController(logger, boardTags, boards, "boardID"),
		Follows:   controllers.NewFollowController(logger, follows),
	}, tokens)

	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
