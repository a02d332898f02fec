package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type feedService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (s *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *feedService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// AddPost prepends a post authored by authorID.
func (s *feedService) AddPost(ctx context.Context, authorID string, input *usecase.AddPostInput) (*entity.Post, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "post text is empty")
	}

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, mapUserErr(err, authorID)
	}

	post := &entity.Post{
		ID:        newID(prefixPost),
		Author:    entity.AuthorOf(author),
		Text:      input.Text,
		ImageURL:  input.ImageURL,
		Timestamp: time.Now(),
		Likes:     []string{},
		Comments:  []entity.PostComment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	s.log(ctx).Info("Post added", slog.String("postID", post.ID), slog.String("authorID", authorID))

	return post, nil
}

// ToggleLike flips userID's like on the post.
func (s *feedService) ToggleLike(ctx context.Context, postID, userID string) (*entity.Post, error) {
	var updated *entity.Post
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPostRepository()
		post, err := findPost(ctx, repo, postID)
		if err != nil {
			return err
		}

		post.ToggleLike(userID)
		if err := repo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		updated = post

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AddComment appends a comment carrying the commenter's current snapshot.
// Text is stored as given.
func (s *feedService) AddComment(ctx context.Context, postID, commenterID, text string) (*entity.PostComment, error) {
	var comment *entity.PostComment
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commenter, err := repoFactory.NewUserRepository().FindByID(ctx, commenterID)
		if err != nil {
			return mapUserErr(err, commenterID)
		}

		repo := repoFactory.NewPostRepository()
		post, err := findPost(ctx, repo, postID)
		if err != nil {
			return err
		}

		c := entity.PostComment{
			ID:        newID(prefixComment),
			Text:      text,
			Timestamp: time.Now(),
			Commenter: entity.AuthorOf(commenter),
		}
		post.Comments = append(post.Comments, c)
		if err := repo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		comment = &c

		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func findPost(ctx context.Context, repo repository.PostRepository, postID string) (*entity.Post, error) {
	post, err := repo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, postID)
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	return post, nil
}

func mapUserErr(err error, userID string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, userID)
	}

	return errors.Wrap(err, "failed to load user")
}
