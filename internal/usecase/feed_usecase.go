package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// AddPostInput holds a new feed post.
type AddPostInput struct {
	Text     string
	ImageURL string
}

// FeedUsecase manages the social feed. Who may post is decided by the caller.
type FeedUsecase interface {
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	AddPost(ctx context.Context, authorID string, input *AddPostInput) (*entity.Post, error)

	// ToggleLike adds userID to the post's likes, or removes it if already present.
	ToggleLike(ctx context.Context, postID, userID string) (*entity.Post, error)

	AddComment(ctx context.Context, postID, commenterID, text string) (*entity.PostComment, error)
}
