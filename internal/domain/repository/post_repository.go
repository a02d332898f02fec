package repository

import (
	"context"
	"errors"

	"lawyerup/internal/domain/entity"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for the social feed.
type PostRepository interface {
	// Create prepends the post so the feed reads newest first.
	Create(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	List(ctx context.Context) ([]*entity.Post, error)
}
