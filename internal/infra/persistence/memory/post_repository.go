package memory

import (
	"context"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"

	"github.com/pkg/errors"
)

type postRepository struct {
	src source
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{src: store}
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return repo.src.write(ctx, func(st *state) error {
		if st.posts.has(post.ID) {
			return errors.Errorf("post %s already exists", post.ID)
		}
		st.posts.add(post.ID, post.Clone(), true)

		return nil
	})
}

func (repo *postRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	var out *entity.Post
	err := repo.src.read(ctx, func(st *state) error {
		post, ok := st.posts.get(id)
		if !ok {
			return repository.ErrPostNotFound
		}
		out = post.Clone()

		return nil
	})

	return out, err
}

func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	return repo.src.write(ctx, func(st *state) error {
		if !st.posts.has(post.ID) {
			return repository.ErrPostNotFound
		}
		st.posts.put(post.ID, post.Clone())

		return nil
	})
}

func (repo *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var out []*entity.Post
	err := repo.src.read(ctx, func(st *state) error {
		out = make([]*entity.Post, 0, st.posts.len())
		st.posts.each(func(post *entity.Post) bool {
			out = append(out, post.Clone())
			return true
		})

		return nil
	})

	return out, err
}
