package memory

import (
	"context"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"

	"github.com/pkg/errors"
)

// userRepository implements the domain UserRepository over the store.
type userRepository struct {
	src source
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{src: store}
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := repo.src.read(ctx, func(st *state) error {
		user, ok := st.users.get(id)
		if !ok {
			return repository.ErrUserNotFound
		}
		out = user.Clone()

		return nil
	})

	return out, err
}

// FindByLoginID retrieves a user by the identifier they sign in with.
func (repo *userRepository) FindByLoginID(ctx context.Context, role entity.Role, loginID string) (*entity.User, error) {
	var out *entity.User
	err := repo.src.read(ctx, func(st *state) error {
		out = findByLoginID(st, role, loginID).Clone()
		if out == nil {
			return repository.ErrUserNotFound
		}

		return nil
	})

	return out, err
}

// ListByRole returns every user of the role in registration order.
func (repo *userRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var out []*entity.User
	err := repo.src.read(ctx, func(st *state) error {
		st.users.each(func(u *entity.User) bool {
			if u.Role == role {
				out = append(out, u.Clone())
			}

			return true
		})

		return nil
	})

	return out, err
}

// Create persists a new user. Ids and per-role login ids are unique.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil || user.ID == "" {
		return errors.New("user id is required")
	}

	return repo.src.write(ctx, func(st *state) error {
		if st.users.has(user.ID) {
			return repository.ErrUserExists
		}
		if loginID := user.LoginID(); loginID != "" && findByLoginID(st, user.Role, loginID) != nil {
			return repository.ErrUserExists
		}
		st.users.add(user.ID, user.Clone(), false)

		return nil
	})
}

// Update replaces an existing user by id. The role variant cannot change.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return repo.src.write(ctx, func(st *state) error {
		current, ok := st.users.get(user.ID)
		if !ok {
			return repository.ErrUserNotFound
		}
		if current.Role != user.Role {
			return errors.Errorf("cannot change role of user %s", user.ID)
		}
		if other := findByLoginID(st, user.Role, user.LoginID()); other != nil && other.ID != user.ID {
			return repository.ErrUserExists
		}
		st.users.put(user.ID, user.Clone())

		return nil
	})
}

func findByLoginID(st *state, role entity.Role, loginID string) *entity.User {
	if loginID == "" {
		return nil
	}

	var found *entity.User
	st.users.each(func(u *entity.User) bool {
		if u.Role == role && u.LoginID() == loginID {
			found = u
			return false
		}

		return true
	})

	return found
}
