// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lawyerup/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when a user with the same id or login id already exists.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByLoginID retrieves a user of the given role by username (clients) or bar council id (lawyers).
	FindByLoginID(ctx context.Context, role entity.Role, loginID string) (*entity.User, error)

	// ListByRole returns every user of the role in insertion order.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new user. Login ids are unique per role.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces an existing user record by id.
	Update(ctx context.Context, user *entity.User) error
}
