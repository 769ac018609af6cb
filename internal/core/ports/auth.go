package ports

import (
	"context"

	"github.com/clubstack/inventory-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	// Delete removes the account. Fails with domain.ErrUserHasActiveBorrows
	// while any non-terminal borrow record still references the user.
	Delete(ctx context.Context, id uint) error
}

// RegisterInput carries the identity fields for a new account.
type RegisterInput struct {
	Prename  string
	Surname  string
	Email    string
	Username string
	Password string
	Role     string
}

// AuthService implements registration, login and credential changes.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login accepts a username or an email address as identifier and returns
	// a signed token embedding user id, username and role.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

// UserService exposes account lookups and deletion.
type UserService interface {
	Get(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uint) error
}
