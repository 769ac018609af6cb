package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin       = "admin"
	RoleContributor = "contributor"
	RoleMember      = "member"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrUserHasActiveBorrows = errors.New("user still referenced by active borrow records")

// ValidRole reports whether role is part of the fixed role enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleContributor, RoleMember:
		return true
	}
	return false
}

// User models a registered member of the organization.
type User struct {
	ID           uint      `json:"id"`
	Prename      string    `json:"prename"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
