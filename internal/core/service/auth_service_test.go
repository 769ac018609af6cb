package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clubstack/inventory-system/internal/core/domain"
	"github.com/clubstack/inventory-system/internal/core/ports"
)

func registeredUser(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Prename:  "Alice",
		Surname:  "Miller",
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct horse",
		Role:     domain.RoleMember,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestAuthService_Register_DuplicateConflicts(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)
	registeredUser(t, svc)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Prename:  "Other",
		Surname:  "Person",
		Email:    "alice@example.com",
		Username: "alice2",
		Password: "whatever12",
		Role:     domain.RoleMember,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Prename:  "Alice",
		Surname:  "Miller",
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct horse",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)
	registeredUser(t, svc)

	for _, identifier := range []string{"alice", "alice@example.com"} {
		token, user, err := svc.Login(context.Background(), identifier, "correct horse")
		if err != nil {
			t.Fatalf("login with %q: %v", identifier, err)
		}
		if token == "" {
			t.Fatalf("login with %q returned empty token", identifier)
		}
		if user.Username != "alice" {
			t.Fatalf("unexpected user: %+v", user)
		}
	}
}

func TestAuthService_Login_TokenCarriesClaims(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)
	registered := registeredUser(t, svc)

	token, _, err := svc.Login(context.Background(), "alice", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["username"] != "alice" || claims["role"] != domain.RoleMember {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if uint(claims["user_id"].(float64)) != registered.ID {
		t.Fatalf("unexpected user_id claim: %v", claims["user_id"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("token has no expiry")
	}
}

func TestAuthService_Login_SameErrorForUnknownUserAndBadPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)
	registeredUser(t, svc)

	_, _, errUnknown := svc.Login(context.Background(), "nobody", "correct horse")
	_, _, errBadPass := svc.Login(context.Background(), "alice", "wrong password")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errBadPass, domain.ErrInvalidCredentials) {
		t.Fatalf("bad password: expected ErrInvalidCredentials, got %v", errBadPass)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)
	registeredUser(t, svc)

	if err := svc.ChangePassword(context.Background(), "alice", "wrong", "new password 1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong old password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), "alice", "correct horse", "new password 1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "correct horse"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", "new password 1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
