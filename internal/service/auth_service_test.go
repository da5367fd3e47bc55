package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/repository"
)

func newTestAuthService(t *testing.T) (*AuthService, *AdminService) {
	t.Helper()
	repo := repository.NewAdminRepository(openServiceTestDB(t))
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1}}
	return NewAuthService(cfg, repo, nil), NewAdminService(repo, config.PasswordPolicyConfig{})
}

func TestAuthLoginIssuesParsableToken(t *testing.T) {
	auth, admins := newTestAuthService(t)
	created, err := admins.Create(CreateAdminInput{Username: "editor1", Password: "s3cret-pass", Role: "editor"})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	admin, token, expiresAt, err := auth.Login(context.Background(), LoginInput{Username: " editor1 ", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if admin.ID != created.ID || admin.LastLoginAt == nil || expiresAt.IsZero() {
		t.Fatalf("unexpected login result: %+v", admin)
	}

	claims, err := auth.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != created.ID || claims.Role != constants.AdminRoleEditor {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	state, err := auth.ResolveAuthState(context.Background(), created.ID)
	if err != nil || state == nil || state.Role != constants.AdminRoleEditor {
		t.Fatalf("unexpected auth state: %+v err=%v", state, err)
	}
	missing, err := auth.ResolveAuthState(context.Background(), "missing")
	if err != nil || missing != nil {
		t.Fatalf("expected nil state for missing admin, got %+v err=%v", missing, err)
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	auth, admins := newTestAuthService(t)
	if _, err := admins.Create(CreateAdminInput{Username: "root", Password: "correct-horse", Role: "admin"}); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if _, _, _, err := auth.Login(context.Background(), LoginInput{Username: "root", Password: "wrong-horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, _, err := auth.Login(context.Background(), LoginInput{Username: "nobody", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}
	if _, err := auth.ParseJWT("not-a-token"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestAdminServiceCreateValidation(t *testing.T) {
	_, admins := newTestAuthService(t)
	if _, err := admins.Create(CreateAdminInput{Username: "a", Password: "short", Role: "admin"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got %v", err)
	}
	var policyErr PasswordPolicyError
	_, err := admins.Create(CreateAdminInput{Username: "a", Password: "short"})
	if !errors.As(err, &policyErr) || policyErr.Key() != "error.password_min_length" {
		t.Fatalf("expected min length policy error, got %v", err)
	}
	if _, err := admins.Create(CreateAdminInput{Username: "a", Password: "long-enough", Role: "owner"}); !errors.Is(err, ErrAdminRoleInvalid) {
		t.Fatalf("expected invalid role, got %v", err)
	}
	if _, err := admins.Create(CreateAdminInput{Username: "a", Password: "long-enough"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := admins.Create(CreateAdminInput{Username: "a", Password: "long-enough"}); !errors.Is(err, ErrAdminExists) {
		t.Fatalf("expected admin exists, got %v", err)
	}
}
