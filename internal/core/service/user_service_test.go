package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

func strptr(s string) *string { return &s }

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["u1"] = &domain.User{ID: "u1", Name: "Old", Email: "old@example.com", PasswordHash: "hash"}
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())

	err := svc.Update(context.Background(), "u1", ports.UpdateUserInput{Name: strptr("  New Name  ")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	u := repo.users["u1"]
	if u.Name != "New Name" {
		t.Fatalf("expected trimmed name, got %q", u.Name)
	}
	if u.Email != "old@example.com" {
		t.Fatalf("email changed unexpectedly: %q", u.Email)
	}
	if u.PasswordHash != "hash" {
		t.Fatalf("password changed unexpectedly")
	}
}

func TestUserService_Update_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["u1"] = &domain.User{ID: "u1", Email: "old@example.com"}
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())

	if err := svc.Update(context.Background(), "u1", ports.UpdateUserInput{Email: strptr(" New@Example.COM ")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := repo.users["u1"].Email; got != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", got)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["u1"] = &domain.User{ID: "u1", PasswordHash: "oldhash"}
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())

	if err := svc.Update(context.Background(), "u1", ports.UpdateUserInput{Password: strptr("newpass")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored := repo.users["u1"].PasswordHash
	if stored == "newpass" || stored == "oldhash" {
		t.Fatalf("expected a fresh hash, got %q", stored)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("newpass")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())

	err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: strptr("x")})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["u1"] = &domain.User{ID: "u1"}
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.Nop())

	if err := svc.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "u1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
