package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

func newTestUserService(guard ports.LoginGuard) (*UserService, *stubUserRepo) {
	repo := newStubUserRepo()
	return NewUserService(repo, newStubRoleRepo(), stubHasher{}, stubTokens{}, guard, discardLogger), repo
}

func aliceInput() ports.UserInput {
	return ports.UserInput{
		FirstName: "Alice",
		LastName:  "Souza",
		Email:     "alice@example.com",
		Password:  "pass123",
	}
}

func TestUserService_Insert_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc, repo := newTestUserService(nil)

	u, err := svc.Insert(context.Background(), aliceInput())
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if u.PasswordHash != "hashed:pass123" {
		t.Fatalf("expected password to be hashed, got %q", u.PasswordHash)
	}
	if got := u.Authorities(); len(got) != 1 || got[0] != domain.RoleUser {
		t.Fatalf("expected default ROLE_USER, got %v", got)
	}
	if _, ok := repo.byID[u.ID]; !ok {
		t.Fatalf("user was not stored")
	}
}

func TestUserService_Insert_DeduplicatesRoles(t *testing.T) {
	svc, _ := newTestUserService(nil)
	in := aliceInput()
	in.Roles = []string{domain.RoleAdmin, domain.RoleUser, domain.RoleAdmin}

	u, err := svc.Insert(context.Background(), in)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if len(u.Roles) != 2 || !u.HasAuthority(domain.RoleAdmin) || !u.HasAuthority(domain.RoleUser) {
		t.Fatalf("unexpected roles: %v", u.Authorities())
	}
}

func TestUserService_Insert_UnknownRole(t *testing.T) {
	svc, repo := newTestUserService(nil)
	in := aliceInput()
	in.Roles = []string{"ROLE_ROOT"}

	if _, err := svc.Insert(context.Background(), in); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no user should be stored")
	}
}

func TestUserService_Insert_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserService(nil)
	ctx := context.Background()

	original, err := svc.Insert(ctx, aliceInput())
	if err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}

	dup := aliceInput()
	dup.FirstName = "Outra"
	dup.Password = "other"
	if _, err := svc.Insert(ctx, dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	stored := repo.byID[original.ID]
	if stored.FirstName != "Alice" || stored.PasswordHash != "hashed:pass123" {
		t.Fatalf("original user was modified: %+v", stored)
	}
}

func TestUserService_Update_KeepsPasswordWhenEmpty(t *testing.T) {
	svc, _ := newTestUserService(nil)
	ctx := context.Background()

	u, err := svc.Insert(ctx, aliceInput())
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	in := aliceInput()
	in.ID = u.ID
	in.FirstName = "Alicia"
	in.Password = ""
	updated, err := svc.Update(ctx, in)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Alicia" {
		t.Fatalf("first name not updated")
	}
	if updated.PasswordHash != "hashed:pass123" {
		t.Fatalf("password hash should be kept, got %q", updated.PasswordHash)
	}
	if !updated.HasAuthority(domain.RoleUser) {
		t.Fatalf("roles should be kept when none are given")
	}
}

func TestUserService_Update_ReplacesRolesAndPassword(t *testing.T) {
	svc, _ := newTestUserService(nil)
	ctx := context.Background()

	u, err := svc.Insert(ctx, aliceInput())
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	in := aliceInput()
	in.ID = u.ID
	in.Password = "newpass"
	in.Roles = []string{domain.RoleAdmin}
	updated, err := svc.Update(ctx, in)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordHash != "hashed:newpass" {
		t.Fatalf("expected re-hashed password, got %q", updated.PasswordHash)
	}
	if updated.HasAuthority(domain.RoleUser) || !updated.HasAuthority(domain.RoleAdmin) {
		t.Fatalf("expected roles to be replaced, got %v", updated.Authorities())
	}
}

func TestUserService_Update_EmailTaken(t *testing.T) {
	svc, _ := newTestUserService(nil)
	ctx := context.Background()

	if _, err := svc.Insert(ctx, aliceInput()); err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}
	bob := aliceInput()
	bob.Email = "bob@example.com"
	b, err := svc.Insert(ctx, bob)
	if err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}

	bob.ID = b.ID
	bob.Email = "alice@example.com"
	if _, err := svc.Update(ctx, bob); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_NotFound(t *testing.T) {
	svc, _ := newTestUserService(nil)
	ctx := context.Background()
	missing := uuid.New()

	if _, err := svc.FindByID(ctx, missing); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("FindByID: expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, missing); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("Delete: expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	guard := newStubGuard(5)
	svc, _ := newTestUserService(guard)
	ctx := context.Background()

	if _, err := svc.Insert(ctx, aliceInput()); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	guard.failures["alice@example.com"] = 2

	res, err := svc.Login(ctx, "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token != "token-for-alice@example.com" {
		t.Fatalf("unexpected token: %q", res.Token)
	}
	if res.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if guard.failures["alice@example.com"] != 0 {
		t.Fatalf("expected failures to be reset after a successful login")
	}
}

func TestUserService_Login_InvalidPassword(t *testing.T) {
	guard := newStubGuard(5)
	svc, _ := newTestUserService(guard)
	ctx := context.Background()

	if _, err := svc.Insert(ctx, aliceInput()); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if guard.failures["alice@example.com"] != 1 {
		t.Fatalf("expected the failure to be recorded")
	}
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	svc, _ := newTestUserService(nil)

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Login_MissingCredentials(t *testing.T) {
	svc, _ := newTestUserService(nil)

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_Blocked(t *testing.T) {
	guard := newStubGuard(2)
	svc, _ := newTestUserService(guard)
	ctx := context.Background()

	if _, err := svc.Insert(ctx, aliceInput()); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	if _, err := svc.Login(ctx, "alice@example.com", "pass123"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
