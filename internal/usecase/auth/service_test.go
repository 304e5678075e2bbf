package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skillswap/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byEmail map[string]user.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]user.User)}
}

func (r *stubUserRepo) CreateUser(ctx context.Context, u user.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (r *stubUserRepo) ListPublicUsers(ctx context.Context, excludeID uuid.UUID) ([]user.User, error) {
	return nil, nil
}

func (r *stubUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, in user.ProfileUpdate) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func TestRegisterHashesPasswordAndDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo)

	usr, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Sarah Chen",
		Email:    "Sarah@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if usr.Email != "sarah@example.com" {
		t.Errorf("email = %q, want lowercased", usr.Email)
	}
	if usr.Availability != user.AvailabilityFlexible {
		t.Errorf("availability = %s, want flexible default", usr.Availability)
	}
	if !usr.IsPublic {
		t.Error("new users default to public")
	}
	if usr.PasswordHash != "" {
		t.Error("returned user must not carry the hash")
	}

	stored, _ := repo.GetUserByEmail(context.Background(), "sarah@example.com")
	if stored.PasswordHash == "" || stored.PasswordHash == "correct-horse" {
		t.Error("stored password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newStubUserRepo())

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"blank email", RegisterInput{Name: "A", Password: "longenough"}},
		{"blank name", RegisterInput{Email: "a@b.c", Password: "longenough"}},
		{"short password", RegisterInput{Name: "A", Email: "a@b.c", Password: "short"}},
		{"bad availability", RegisterInput{Name: "A", Email: "a@b.c", Password: "longenough", Availability: "always"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tt.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newStubUserRepo())

	in := RegisterInput{Name: "Sarah", Email: "sarah@example.com", Password: "correct-horse"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("second register err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Sarah",
		Email:    "sarah@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	usr, err := svc.Login(context.Background(), LoginInput{Email: "SARAH@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if usr.PasswordHash != "" {
		t.Error("login response must not carry the hash")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "sarah@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}
