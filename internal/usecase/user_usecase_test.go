package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

func TestGetPublicProfileHidesPrivateUsers(t *testing.T) {
	public := user.User{ID: uuid.New(), Name: "Sarah", Email: "sarah@example.com", PasswordHash: "x", IsPublic: true}
	private := user.User{ID: uuid.New(), Name: "Ghost", IsPublic: false}

	uc := NewUserUsecase(newMemUserRepo(public, private), nil)

	got, err := uc.GetPublicProfile(context.Background(), public.ID)
	if err != nil {
		t.Fatalf("GetPublicProfile: %v", err)
	}
	if got.PasswordHash != "" || got.Email != "" {
		t.Errorf("public profile leaks credentials: %+v", got)
	}

	if _, err := uc.GetPublicProfile(context.Background(), private.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("private profile err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfileInvalidatesMatchCache(t *testing.T) {
	u := user.User{ID: uuid.New(), Name: "Sarah", Availability: user.AvailabilityEvenings, IsPublic: true}
	cache := newMemCache()
	cache.entries["matches:"+u.ID.String()] = []byte("[]")

	uc := NewUserUsecase(newMemUserRepo(u), cache)

	updated, err := uc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{
		Name:         "Sarah Chen",
		Location:     "Portland, OR",
		Availability: user.AvailabilityWeekends,
		IsPublic:     true,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Sarah Chen" || updated.Availability != user.AvailabilityWeekends {
		t.Errorf("updated = %+v", updated)
	}
	if cache.wipes != 1 {
		t.Error("profile change must wipe cached match lists")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	u := user.User{ID: uuid.New(), Name: "Sarah", Availability: user.AvailabilityEvenings}
	uc := NewUserUsecase(newMemUserRepo(u), nil)

	if _, err := uc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{
		Name:         " ",
		Availability: user.AvailabilityEvenings,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name err = %v, want ErrInvalidInput", err)
	}

	if _, err := uc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{
		Name:         "Sarah",
		Availability: "sometimes",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad availability err = %v, want ErrInvalidInput", err)
	}
}
