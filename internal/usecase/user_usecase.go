package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name         string
	Location     string
	Availability user.Availability
	Bio          string
	ProfilePhoto string
	IsPublic     bool
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	GetPublicProfile(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]user.User, int64, error)
}

type User struct {
	repo  repository.UserRepository
	cache MatchCache
}

func NewUserUsecase(repo repository.UserRepository, cache MatchCache) *User {
	return &User{repo: repo, cache: cache}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// GetPublicProfile only exposes profiles their owner marked public.
func (u *User) GetPublicProfile(ctx context.Context, id uuid.UUID) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrInvalidInput
	}
	usr, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	if !usr.IsPublic {
		return user.User{}, ErrUserNotFound
	}
	usr.PasswordHash = ""
	usr.Email = ""
	return usr, nil
}

// UpdateProfile rewrites the editable fields. Availability, location
// and visibility feed the match score, so cached match lists are
// dropped on success.
func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.Name) == "" {
		return user.User{}, ErrInvalidInput
	}
	if !in.Availability.Valid() {
		return user.User{}, ErrInvalidInput
	}

	updated, err := u.repo.UpdateProfile(ctx, userID, user.ProfileUpdate{
		Name:         strings.TrimSpace(in.Name),
		Location:     strings.TrimSpace(in.Location),
		Availability: in.Availability,
		Bio:          strings.TrimSpace(in.Bio),
		ProfilePhoto: strings.TrimSpace(in.ProfilePhoto),
		IsPublic:     in.IsPublic,
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	invalidateMatches(ctx, u.cache)

	updated.PasswordHash = ""
	return updated, nil
}

func (u *User) ListUsers(ctx context.Context, limit, offset int) ([]user.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	items, total, err := u.repo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, ErrInternal
	}
	for i := range items {
		items[i].PasswordHash = ""
	}
	return items, total, nil
}
