package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type ProfileUpdate struct {
	Name         string
	Location     string
	Availability Availability
	Bio          string
	ProfilePhoto string
	IsPublic     bool
}

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListPublicUsers(ctx context.Context, excludeID uuid.UUID) ([]User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileUpdate) (User, error)
}
