package dto

import (
	"time"

	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	Bio          string    `json:"bio"`
	ProfilePhoto string    `json:"profile_photo"`
	IsPublic     bool      `json:"is_public"`
	IsAdmin      bool      `json:"is_admin,omitempty"`
	Credits      int       `json:"credits"`
	TotalSwaps   int       `json:"total_swaps"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Location:     u.Location,
		Availability: string(u.Availability),
		Bio:          u.Bio,
		ProfilePhoto: u.ProfilePhoto,
		IsPublic:     u.IsPublic,
		IsAdmin:      u.IsAdmin,
		Credits:      u.Credits,
		TotalSwaps:   u.TotalSwaps,
		Rating:       u.Rating,
		CreatedAt:    u.CreatedAt,
	}
}

func NewUserResponses(users []user.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, NewUserResponse(u))
	}
	return res
}
