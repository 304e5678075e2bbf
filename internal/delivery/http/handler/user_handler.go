package handler

import (
	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/user"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	users  usecase.UserUsecase
	skills usecase.SkillUsecase
}

type updateProfileRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	Bio          string `json:"bio"`
	ProfilePhoto string `json:"profile_photo"`
	IsPublic     bool   `json:"is_public"`
}

func NewUserHandler(users usecase.UserUsecase, skills usecase.SkillUsecase) *UserHandler {
	return &UserHandler{users: users, skills: skills}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateProfile)
	r.Get("/:id", h.PublicProfile)
	r.Get("/:id/skills", h.PublicSkills)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	usr, err := h.users.GetMe(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.users.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		Name:         req.Name,
		Location:     req.Location,
		Availability: user.Availability(req.Availability),
		Bio:          req.Bio,
		ProfilePhoto: req.ProfilePhoto,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", dto.NewUserResponse(usr))
}

func (h *UserHandler) PublicProfile(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	usr, err := h.users.GetPublicProfile(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) PublicSkills(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	// Visibility check rides on the profile lookup.
	if _, err := h.users.GetPublicProfile(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}

	items, err := h.skills.ListUserSkills(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponses(items))
}
