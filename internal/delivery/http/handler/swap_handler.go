package handler

import (
	"context"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/swap"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SwapHandler struct {
	uc usecase.SwapUsecase
}

type sendSwapRequest struct {
	ReceiverID     uuid.UUID `json:"receiver_id"`
	OfferedSkillID uuid.UUID `json:"offered_skill_id"`
	WantedSkillID  uuid.UUID `json:"wanted_skill_id"`
	Message        string    `json:"message"`
}

type completeSwapRequest struct {
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating"`
}

func NewSwapHandler(uc usecase.SwapUsecase) *SwapHandler {
	return &SwapHandler{uc: uc}
}

func (h *SwapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/swaps")
	grp.Get("/", h.List)
	grp.Post("/", h.Send)
	grp.Post("/:id/accept", h.Accept)
	grp.Post("/:id/reject", h.Reject)
	grp.Post("/:id/complete", h.Complete)
}

func (h *SwapHandler) List(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListRequests(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapRequestResponses(items))
}

func (h *SwapHandler) Send(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req sendSwapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.SendRequest(c.Context(), userID, usecase.SendSwapRequestInput{
		ReceiverID:     req.ReceiverID,
		OfferedSkillID: req.OfferedSkillID,
		WantedSkillID:  req.WantedSkillID,
		Message:        req.Message,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Swap request sent", dto.NewSwapRequestResponse(created))
}

func (h *SwapHandler) Accept(c fiber.Ctx) error {
	return h.transition(c, h.uc.Accept, "Swap request accepted")
}

func (h *SwapHandler) Reject(c fiber.Ctx) error {
	return h.transition(c, h.uc.Reject, "Swap request rejected")
}

func (h *SwapHandler) Complete(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	requestID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req completeSwapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Complete(c.Context(), userID, requestID, usecase.CompleteSwapInput{
		Feedback: req.Feedback,
		Rating:   req.Rating,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Swap completed", dto.NewSwapRequestResponse(updated))
}

func (h *SwapHandler) transition(
	c fiber.Ctx,
	op func(ctx context.Context, userID, requestID uuid.UUID) (swap.Request, error),
	message string,
) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	requestID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	updated, err := op(c.Context(), userID, requestID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, message, dto.NewSwapRequestResponse(updated))
}
