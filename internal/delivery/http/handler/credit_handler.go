package handler

import (
	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CreditHandler struct {
	uc usecase.CreditUsecase
}

func NewCreditHandler(uc usecase.CreditUsecase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

func (h *CreditHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/credits", h.List)
}

// List returns the caller's ledger rows, newest first.
func (h *CreditHandler) List(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListMyTransactions(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTransactionResponses(items))
}
