package handler

import (
	"strconv"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/credit"
	"skillswap/internal/pkg/response"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AdminHandler exposes the operator surface: user listing, manual
// credit adjustments, the global ledger and platform totals.
type AdminHandler struct {
	users   usecase.UserUsecase
	credits usecase.CreditUsecase
}

type adjustCreditsRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Amount int       `json:"amount"`
	Reason string    `json:"reason"`
}

func NewAdminHandler(users usecase.UserUsecase, credits usecase.CreditUsecase) *AdminHandler {
	return &AdminHandler{users: users, credits: credits}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Post("/credits/adjust", h.AdjustCredits)
	r.Get("/transactions", h.Ledger)
	r.Get("/stats", h.Stats)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	items, total, err := h.users.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := dto.PagedResponse{
		Items:  dto.NewUserResponses(items),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AdminHandler) AdjustCredits(c fiber.Ctx) error {
	var req adjustCreditsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	tx, err := h.credits.AdjustCredits(c.Context(), usecase.AdjustCreditsInput{
		UserID: req.UserID,
		Amount: req.Amount,
		Reason: req.Reason,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Credits adjusted", dto.NewTransactionResponse(tx))
}

func (h *AdminHandler) Ledger(c fiber.Ctx) error {
	f := repository.LedgerFilter{
		Limit:  queryInt(c, "limit", 20),
		Offset: queryInt(c, "offset", 0),
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user_id", nil, err)
		}
		f.UserID = id
	}
	if raw := c.Query("type"); raw != "" {
		f.Type = credit.TransactionType(raw)
	}

	items, total, err := h.credits.ListLedger(c.Context(), f)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := dto.PagedResponse{
		Items:  dto.NewTransactionResponses(items),
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AdminHandler) Stats(c fiber.Ctx) error {
	stats, err := h.credits.Stats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
