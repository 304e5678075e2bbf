package dto

import (
	"time"

	"skillswap/internal/domain/credit"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Amount        int        `json:"amount"`
	Type          string     `json:"type"`
	Description   string     `json:"description"`
	SwapRequestID *uuid.UUID `json:"swap_request_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func NewTransactionResponse(t credit.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Description:   t.Description,
		SwapRequestID: t.SwapRequestID,
		CreatedAt:     t.CreatedAt,
	}
}

func NewTransactionResponses(txs []credit.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		res = append(res, NewTransactionResponse(t))
	}
	return res
}
