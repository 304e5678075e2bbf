package dto

import (
	"time"

	"skillswap/internal/domain/swap"

	"github.com/google/uuid"
)

type SwapRequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	ReceiverID     uuid.UUID  `json:"receiver_id"`
	OfferedSkillID uuid.UUID  `json:"offered_skill_id"`
	WantedSkillID  uuid.UUID  `json:"wanted_skill_id"`
	Status         string     `json:"status"`
	Message        string     `json:"message"`
	Feedback       string     `json:"feedback,omitempty"`
	Rating         int        `json:"rating,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func NewSwapRequestResponse(r swap.Request) SwapRequestResponse {
	return SwapRequestResponse{
		ID:             r.ID,
		SenderID:       r.SenderID,
		ReceiverID:     r.ReceiverID,
		OfferedSkillID: r.OfferedSkillID,
		WantedSkillID:  r.WantedSkillID,
		Status:         string(r.Status),
		Message:        r.Message,
		Feedback:       r.Feedback,
		Rating:         r.Rating,
		CreatedAt:      r.CreatedAt,
		CompletedAt:    r.CompletedAt,
	}
}

func NewSwapRequestResponses(reqs []swap.Request) []SwapRequestResponse {
	res := make([]SwapRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		res = append(res, NewSwapRequestResponse(r))
	}
	return res
}
