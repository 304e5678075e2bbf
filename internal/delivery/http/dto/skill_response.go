package dto

import (
	"time"

	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Level       string    `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Type:        string(s.Type),
		Level:       string(s.Level),
		CreatedAt:   s.CreatedAt,
	}
}

func NewSkillResponses(skills []skill.Skill) []SkillResponse {
	res := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		res = append(res, NewSkillResponse(s))
	}
	return res
}
