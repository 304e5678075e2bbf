package usecase

import (
	"context"
	"errors"

	"skillswap/internal/domain/matching"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// MatchedUserCard is the public slice of a matched user's profile shown
// next to a candidate.
type MatchedUserCard struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	Rating       float64   `json:"rating"`
	TotalSwaps   int       `json:"total_swaps"`
	ProfilePhoto string    `json:"profile_photo"`
}

type MatchItem struct {
	ID           string          `json:"id"`
	MatchedUser  MatchedUserCard `json:"matched_user"`
	Score        int             `json:"score"`
	OfferedSkill skill.Skill     `json:"offered_skill"`
	WantedSkill  skill.Skill     `json:"wanted_skill"`
	Reasons      []string        `json:"reasons"`
}

type MatchingUsecase interface {
	FindMatches(ctx context.Context, userID uuid.UUID) ([]MatchItem, error)
}

type Matching struct {
	users  user.Repository
	skills repository.SkillRepository
	cache  MatchCache
}

func NewMatchingUsecase(users user.Repository, skills repository.SkillRepository, cache MatchCache) *Matching {
	return &Matching{users: users, skills: skills, cache: cache}
}

// FindMatches recomputes the full candidate list from a fresh snapshot
// of users and skills. Results are never stored as source of truth;
// the cache entry is a short-lived copy invalidated on any mutation.
func (u *Matching) FindMatches(ctx context.Context, userID uuid.UUID) ([]MatchItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	key := matchesCacheKey(userID)
	if u.cache != nil {
		var cached []MatchItem
		if found, err := u.cache.GetJSON(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	requester, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	candidates, err := u.users.ListPublicUsers(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	skills, err := u.skills.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	matches := matching.Find(requester, candidates, skills)

	byID := make(map[string]user.User, len(candidates))
	for _, c := range candidates {
		byID[c.ID.String()] = c
	}

	items := make([]MatchItem, 0, len(matches))
	for _, m := range matches {
		other, ok := byID[m.MatchedUserID]
		if !ok {
			continue
		}
		items = append(items, MatchItem{
			ID: m.ID,
			MatchedUser: MatchedUserCard{
				ID:           other.ID,
				Name:         other.Name,
				Location:     other.Location,
				Availability: string(other.Availability),
				Rating:       other.Rating,
				TotalSwaps:   other.TotalSwaps,
				ProfilePhoto: other.ProfilePhoto,
			},
			Score:        m.Score,
			OfferedSkill: m.OfferedSkill,
			WantedSkill:  m.WantedSkill,
			Reasons:      m.Reasons,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items, matchCacheTTL)
	}

	return items, nil
}
