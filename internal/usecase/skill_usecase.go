package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/skill"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillInput struct {
	Name        string
	Description string
	Category    string
	Type        skill.Type
	Level       skill.Level
}

type SkillUsecase interface {
	ListMySkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	AddSkill(ctx context.Context, userID uuid.UUID, in SkillInput) (skill.Skill, error)
	UpdateSkill(ctx context.Context, userID, skillID uuid.UUID, in SkillInput) (skill.Skill, error)
	DeleteSkill(ctx context.Context, userID, skillID uuid.UUID) error
}

type Skill struct {
	repo  repository.SkillRepository
	cache MatchCache
}

func NewSkillUsecase(repo repository.SkillRepository, cache MatchCache) *Skill {
	return &Skill{repo: repo, cache: cache}
}

func (u *Skill) ListMySkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Skill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// AddSkill creates a listing and drops every cached match list: a new
// skill can surface candidates for any user, not only the owner.
func (u *Skill) AddSkill(ctx context.Context, userID uuid.UUID, in SkillInput) (skill.Skill, error) {
	if userID == uuid.Nil {
		return skill.Skill{}, ErrUnauthorized
	}
	if err := validateSkillInput(in); err != nil {
		return skill.Skill{}, err
	}

	created, err := u.repo.Create(ctx, skill.Skill{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Type:        in.Type,
		Level:       in.Level,
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}

	invalidateMatches(ctx, u.cache)
	return created, nil
}

func (u *Skill) UpdateSkill(ctx context.Context, userID, skillID uuid.UUID, in SkillInput) (skill.Skill, error) {
	if userID == uuid.Nil {
		return skill.Skill{}, ErrUnauthorized
	}
	if skillID == uuid.Nil {
		return skill.Skill{}, ErrInvalidInput
	}
	if err := validateSkillInput(in); err != nil {
		return skill.Skill{}, err
	}

	updated, err := u.repo.Update(ctx, skill.Skill{
		ID:          skillID,
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Type:        in.Type,
		Level:       in.Level,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, ErrInternal
	}

	invalidateMatches(ctx, u.cache)
	return updated, nil
}

func (u *Skill) DeleteSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.repo.Delete(ctx, skillID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrSkillForbidden):
			return ErrForbidden
		default:
			return ErrInternal
		}
	}

	invalidateMatches(ctx, u.cache)
	return nil
}

func validateSkillInput(in SkillInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if !in.Type.Valid() {
		return ErrInvalidInput
	}
	if !in.Level.Valid() {
		return ErrInvalidInput
	}
	return nil
}
