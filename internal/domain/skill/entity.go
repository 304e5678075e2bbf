package skill

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeOffered Type = "offered"
	TypeWanted  Type = "wanted"
)

func (t Type) Valid() bool {
	return t == TypeOffered || t == TypeWanted
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Skill is owned by exactly one user. Type separates what the owner
// teaches (offered) from what the owner wants to learn (wanted).
type Skill struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Category    string
	Type        Type
	Level       Level
	CreatedAt   time.Time
}
