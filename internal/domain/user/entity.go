package user

import (
	"time"

	"github.com/google/uuid"
)

type Availability string

const (
	AvailabilityMornings Availability = "mornings"
	AvailabilityEvenings Availability = "evenings"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityFlexible Availability = "flexible"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityMornings, AvailabilityEvenings, AvailabilityWeekends, AvailabilityFlexible:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Location     string
	Availability Availability
	Bio          string
	ProfilePhoto string
	IsPublic     bool
	IsAdmin      bool
	Credits      int
	TotalSwaps   int
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
