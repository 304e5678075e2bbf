package swap

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves the status.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// CanTransition enforces the forward-only request lifecycle:
// pending may be accepted or rejected, and only an accepted request
// may be completed. Rejected and completed are dead ends.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted:
		return to == StatusCompleted
	}
	return false
}

// Request is a directed edge from sender to receiver pairing one of the
// sender's offered skills with one of the receiver's offered skills the
// sender wants.
type Request struct {
	ID             uuid.UUID
	SenderID       uuid.UUID
	ReceiverID     uuid.UUID
	OfferedSkillID uuid.UUID
	WantedSkillID  uuid.UUID
	Status         Status
	Message        string
	Feedback       string
	Rating         int
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
